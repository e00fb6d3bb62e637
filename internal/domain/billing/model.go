package billing

// DefaultHighValueThreshold is the cutoff for the high-value bill report.
const DefaultHighValueThreshold = 3000

// UnpaidBill is a not-yet-paid bill joined to its patient. A bill counts as
// unpaid when payment_status differs from 'Paid'; rows with a NULL
// payment_status are excluded by SQL three-valued logic.
type UnpaidBill struct {
	BillID        int64   `json:"bill_id"`
	PatientID     int64   `json:"patient_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"payment_status"`
}

// HighValueBill is a bill above the amount threshold.
type HighValueBill struct {
	BillID        int64   `json:"bill_id"`
	PatientID     int64   `json:"patient_id"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"payment_status"`
}

// PatientSpend is a patient's total billed amount.
type PatientSpend struct {
	PatientID  int64   `json:"patient_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	TotalSpend float64 `json:"total_spend"`
}

// MethodCount is the bill count for one payment method.
type MethodCount struct {
	PaymentMethod string `json:"payment_method"`
	Count         int64  `json:"count"`
}

// MethodAverage is the average bill amount for one payment method, rounded
// to two decimals.
type MethodAverage struct {
	PaymentMethod string  `json:"payment_method"`
	AverageAmount float64 `json:"average_amount"`
}

// TreatmentSpender is a patient whose treatment-linked billing total
// exceeds the global average treatment cost. The comparison scalar is the
// average over the treatment cost catalog, not over billed amounts.
type TreatmentSpender struct {
	PatientID   int64   `json:"patient_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	TotalBilled float64 `json:"total_billed"`
}

// PatientBillingRank is a patient's billing total with its standard
// competition rank: equal totals share a rank and the next distinct total
// skips accordingly.
type PatientBillingRank struct {
	PatientID   int64   `json:"patient_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	TotalBilled float64 `json:"total_billed"`
	Rank        int64   `json:"rank"`
}
