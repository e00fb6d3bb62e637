package treatments

// Defaults for the top-N treatment reports.
const (
	DefaultTopExpensiveLimit = 5
	DefaultTopTypesLimit     = 3
)

// TypeAverage is the average catalog cost for one treatment type, rounded
// to two decimals.
type TypeAverage struct {
	TreatmentType string  `json:"treatment_type"`
	AverageCost   float64 `json:"average_cost"`
}

// ExpensiveTreatment is one of the costliest catalog entries.
type ExpensiveTreatment struct {
	TreatmentID   int64   `json:"treatment_id"`
	TreatmentType string  `json:"treatment_type"`
	Description   *string `json:"description"`
	Cost          float64 `json:"cost"`
}

// TypeFrequency is how often a treatment type appears in the catalog.
type TypeFrequency struct {
	TreatmentType string `json:"treatment_type"`
	Count         int64  `json:"count"`
}
