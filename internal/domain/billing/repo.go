package billing

import "context"

// ReportRepository is the read-only store surface behind the billing
// reports.
type ReportRepository interface {
	// TotalRevenue sums the amount of Paid bills, rounded to two decimals;
	// 0.00 when there are none.
	TotalRevenue(ctx context.Context) (float64, error)
	// UnpaidBills returns bills whose payment_status differs from 'Paid',
	// joined to their patient.
	UnpaidBills(ctx context.Context) ([]*UnpaidBill, error)
	// HighValueBills returns bills with amount strictly above the
	// threshold, descending.
	HighValueBills(ctx context.Context, threshold float64) ([]*HighValueBill, error)
	// SpendPerPatient returns each patient's billed total, descending.
	SpendPerPatient(ctx context.Context) ([]*PatientSpend, error)
	// PaymentMethodCounts returns bill counts per payment method,
	// descending by count.
	PaymentMethodCounts(ctx context.Context) ([]*MethodCount, error)
	// AveragePerMethod returns the rounded average amount per payment
	// method, descending by average.
	AveragePerMethod(ctx context.Context) ([]*MethodAverage, error)
	// AboveAverageTreatmentSpenders returns patients whose
	// treatment-linked billing total exceeds avg(treatments.cost).
	AboveAverageTreatmentSpenders(ctx context.Context) ([]*TreatmentSpender, error)
	// BillingRanks returns per-patient billing totals with standard
	// competition ranks, best rank first.
	BillingRanks(ctx context.Context) ([]*PatientBillingRank, error)
}
