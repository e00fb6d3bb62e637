package billing

import (
	"context"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// Service validates report parameters and runs the billing reports.
type Service struct {
	repo ReportRepository
}

// NewService creates the billing report service.
func NewService(repo ReportRepository) *Service {
	return &Service{repo: repo}
}

// TotalRevenue returns the sum of Paid bill amounts, rounded to two
// decimals. An empty billing table yields 0.00, not an error.
func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	return s.repo.TotalRevenue(ctx)
}

// UnpaidBills returns bills whose payment_status differs from 'Paid'.
func (s *Service) UnpaidBills(ctx context.Context) ([]*UnpaidBill, error) {
	return s.repo.UnpaidBills(ctx)
}

// HighValueBills returns bills strictly above the threshold. Zero is a
// literal threshold (every positive bill); callers apply
// DefaultHighValueThreshold when the parameter is absent.
func (s *Service) HighValueBills(ctx context.Context, threshold float64) ([]*HighValueBill, error) {
	if threshold < 0 {
		return nil, reporting.InvalidParam("threshold", "must not be negative, got %g", threshold)
	}
	return s.repo.HighValueBills(ctx, threshold)
}

// SpendPerPatient returns each patient's total billed amount, descending.
func (s *Service) SpendPerPatient(ctx context.Context) ([]*PatientSpend, error) {
	return s.repo.SpendPerPatient(ctx)
}

// PaymentMethodCounts returns bill counts grouped by payment method.
func (s *Service) PaymentMethodCounts(ctx context.Context) ([]*MethodCount, error) {
	return s.repo.PaymentMethodCounts(ctx)
}

// AveragePerMethod returns the average bill amount per payment method,
// rounded to two decimals.
func (s *Service) AveragePerMethod(ctx context.Context) ([]*MethodAverage, error) {
	return s.repo.AveragePerMethod(ctx)
}

// AboveAverageTreatmentSpenders returns patients whose treatment-linked
// billing total exceeds the average treatment catalog cost.
func (s *Service) AboveAverageTreatmentSpenders(ctx context.Context) ([]*TreatmentSpender, error) {
	return s.repo.AboveAverageTreatmentSpenders(ctx)
}

// BillingRanks returns per-patient billing totals with competition ranks.
func (s *Service) BillingRanks(ctx context.Context) ([]*PatientBillingRank, error) {
	return s.repo.BillingRanks(ctx)
}
