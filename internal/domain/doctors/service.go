package doctors

import (
	"context"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// Service validates report parameters and runs the doctor reports.
type Service struct {
	repo ReportRepository
}

// NewService creates the doctor report service.
func NewService(repo ReportRepository) *Service {
	return &Service{repo: repo}
}

// ExperiencedDoctors returns doctors at or above the experience cutoff.
// minYears 0 takes the default of 20.
func (s *Service) ExperiencedDoctors(ctx context.Context, minYears int) ([]*ExperiencedDoctor, error) {
	if minYears < 0 {
		return nil, reporting.InvalidParam("minYears", "must not be negative, got %d", minYears)
	}
	if minYears == 0 {
		minYears = DefaultMinYearsExperience
	}
	return s.repo.ExperiencedDoctors(ctx, minYears)
}

// AppointmentsPerDoctor returns each doctor's appointment count.
func (s *Service) AppointmentsPerDoctor(ctx context.Context) ([]*DoctorLoad, error) {
	return s.repo.AppointmentsPerDoctor(ctx)
}

// DoctorsBySpecialization returns doctor headcounts per specialization.
func (s *Service) DoctorsBySpecialization(ctx context.Context) ([]*SpecializationCount, error) {
	return s.repo.DoctorsBySpecialization(ctx)
}

// RevenueBySpecialization returns Paid billing totals per specialization.
func (s *Service) RevenueBySpecialization(ctx context.Context) ([]*SpecializationRevenue, error) {
	return s.repo.RevenueBySpecialization(ctx)
}
