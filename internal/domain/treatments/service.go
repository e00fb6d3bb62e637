package treatments

import (
	"context"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// Service validates report parameters and runs the treatment reports.
type Service struct {
	repo ReportRepository
}

// NewService creates the treatment report service.
func NewService(repo ReportRepository) *Service {
	return &Service{repo: repo}
}

// AverageCostByType returns the rounded average cost per treatment type.
func (s *Service) AverageCostByType(ctx context.Context) ([]*TypeAverage, error) {
	return s.repo.AverageCostByType(ctx)
}

// TopExpensive returns the costliest treatments. limit 0 takes the
// default of 5.
func (s *Service) TopExpensive(ctx context.Context, limit int) ([]*ExpensiveTreatment, error) {
	if limit < 0 {
		return nil, reporting.InvalidParam("limit", "must not be negative, got %d", limit)
	}
	if limit == 0 {
		limit = DefaultTopExpensiveLimit
	}
	return s.repo.TopExpensive(ctx, limit)
}

// TopTypesByFrequency returns the most common treatment types. limit 0
// takes the default of 3.
func (s *Service) TopTypesByFrequency(ctx context.Context, limit int) ([]*TypeFrequency, error) {
	if limit < 0 {
		return nil, reporting.InvalidParam("limit", "must not be negative, got %d", limit)
	}
	if limit == 0 {
		limit = DefaultTopTypesLimit
	}
	return s.repo.TopTypesByFrequency(ctx, limit)
}
