package treatments

import "context"

// ReportRepository is the read-only store surface behind the treatment
// reports.
type ReportRepository interface {
	// AverageCostByType returns the rounded average cost per treatment
	// type, highest first.
	AverageCostByType(ctx context.Context) ([]*TypeAverage, error)
	// TopExpensive returns the costliest treatments, descending.
	TopExpensive(ctx context.Context, limit int) ([]*ExpensiveTreatment, error)
	// TopTypesByFrequency returns the most common treatment types.
	TopTypesByFrequency(ctx context.Context, limit int) ([]*TypeFrequency, error)
}
