package treatments

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

type reportRepoPG struct{ pool *pgxpool.Pool }

// NewReportRepoPG creates the Postgres-backed treatment report repository.
func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository { return &reportRepoPG{pool: pool} }

func (r *reportRepoPG) AverageCostByType(ctx context.Context) ([]*TypeAverage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT treatment_type, ROUND(AVG(cost), 2)::float8
		FROM treatments
		GROUP BY treatment_type
		ORDER BY AVG(cost) DESC, treatment_type ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("avg-cost-by-treatment-type", err)
	}
	defer rows.Close()

	var items []*TypeAverage
	for rows.Next() {
		var a TypeAverage
		if err := rows.Scan(&a.TreatmentType, &a.AverageCost); err != nil {
			return nil, reporting.WrapDataAccess("avg-cost-by-treatment-type", err)
		}
		items = append(items, &a)
	}
	return items, reporting.WrapDataAccess("avg-cost-by-treatment-type", rows.Err())
}

func (r *reportRepoPG) TopExpensive(ctx context.Context, limit int) ([]*ExpensiveTreatment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT treatment_id, treatment_type, description, cost::float8
		FROM treatments
		ORDER BY cost DESC, treatment_id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, reporting.WrapDataAccess("top-expensive-treatments", err)
	}
	defer rows.Close()

	var items []*ExpensiveTreatment
	for rows.Next() {
		var t ExpensiveTreatment
		if err := rows.Scan(&t.TreatmentID, &t.TreatmentType, &t.Description, &t.Cost); err != nil {
			return nil, reporting.WrapDataAccess("top-expensive-treatments", err)
		}
		items = append(items, &t)
	}
	return items, reporting.WrapDataAccess("top-expensive-treatments", rows.Err())
}

func (r *reportRepoPG) TopTypesByFrequency(ctx context.Context, limit int) ([]*TypeFrequency, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT treatment_type, COUNT(*)
		FROM treatments
		GROUP BY treatment_type
		ORDER BY COUNT(*) DESC, treatment_type ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, reporting.WrapDataAccess("top-treatment-types", err)
	}
	defer rows.Close()

	var items []*TypeFrequency
	for rows.Next() {
		var f TypeFrequency
		if err := rows.Scan(&f.TreatmentType, &f.Count); err != nil {
			return nil, reporting.WrapDataAccess("top-treatment-types", err)
		}
		items = append(items, &f)
	}
	return items, reporting.WrapDataAccess("top-treatment-types", rows.Err())
}
