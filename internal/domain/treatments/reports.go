package treatments

import (
	"context"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// RegisterReports wires the treatment reports into the catalog.
func RegisterReports(c *reporting.Catalog, svc *Service) {
	c.Register(reporting.Definition{
		ID:          "avg-cost-by-treatment-type",
		Name:        "Average Cost by Treatment Type",
		Description: "Average catalog cost per treatment type, rounded to two decimals",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.AverageCostByType(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("treatment_type", "average_cost")
		for _, a := range items {
			t.Append(a.TreatmentType, a.AverageCost)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "top-expensive-treatments",
		Name:        "Top Expensive Treatments",
		Description: "Costliest catalog entries",
		Parameters: []reporting.ParamSpec{
			{Name: "limit", Type: "int", Default: "5"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		limit, err := reporting.IntParam(params, "limit", 0)
		if err != nil {
			return nil, err
		}
		items, err := svc.TopExpensive(ctx, limit)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("treatment_id", "treatment_type", "description", "cost")
		for _, e := range items {
			t.Append(e.TreatmentID, e.TreatmentType, strOrNil(e.Description), e.Cost)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "top-treatment-types",
		Name:        "Top Treatment Types",
		Description: "Most common treatment types by catalog frequency",
		Parameters: []reporting.ParamSpec{
			{Name: "limit", Type: "int", Default: "3"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		limit, err := reporting.IntParam(params, "limit", 0)
		if err != nil {
			return nil, err
		}
		items, err := svc.TopTypesByFrequency(ctx, limit)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("treatment_type", "count")
		for _, f := range items {
			t.Append(f.TreatmentType, f.Count)
		}
		return t, nil
	})
}

func strOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
