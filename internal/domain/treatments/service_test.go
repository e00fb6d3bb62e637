package treatments

import (
	"context"
	"testing"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

type mockRepo struct {
	gotExpensiveLimit int
	gotTypesLimit     int
	averages          []*TypeAverage
}

func (m *mockRepo) AverageCostByType(ctx context.Context) ([]*TypeAverage, error) {
	return m.averages, nil
}

func (m *mockRepo) TopExpensive(ctx context.Context, limit int) ([]*ExpensiveTreatment, error) {
	m.gotExpensiveLimit = limit
	return nil, nil
}

func (m *mockRepo) TopTypesByFrequency(ctx context.Context, limit int) ([]*TypeFrequency, error) {
	m.gotTypesLimit = limit
	return nil, nil
}

func TestTopExpensive_DefaultLimit(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	if _, err := svc.TopExpensive(context.Background(), 0); err != nil {
		t.Fatalf("TopExpensive: %v", err)
	}
	if repo.gotExpensiveLimit != DefaultTopExpensiveLimit {
		t.Fatalf("limit = %d, want %d", repo.gotExpensiveLimit, DefaultTopExpensiveLimit)
	}
}

func TestTopTypes_DefaultLimit(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	if _, err := svc.TopTypesByFrequency(context.Background(), 0); err != nil {
		t.Fatalf("TopTypesByFrequency: %v", err)
	}
	if repo.gotTypesLimit != DefaultTopTypesLimit {
		t.Fatalf("limit = %d, want %d", repo.gotTypesLimit, DefaultTopTypesLimit)
	}
}

func TestTopExpensive_NegativeLimit(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.TopExpensive(context.Background(), -2)
	if !reporting.IsInvalidParameter(err) {
		t.Fatalf("err = %v, want invalid parameter", err)
	}
}

func TestCatalog_AvgCostColumns(t *testing.T) {
	repo := &mockRepo{averages: []*TypeAverage{
		{TreatmentType: "Surgery", AverageCost: 5400.25},
		{TreatmentType: "X-Ray", AverageCost: 120.00},
	}}
	catalog := reporting.NewCatalog()
	RegisterReports(catalog, NewService(repo))

	rep, err := catalog.Run(context.Background(), "avg-cost-by-treatment-type", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"treatment_type", "average_cost"}
	for i, col := range want {
		if rep.Result.Columns[i] != col {
			t.Fatalf("column %d = %q, want %q", i, rep.Result.Columns[i], col)
		}
	}
	if rep.Result.Rows[0][1] != 5400.25 {
		t.Fatalf("first average = %v, want 5400.25", rep.Result.Rows[0][1])
	}
}

func TestCatalog_TopTypesLimitParam(t *testing.T) {
	repo := &mockRepo{}
	catalog := reporting.NewCatalog()
	RegisterReports(catalog, NewService(repo))

	if _, err := catalog.Run(context.Background(), "top-treatment-types", reporting.Params{"limit": "7"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if repo.gotTypesLimit != 7 {
		t.Fatalf("limit = %d, want 7", repo.gotTypesLimit)
	}
}
