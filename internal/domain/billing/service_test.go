package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

type mockRepo struct {
	total        float64
	totalErr     error
	unpaid       []*UnpaidBill
	highValue    []*HighValueBill
	gotThreshold float64
	ranks        []*PatientBillingRank
}

func (m *mockRepo) TotalRevenue(ctx context.Context) (float64, error) {
	return m.total, m.totalErr
}

func (m *mockRepo) UnpaidBills(ctx context.Context) ([]*UnpaidBill, error) {
	return m.unpaid, nil
}

func (m *mockRepo) HighValueBills(ctx context.Context, threshold float64) ([]*HighValueBill, error) {
	m.gotThreshold = threshold
	return m.highValue, nil
}

func (m *mockRepo) SpendPerPatient(ctx context.Context) ([]*PatientSpend, error) {
	return nil, nil
}

func (m *mockRepo) PaymentMethodCounts(ctx context.Context) ([]*MethodCount, error) {
	return nil, nil
}

func (m *mockRepo) AveragePerMethod(ctx context.Context) ([]*MethodAverage, error) {
	return nil, nil
}

func (m *mockRepo) AboveAverageTreatmentSpenders(ctx context.Context) ([]*TreatmentSpender, error) {
	return nil, nil
}

func (m *mockRepo) BillingRanks(ctx context.Context) ([]*PatientBillingRank, error) {
	return m.ranks, nil
}

func TestTotalRevenue_PaidOnly(t *testing.T) {
	// Bills of 100 Paid, 200 Unpaid and 300 Paid leave a repository total
	// of 400.00.
	repo := &mockRepo{total: 400.00}
	svc := NewService(repo)

	total, err := svc.TotalRevenue(context.Background())
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if total != 400.00 {
		t.Fatalf("total = %v, want 400.00", total)
	}
}

func TestTotalRevenue_EmptyTable(t *testing.T) {
	repo := &mockRepo{total: 0}
	svc := NewService(repo)

	total, err := svc.TotalRevenue(context.Background())
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %v, want 0", total)
	}
}

func TestHighValueBills_DefaultThresholdWhenAbsent(t *testing.T) {
	repo := &mockRepo{}
	catalog := reporting.NewCatalog()
	RegisterReports(catalog, NewService(repo))

	if _, err := catalog.Run(context.Background(), "high-value-bills", nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if repo.gotThreshold != DefaultHighValueThreshold {
		t.Fatalf("threshold = %v, want %v", repo.gotThreshold, DefaultHighValueThreshold)
	}
}

func TestHighValueBills_ZeroThresholdIsLiteral(t *testing.T) {
	repo := &mockRepo{gotThreshold: -1}
	svc := NewService(repo)

	if _, err := svc.HighValueBills(context.Background(), 0); err != nil {
		t.Fatalf("HighValueBills: %v", err)
	}
	if repo.gotThreshold != 0 {
		t.Fatalf("threshold = %v, want literal 0", repo.gotThreshold)
	}
}

func TestHighValueBills_NegativeThreshold(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.HighValueBills(context.Background(), -5)
	if !reporting.IsInvalidParameter(err) {
		t.Fatalf("err = %v, want invalid parameter", err)
	}
}

func TestBillingRanks_TiesShareRank(t *testing.T) {
	repo := &mockRepo{ranks: []*PatientBillingRank{
		{PatientID: 1, TotalBilled: 900, Rank: 1},
		{PatientID: 2, TotalBilled: 900, Rank: 1},
		{PatientID: 3, TotalBilled: 500, Rank: 3},
	}}
	svc := NewService(repo)

	ranks, err := svc.BillingRanks(context.Background())
	if err != nil {
		t.Fatalf("BillingRanks: %v", err)
	}
	if ranks[0].Rank != 1 || ranks[1].Rank != 1 {
		t.Fatalf("tied totals must share rank 1, got %d and %d", ranks[0].Rank, ranks[1].Rank)
	}
	if ranks[2].Rank != 3 {
		t.Fatalf("rank after a two-way tie = %d, want 3", ranks[2].Rank)
	}
}

func TestCatalog_TotalRevenueTable(t *testing.T) {
	repo := &mockRepo{total: 400.00}
	catalog := reporting.NewCatalog()
	RegisterReports(catalog, NewService(repo))

	rep, err := catalog.Run(context.Background(), "total-revenue", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := rep.Result.Columns[0]; got != "total_revenue" {
		t.Fatalf("column = %q, want total_revenue", got)
	}
	if len(rep.Result.Rows) != 1 || rep.Result.Rows[0][0] != 400.00 {
		t.Fatalf("rows = %v, want single row 400.00", rep.Result.Rows)
	}
}

func TestCatalog_DataAccessErrorSurfaces(t *testing.T) {
	repo := &mockRepo{totalErr: reporting.WrapDataAccess("total-revenue", errors.New("connection refused"))}
	catalog := reporting.NewCatalog()
	RegisterReports(catalog, NewService(repo))

	_, err := catalog.Run(context.Background(), "total-revenue", nil)
	if !reporting.IsDataAccess(err) {
		t.Fatalf("err = %v, want data access error", err)
	}
}
