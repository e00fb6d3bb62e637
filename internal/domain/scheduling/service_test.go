package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// -- Mock Repository --

type mockRepo struct {
	details      []*AppointmentDetail
	rows         []*AppointmentRow
	total        int64
	statusCounts []*StatusCount
	lastVisits   []*PatientLastVisit
	reasons      []*VisitReasonCount
	summary      []*SummaryRow

	gotLimit  int
	gotCutoff time.Time
	gotStatus string
	gotGender string
}

func (m *mockRepo) AppointmentDetails(_ context.Context, limit int) ([]*AppointmentDetail, error) {
	m.gotLimit = limit
	return m.details, nil
}

func (m *mockRepo) AppointmentsByGender(_ context.Context, gender string) ([]*AppointmentRow, error) {
	m.gotGender = gender
	return m.rows, nil
}

func (m *mockRepo) AppointmentsSince(_ context.Context, cutoff time.Time) ([]*AppointmentRow, error) {
	m.gotCutoff = cutoff
	return m.rows, nil
}

func (m *mockRepo) AppointmentsByStatus(_ context.Context, status string) ([]*AppointmentRow, error) {
	m.gotStatus = status
	return m.rows, nil
}

func (m *mockRepo) CountAppointments(_ context.Context) (int64, error) {
	return m.total, nil
}

func (m *mockRepo) StatusCounts(_ context.Context) ([]*StatusCount, error) {
	return m.statusCounts, nil
}

func (m *mockRepo) LatestAppointmentPerPatient(_ context.Context) ([]*PatientLastVisit, error) {
	return m.lastVisits, nil
}

func (m *mockRepo) TopVisitReasons(_ context.Context, limit int) ([]*VisitReasonCount, error) {
	m.gotLimit = limit
	return m.reasons, nil
}

func (m *mockRepo) AppointmentSummary(_ context.Context, _ *time.Time) ([]*SummaryRow, error) {
	return m.summary, nil
}

// -- Tests --

func TestAppointmentDetails_NegativeLimit(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.AppointmentDetails(context.Background(), -1)
	if !reporting.IsInvalidParameter(err) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
}

func TestAppointmentsByGender_UnknownCode(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.AppointmentsByGender(context.Background(), "X")
	if !reporting.IsInvalidParameter(err) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
}

func TestAppointmentsByGender_Valid(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	if _, err := svc.AppointmentsByGender(context.Background(), "F"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotGender != "F" {
		t.Errorf("expected gender F passed through, got %q", repo.gotGender)
	}
}

func TestRecentAppointments_DefaultWindowWhenAbsent(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return today }

	catalog := reporting.NewCatalog()
	RegisterReports(catalog, svc)

	if _, err := catalog.Run(context.Background(), "recent-appointments", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := today.AddDate(0, 0, -DefaultRecentWindowDays)
	if !repo.gotCutoff.Equal(want) {
		t.Errorf("expected cutoff %v, got %v", want, repo.gotCutoff)
	}
}

func TestRecentAppointments_ZeroWindowIsToday(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return today }

	if _, err := svc.RecentAppointments(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.gotCutoff.Equal(today) {
		t.Errorf("expected cutoff %v, got %v", today, repo.gotCutoff)
	}
}

func TestRecentAppointments_NegativeWindow(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.RecentAppointments(context.Background(), -7)
	if !reporting.IsInvalidParameter(err) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
}

func TestAppointmentsByStatus_Unknown(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.AppointmentsByStatus(context.Background(), "Rescheduled")
	if !reporting.IsInvalidParameter(err) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
}

func TestAppointmentStatusRate_PercentagesSumTo100(t *testing.T) {
	repo := &mockRepo{
		total: 7,
		statusCounts: []*StatusCount{
			{Status: "Completed", Count: 3},
			{Status: "Scheduled", Count: 3},
			{Status: "Cancelled", Count: 1},
		},
	}
	svc := NewService(repo)

	rates, err := svc.AppointmentStatusRate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 3 {
		t.Fatalf("expected 3 partitions, got %d", len(rates))
	}

	var sum float64
	for _, r := range rates {
		sum += r.Percentage
	}
	if sum < 99.99 || sum > 100.01 {
		t.Errorf("percentages should sum to 100 within 0.01, got %v", sum)
	}

	// 3/7 rounds to 42.86
	if rates[0].Percentage != 42.86 {
		t.Errorf("expected 42.86, got %v", rates[0].Percentage)
	}
}

func TestAppointmentStatusRate_EmptyTable(t *testing.T) {
	svc := NewService(&mockRepo{total: 0})
	rates, err := svc.AppointmentStatusRate(context.Background())
	if err != nil {
		t.Fatalf("expected empty result, got error %v", err)
	}
	if len(rates) != 0 {
		t.Errorf("expected no rows on empty table, got %d", len(rates))
	}
}

func TestTopVisitReasons_DefaultLimit(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	if _, err := svc.TopVisitReasons(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotLimit != 5 {
		t.Errorf("expected default limit 5, got %d", repo.gotLimit)
	}
}

func TestTopVisitReasons_NegativeLimit(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.TopVisitReasons(context.Background(), -2)
	if !reporting.IsInvalidParameter(err) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
}

func TestRegisterReports_CatalogRuns(t *testing.T) {
	repo := &mockRepo{
		total:        4,
		statusCounts: []*StatusCount{{Status: "Completed", Count: 4}},
	}
	catalog := reporting.NewCatalog()
	RegisterReports(catalog, NewService(repo))

	report, err := catalog.Run(context.Background(), "appointment-status-rate", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Result.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(report.Result.Rows))
	}
	row := report.Result.Rows[0]
	if row[0] != "Completed" || row[2] != 100.0 {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestRegisterReports_InvalidParamSurfaced(t *testing.T) {
	catalog := reporting.NewCatalog()
	RegisterReports(catalog, NewService(&mockRepo{}))

	_, err := catalog.Run(context.Background(), "appointments-by-status", reporting.Params{"status": "Bogus"})
	if !reporting.IsInvalidParameter(err) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
}
