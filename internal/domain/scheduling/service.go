package scheduling

import (
	"context"
	"time"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// Service validates report parameters and runs the appointment reports.
// It holds no mutable state; concurrent invocations are independent.
type Service struct {
	repo ReportRepository
	now  func() time.Time
}

// NewService creates the appointment report service.
func NewService(repo ReportRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// AppointmentDetails runs the joined appointment detail report. limit 0
// means unbounded (ordered by appointment_date ascending).
func (s *Service) AppointmentDetails(ctx context.Context, limit int) ([]*AppointmentDetail, error) {
	if limit < 0 {
		return nil, reporting.InvalidParam("limit", "must not be negative, got %d", limit)
	}
	return s.repo.AppointmentDetails(ctx, limit)
}

// AppointmentsByGender filters joined appointments by patient gender code.
func (s *Service) AppointmentsByGender(ctx context.Context, gender string) ([]*AppointmentRow, error) {
	if !ValidGenders[gender] {
		return nil, reporting.InvalidParam("gender", "unknown gender code %q", gender)
	}
	return s.repo.AppointmentsByGender(ctx, gender)
}

// RecentAppointments returns appointments within the lookback window.
// Zero is a literal window (today only); callers apply
// DefaultRecentWindowDays when the parameter is absent.
func (s *Service) RecentAppointments(ctx context.Context, windowDays int) ([]*AppointmentRow, error) {
	if windowDays < 0 {
		return nil, reporting.InvalidParam("windowDays", "must not be negative, got %d", windowDays)
	}
	cutoff := s.now().AddDate(0, 0, -windowDays)
	return s.repo.AppointmentsSince(ctx, cutoff)
}

// AppointmentsByStatus filters appointments on exact status match.
func (s *Service) AppointmentsByStatus(ctx context.Context, status string) ([]*AppointmentRow, error) {
	if !ValidStatuses[status] {
		return nil, reporting.InvalidParam("status", "unknown status %q", status)
	}
	return s.repo.AppointmentsByStatus(ctx, status)
}

// AppointmentStatusRate returns, per status, the count and its share of all
// appointments rounded to two decimals. The grand total is a scoped scalar
// query issued per invocation, never cached. An empty appointment table
// yields an empty result rather than a zero division.
func (s *Service) AppointmentStatusRate(ctx context.Context) ([]*StatusRate, error) {
	total, err := s.repo.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []*StatusRate{}, nil
	}

	counts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	rates := make([]*StatusRate, 0, len(counts))
	for _, c := range counts {
		rates = append(rates, &StatusRate{
			Status:     c.Status,
			Count:      c.Count,
			Percentage: reporting.Round2(float64(c.Count) * 100 / float64(total)),
		})
	}
	return rates, nil
}

// LatestAppointmentPerPatient returns each patient's most recent
// appointment date.
func (s *Service) LatestAppointmentPerPatient(ctx context.Context) ([]*PatientLastVisit, error) {
	return s.repo.LatestAppointmentPerPatient(ctx)
}

// TopVisitReasons returns the most frequent visit reasons. limit 0 takes
// the default of 5.
func (s *Service) TopVisitReasons(ctx context.Context, limit int) ([]*VisitReasonCount, error) {
	if limit < 0 {
		return nil, reporting.InvalidParam("limit", "must not be negative, got %d", limit)
	}
	if limit == 0 {
		limit = DefaultTopReasonsLimit
	}
	return s.repo.TopVisitReasons(ctx, limit)
}

// AppointmentSummary reads the appointment_summary view, optionally
// filtered to one date.
func (s *Service) AppointmentSummary(ctx context.Context, onDate *time.Time) ([]*SummaryRow, error) {
	return s.repo.AppointmentSummary(ctx, onDate)
}
