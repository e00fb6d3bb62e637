package scheduling

import (
	"context"
	"time"
)

// ReportRepository is the read-only store surface behind the appointment
// reports. Every method is a single bounded query.
type ReportRepository interface {
	// AppointmentDetails returns the joined detail projection. A limit of 0
	// returns all rows ordered by appointment_date ascending; a positive
	// limit returns the top N without an ordering guarantee.
	AppointmentDetails(ctx context.Context, limit int) ([]*AppointmentDetail, error)
	AppointmentsByGender(ctx context.Context, gender string) ([]*AppointmentRow, error)
	AppointmentsSince(ctx context.Context, cutoff time.Time) ([]*AppointmentRow, error)
	AppointmentsByStatus(ctx context.Context, status string) ([]*AppointmentRow, error)
	CountAppointments(ctx context.Context) (int64, error)
	StatusCounts(ctx context.Context) ([]*StatusCount, error)
	LatestAppointmentPerPatient(ctx context.Context) ([]*PatientLastVisit, error)
	TopVisitReasons(ctx context.Context, limit int) ([]*VisitReasonCount, error)
	// AppointmentSummary reads the appointment_summary view, optionally
	// filtered to a single calendar date.
	AppointmentSummary(ctx context.Context, onDate *time.Time) ([]*SummaryRow, error)
}
