package scheduling

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

type reportRepoPG struct{ pool *pgxpool.Pool }

// NewReportRepoPG creates the Postgres-backed appointment report repository.
func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository { return &reportRepoPG{pool: pool} }

const apptRowCols = `a.appointment_id, a.patient_id,
	p.first_name || ' ' || p.last_name,
	a.appointment_date, a.status, a.reason_for_visit`

func scanAppointmentRows(rows pgx.Rows) ([]*AppointmentRow, error) {
	defer rows.Close()
	var items []*AppointmentRow
	for rows.Next() {
		var r AppointmentRow
		if err := rows.Scan(&r.AppointmentID, &r.PatientID, &r.PatientName,
			&r.AppointmentDate, &r.Status, &r.ReasonForVisit); err != nil {
			return nil, err
		}
		items = append(items, &r)
	}
	return items, rows.Err()
}

func (r *reportRepoPG) AppointmentDetails(ctx context.Context, limit int) ([]*AppointmentDetail, error) {
	query := `
		SELECT a.appointment_id, p.first_name, d.first_name,
		       a.appointment_date, a.reason_for_visit
		FROM appointments a
		JOIN patients p ON p.patient_id = a.patient_id
		JOIN doctors d ON d.doctor_id = a.doctor_id`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.pool.Query(ctx, query+` LIMIT $1`, limit)
	} else {
		rows, err = r.pool.Query(ctx, query+` ORDER BY a.appointment_date ASC`)
	}
	if err != nil {
		return nil, reporting.WrapDataAccess("appointment-details", err)
	}
	defer rows.Close()

	var items []*AppointmentDetail
	for rows.Next() {
		var d AppointmentDetail
		if err := rows.Scan(&d.AppointmentID, &d.PatientFirstName, &d.DoctorFirstName,
			&d.AppointmentDate, &d.ReasonForVisit); err != nil {
			return nil, reporting.WrapDataAccess("appointment-details", err)
		}
		items = append(items, &d)
	}
	return items, reporting.WrapDataAccess("appointment-details", rows.Err())
}

func (r *reportRepoPG) AppointmentsByGender(ctx context.Context, gender string) ([]*AppointmentRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptRowCols+`
		FROM appointments a
		JOIN patients p ON p.patient_id = a.patient_id
		WHERE p.gender = $1
		ORDER BY a.appointment_date ASC`, gender)
	if err != nil {
		return nil, reporting.WrapDataAccess("appointments-by-gender", err)
	}
	items, err := scanAppointmentRows(rows)
	return items, reporting.WrapDataAccess("appointments-by-gender", err)
}

func (r *reportRepoPG) AppointmentsSince(ctx context.Context, cutoff time.Time) ([]*AppointmentRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptRowCols+`
		FROM appointments a
		JOIN patients p ON p.patient_id = a.patient_id
		WHERE a.appointment_date >= $1
		ORDER BY a.appointment_date ASC`, cutoff)
	if err != nil {
		return nil, reporting.WrapDataAccess("recent-appointments", err)
	}
	items, err := scanAppointmentRows(rows)
	return items, reporting.WrapDataAccess("recent-appointments", err)
}

func (r *reportRepoPG) AppointmentsByStatus(ctx context.Context, status string) ([]*AppointmentRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptRowCols+`
		FROM appointments a
		JOIN patients p ON p.patient_id = a.patient_id
		WHERE a.status = $1
		ORDER BY a.appointment_date ASC`, status)
	if err != nil {
		return nil, reporting.WrapDataAccess("appointments-by-status", err)
	}
	items, err := scanAppointmentRows(rows)
	return items, reporting.WrapDataAccess("appointments-by-status", err)
}

func (r *reportRepoPG) CountAppointments(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&total)
	return total, reporting.WrapDataAccess("appointment-status-rate", err)
}

func (r *reportRepoPG) StatusCounts(ctx context.Context) ([]*StatusCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM appointments
		GROUP BY status
		ORDER BY COUNT(*) DESC, status ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("appointment-status-rate", err)
	}
	defer rows.Close()

	var items []*StatusCount
	for rows.Next() {
		var s StatusCount
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, reporting.WrapDataAccess("appointment-status-rate", err)
		}
		items = append(items, &s)
	}
	return items, reporting.WrapDataAccess("appointment-status-rate", rows.Err())
}

func (r *reportRepoPG) LatestAppointmentPerPatient(ctx context.Context) ([]*PatientLastVisit, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT patient_id, MAX(appointment_date)
		FROM appointments
		GROUP BY patient_id
		ORDER BY patient_id ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("latest-appointment-per-patient", err)
	}
	defer rows.Close()

	var items []*PatientLastVisit
	for rows.Next() {
		var v PatientLastVisit
		if err := rows.Scan(&v.PatientID, &v.LastAppointment); err != nil {
			return nil, reporting.WrapDataAccess("latest-appointment-per-patient", err)
		}
		items = append(items, &v)
	}
	return items, reporting.WrapDataAccess("latest-appointment-per-patient", rows.Err())
}

func (r *reportRepoPG) TopVisitReasons(ctx context.Context, limit int) ([]*VisitReasonCount, error) {
	// reason_for_visit ASC breaks count ties deterministically.
	rows, err := r.pool.Query(ctx, `
		SELECT reason_for_visit, COUNT(*)
		FROM appointments
		WHERE reason_for_visit IS NOT NULL
		GROUP BY reason_for_visit
		ORDER BY COUNT(*) DESC, reason_for_visit ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, reporting.WrapDataAccess("top-visit-reasons", err)
	}
	defer rows.Close()

	var items []*VisitReasonCount
	for rows.Next() {
		var v VisitReasonCount
		if err := rows.Scan(&v.Reason, &v.Count); err != nil {
			return nil, reporting.WrapDataAccess("top-visit-reasons", err)
		}
		items = append(items, &v)
	}
	return items, reporting.WrapDataAccess("top-visit-reasons", rows.Err())
}

func (r *reportRepoPG) AppointmentSummary(ctx context.Context, onDate *time.Time) ([]*SummaryRow, error) {
	query := `
		SELECT appointment_id, patient_name, doctor_name, specialization,
		       appointment_date, status, reason_for_visit
		FROM appointment_summary`

	var (
		rows pgx.Rows
		err  error
	)
	if onDate != nil {
		rows, err = r.pool.Query(ctx, query+` WHERE appointment_date = $1 ORDER BY appointment_id ASC`, *onDate)
	} else {
		rows, err = r.pool.Query(ctx, query+` ORDER BY appointment_date ASC, appointment_id ASC`)
	}
	if err != nil {
		return nil, reporting.WrapDataAccess("appointment-summary", err)
	}
	defer rows.Close()

	var items []*SummaryRow
	for rows.Next() {
		var s SummaryRow
		if err := rows.Scan(&s.AppointmentID, &s.PatientName, &s.DoctorName, &s.Specialization,
			&s.AppointmentDate, &s.Status, &s.ReasonForVisit); err != nil {
			return nil, reporting.WrapDataAccess("appointment-summary", err)
		}
		items = append(items, &s)
	}
	return items, reporting.WrapDataAccess("appointment-summary", rows.Err())
}
