package doctors

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

type reportRepoPG struct{ pool *pgxpool.Pool }

// NewReportRepoPG creates the Postgres-backed doctor report repository.
func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository { return &reportRepoPG{pool: pool} }

func (r *reportRepoPG) ExperiencedDoctors(ctx context.Context, minYears int) ([]*ExperiencedDoctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT doctor_id, first_name, last_name, specialization, years_experience
		FROM doctors
		WHERE years_experience >= $1
		ORDER BY years_experience DESC, doctor_id ASC`, minYears)
	if err != nil {
		return nil, reporting.WrapDataAccess("experienced-doctors", err)
	}
	defer rows.Close()

	var items []*ExperiencedDoctor
	for rows.Next() {
		var d ExperiencedDoctor
		if err := rows.Scan(&d.DoctorID, &d.FirstName, &d.LastName,
			&d.Specialization, &d.YearsExperience); err != nil {
			return nil, reporting.WrapDataAccess("experienced-doctors", err)
		}
		items = append(items, &d)
	}
	return items, reporting.WrapDataAccess("experienced-doctors", rows.Err())
}

func (r *reportRepoPG) AppointmentsPerDoctor(ctx context.Context) ([]*DoctorLoad, error) {
	// LEFT JOIN keeps doctors that have never been booked.
	rows, err := r.pool.Query(ctx, `
		SELECT d.doctor_id, d.first_name, d.last_name, COUNT(a.appointment_id)
		FROM doctors d
		LEFT JOIN appointments a ON a.doctor_id = d.doctor_id
		GROUP BY d.doctor_id, d.first_name, d.last_name
		ORDER BY COUNT(a.appointment_id) DESC, d.doctor_id ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("appointments-per-doctor", err)
	}
	defer rows.Close()

	var items []*DoctorLoad
	for rows.Next() {
		var d DoctorLoad
		if err := rows.Scan(&d.DoctorID, &d.FirstName, &d.LastName, &d.AppointmentCount); err != nil {
			return nil, reporting.WrapDataAccess("appointments-per-doctor", err)
		}
		items = append(items, &d)
	}
	return items, reporting.WrapDataAccess("appointments-per-doctor", rows.Err())
}

func (r *reportRepoPG) DoctorsBySpecialization(ctx context.Context) ([]*SpecializationCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT specialization, COUNT(*)
		FROM doctors
		GROUP BY specialization
		ORDER BY COUNT(*) DESC, specialization ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("doctors-by-specialization", err)
	}
	defer rows.Close()

	var items []*SpecializationCount
	for rows.Next() {
		var s SpecializationCount
		if err := rows.Scan(&s.Specialization, &s.DoctorCount); err != nil {
			return nil, reporting.WrapDataAccess("doctors-by-specialization", err)
		}
		items = append(items, &s)
	}
	return items, reporting.WrapDataAccess("doctors-by-specialization", rows.Err())
}

func (r *reportRepoPG) RevenueBySpecialization(ctx context.Context) ([]*SpecializationRevenue, error) {
	// Billing attaches to the patient, not the visit, so the join runs
	// doctors -> appointments -> patients -> billing on patient_id. A
	// patient billed once but seen under two specializations counts
	// toward both.
	rows, err := r.pool.Query(ctx, `
		SELECT d.specialization, ROUND(SUM(b.amount), 2)::float8
		FROM doctors d
		JOIN appointments a ON a.doctor_id = d.doctor_id
		JOIN billing b ON b.patient_id = a.patient_id
		WHERE b.payment_status = 'Paid'
		GROUP BY d.specialization
		ORDER BY SUM(b.amount) DESC, d.specialization ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("revenue-by-specialization", err)
	}
	defer rows.Close()

	var items []*SpecializationRevenue
	for rows.Next() {
		var s SpecializationRevenue
		if err := rows.Scan(&s.Specialization, &s.TotalRevenue); err != nil {
			return nil, reporting.WrapDataAccess("revenue-by-specialization", err)
		}
		items = append(items, &s)
	}
	return items, reporting.WrapDataAccess("revenue-by-specialization", rows.Err())
}
