package patients

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

type reportRepoPG struct{ pool *pgxpool.Pool }

// NewReportRepoPG creates the Postgres-backed patient report repository.
func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository { return &reportRepoPG{pool: pool} }

func (r *reportRepoPG) PatientBirthDates(ctx context.Context) ([]*PatientBirthDate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT patient_id, first_name, date_of_birth
		FROM patients
		WHERE date_of_birth IS NOT NULL
		ORDER BY patient_id ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("patient-age-groups", err)
	}
	defer rows.Close()

	var items []*PatientBirthDate
	for rows.Next() {
		var p PatientBirthDate
		if err := rows.Scan(&p.PatientID, &p.FirstName, &p.DateOfBirth); err != nil {
			return nil, reporting.WrapDataAccess("patient-age-groups", err)
		}
		items = append(items, &p)
	}
	return items, reporting.WrapDataAccess("patient-age-groups", rows.Err())
}

func (r *reportRepoPG) MissingInsurance(ctx context.Context) ([]*UninsuredPatient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT patient_id, first_name, last_name, insurance_provider, insurance_number
		FROM patients
		WHERE insurance_provider IS NULL OR insurance_number IS NULL
		ORDER BY patient_id ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("patients-missing-insurance", err)
	}
	defer rows.Close()

	var items []*UninsuredPatient
	for rows.Next() {
		var p UninsuredPatient
		if err := rows.Scan(&p.PatientID, &p.FirstName, &p.LastName,
			&p.InsuranceProvider, &p.InsuranceNumber); err != nil {
			return nil, reporting.WrapDataAccess("patients-missing-insurance", err)
		}
		items = append(items, &p)
	}
	return items, reporting.WrapDataAccess("patients-missing-insurance", rows.Err())
}

func (r *reportRepoPG) FrequentPatients(ctx context.Context, minAppointments int) ([]*FrequentPatient, error) {
	// Strictly greater than the cutoff.
	rows, err := r.pool.Query(ctx, `
		SELECT p.patient_id, p.first_name, p.last_name, COUNT(a.appointment_id)
		FROM patients p
		JOIN appointments a ON a.patient_id = p.patient_id
		GROUP BY p.patient_id, p.first_name, p.last_name
		HAVING COUNT(a.appointment_id) > $1
		ORDER BY COUNT(a.appointment_id) DESC, p.patient_id ASC`, minAppointments)
	if err != nil {
		return nil, reporting.WrapDataAccess("frequent-patients", err)
	}
	defer rows.Close()

	var items []*FrequentPatient
	for rows.Next() {
		var p FrequentPatient
		if err := rows.Scan(&p.PatientID, &p.FirstName, &p.LastName, &p.AppointmentCount); err != nil {
			return nil, reporting.WrapDataAccess("frequent-patients", err)
		}
		items = append(items, &p)
	}
	return items, reporting.WrapDataAccess("frequent-patients", rows.Err())
}

func (r *reportRepoPG) DuplicateEmails(ctx context.Context) ([]*DuplicateEmail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT email, COUNT(*)
		FROM patients
		WHERE email IS NOT NULL
		GROUP BY email
		HAVING COUNT(*) > 1
		ORDER BY COUNT(*) DESC, email ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("duplicate-patient-emails", err)
	}
	defer rows.Close()

	var items []*DuplicateEmail
	for rows.Next() {
		var d DuplicateEmail
		if err := rows.Scan(&d.Email, &d.Count); err != nil {
			return nil, reporting.WrapDataAccess("duplicate-patient-emails", err)
		}
		items = append(items, &d)
	}
	return items, reporting.WrapDataAccess("duplicate-patient-emails", rows.Err())
}

func (r *reportRepoPG) AllUniqueEmails(ctx context.Context) ([]string, error) {
	// UNION eliminates duplicates across both tables.
	rows, err := r.pool.Query(ctx, `
		SELECT email FROM patients WHERE email IS NOT NULL
		UNION
		SELECT email FROM doctors WHERE email IS NOT NULL
		ORDER BY email ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("all-unique-emails", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, reporting.WrapDataAccess("all-unique-emails", err)
		}
		emails = append(emails, email)
	}
	return emails, reporting.WrapDataAccess("all-unique-emails", rows.Err())
}
