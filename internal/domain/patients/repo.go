package patients

import "context"

// ReportRepository is the read-only store surface behind the patient
// reports.
type ReportRepository interface {
	// PatientBirthDates returns every patient with a recorded date of
	// birth, ordered by patient_id.
	PatientBirthDates(ctx context.Context) ([]*PatientBirthDate, error)
	// MissingInsurance returns patients whose insurance_provider or
	// insurance_number is absent (logical OR).
	MissingInsurance(ctx context.Context) ([]*UninsuredPatient, error)
	// FrequentPatients returns patients with strictly more than
	// minAppointments appointments, ordered by count descending.
	FrequentPatients(ctx context.Context, minAppointments int) ([]*FrequentPatient, error)
	// DuplicateEmails returns emails shared by more than one patient.
	DuplicateEmails(ctx context.Context) ([]*DuplicateEmail, error)
	// AllUniqueEmails returns the duplicate-eliminating union of patient
	// and doctor emails, ascending.
	AllUniqueEmails(ctx context.Context) ([]string, error)
}
