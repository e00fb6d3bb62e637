package doctors

import "context"

// ReportRepository is the read-only store surface behind the doctor
// reports.
type ReportRepository interface {
	// ExperiencedDoctors returns doctors with years_experience at or
	// above minYears, most experienced first.
	ExperiencedDoctors(ctx context.Context, minYears int) ([]*ExperiencedDoctor, error)
	// AppointmentsPerDoctor returns each doctor's appointment count,
	// busiest first. Doctors without appointments are included with 0.
	AppointmentsPerDoctor(ctx context.Context) ([]*DoctorLoad, error)
	// DoctorsBySpecialization returns doctor headcounts per
	// specialization.
	DoctorsBySpecialization(ctx context.Context) ([]*SpecializationCount, error)
	// RevenueBySpecialization returns Paid billing totals per
	// specialization, with bills attached through the patient.
	RevenueBySpecialization(ctx context.Context) ([]*SpecializationRevenue, error)
}
