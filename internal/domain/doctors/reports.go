package doctors

import (
	"context"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// RegisterReports wires the doctor reports into the catalog.
func RegisterReports(c *reporting.Catalog, svc *Service) {
	c.Register(reporting.Definition{
		ID:          "experienced-doctors",
		Name:        "Experienced Doctors",
		Description: "Doctors at or above the experience cutoff",
		Parameters: []reporting.ParamSpec{
			{Name: "minYears", Type: "int", Default: "20"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		minYears, err := reporting.IntParam(params, "minYears", 0)
		if err != nil {
			return nil, err
		}
		items, err := svc.ExperiencedDoctors(ctx, minYears)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("doctor_id", "first_name", "last_name", "specialization", "years_experience")
		for _, d := range items {
			t.Append(d.DoctorID, d.FirstName, d.LastName, d.Specialization, d.YearsExperience)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "appointments-per-doctor",
		Name:        "Appointments per Doctor",
		Description: "Each doctor's appointment count, including never-booked doctors",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.AppointmentsPerDoctor(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("doctor_id", "first_name", "last_name", "appointment_count")
		for _, d := range items {
			t.Append(d.DoctorID, d.FirstName, d.LastName, d.AppointmentCount)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "doctors-by-specialization",
		Name:        "Doctors by Specialization",
		Description: "Doctor headcount per specialization",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.DoctorsBySpecialization(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("specialization", "doctor_count")
		for _, s := range items {
			t.Append(s.Specialization, s.DoctorCount)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "revenue-by-specialization",
		Name:        "Revenue by Specialization",
		Description: "Paid billing totals per specialization, attributed through the patient",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.RevenueBySpecialization(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("specialization", "total_revenue")
		for _, s := range items {
			t.Append(s.Specialization, s.TotalRevenue)
		}
		return t, nil
	})
}
