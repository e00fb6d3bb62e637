package patients

import (
	"context"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// RegisterReports wires the patient reports into the catalog.
func RegisterReports(c *reporting.Catalog, svc *Service) {
	c.Register(reporting.Definition{
		ID:          "patient-age-groups",
		Name:        "Patient Age Groups",
		Description: "Whole-year age and Child/Adult/Senior band per patient",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.PatientAgeGroups(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("patient_id", "first_name", "age", "age_group")
		for _, g := range items {
			t.Append(g.PatientID, g.FirstName, g.Age, g.AgeGroup)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "patients-missing-insurance",
		Name:        "Patients Missing Insurance",
		Description: "Patients without an insurance provider or number",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.PatientsMissingInsurance(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("patient_id", "first_name", "last_name", "insurance_provider", "insurance_number")
		for _, p := range items {
			t.Append(p.PatientID, p.FirstName, p.LastName, strOrNil(p.InsuranceProvider), strOrNil(p.InsuranceNumber))
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "frequent-patients",
		Name:        "Frequent Patients",
		Description: "Patients with strictly more than the cutoff number of appointments",
		Parameters: []reporting.ParamSpec{
			{Name: "minAppointments", Type: "int", Default: "3"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		min, err := reporting.IntParam(params, "minAppointments", DefaultMinAppointments)
		if err != nil {
			return nil, err
		}
		items, err := svc.FrequentPatients(ctx, min)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("patient_id", "first_name", "last_name", "appointment_count")
		for _, p := range items {
			t.Append(p.PatientID, p.FirstName, p.LastName, p.AppointmentCount)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "duplicate-patient-emails",
		Name:        "Duplicate Patient Emails",
		Description: "Emails shared by more than one patient record",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.DuplicatePatientEmails(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("email", "count")
		for _, d := range items {
			t.Append(d.Email, d.Count)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "all-unique-emails",
		Name:        "All Unique Emails",
		Description: "Union of patient and doctor emails, duplicates eliminated",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		emails, err := svc.AllUniqueEmails(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("email")
		for _, e := range emails {
			t.Append(e)
		}
		return t, nil
	})
}

func strOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
