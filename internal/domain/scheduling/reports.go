package scheduling

import (
	"context"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

const dateLayout = "2006-01-02"

// RegisterReports wires the appointment reports into the catalog.
func RegisterReports(c *reporting.Catalog, svc *Service) {
	c.Register(reporting.Definition{
		ID:          "appointment-details",
		Name:        "Appointment Details",
		Description: "Appointments joined to patient and doctor names",
		Parameters: []reporting.ParamSpec{
			{Name: "limit", Type: "int", Description: "top-N cutoff; omit for all rows ordered by date"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		limit, err := reporting.IntParam(params, "limit", 0)
		if err != nil {
			return nil, err
		}
		items, err := svc.AppointmentDetails(ctx, limit)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("appointment_id", "patient_first_name", "doctor_first_name", "appointment_date", "reason_for_visit")
		for _, d := range items {
			t.Append(d.AppointmentID, d.PatientFirstName, d.DoctorFirstName, d.AppointmentDate.Format(dateLayout), strOrNil(d.ReasonForVisit))
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "appointments-by-gender",
		Name:        "Appointments by Patient Gender",
		Description: "Appointments filtered by the patient's gender code",
		Parameters: []reporting.ParamSpec{
			{Name: "gender", Type: "enum", Required: true, Description: "M, F or Other"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		gender, err := reporting.StringParam(params, "gender", true)
		if err != nil {
			return nil, err
		}
		items, err := svc.AppointmentsByGender(ctx, gender)
		if err != nil {
			return nil, err
		}
		return appointmentRowTable(items), nil
	})

	c.Register(reporting.Definition{
		ID:          "recent-appointments",
		Name:        "Recent Appointments",
		Description: "Appointments within the lookback window",
		Parameters: []reporting.ParamSpec{
			{Name: "windowDays", Type: "int", Default: "730"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		window, err := reporting.IntParam(params, "windowDays", DefaultRecentWindowDays)
		if err != nil {
			return nil, err
		}
		items, err := svc.RecentAppointments(ctx, window)
		if err != nil {
			return nil, err
		}
		return appointmentRowTable(items), nil
	})

	c.Register(reporting.Definition{
		ID:          "appointments-by-status",
		Name:        "Appointments by Status",
		Description: "Appointments with exactly the given status",
		Parameters: []reporting.ParamSpec{
			{Name: "status", Type: "enum", Required: true, Description: "Scheduled, Completed, Cancelled or No Show"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		status, err := reporting.StringParam(params, "status", true)
		if err != nil {
			return nil, err
		}
		items, err := svc.AppointmentsByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		return appointmentRowTable(items), nil
	})

	c.Register(reporting.Definition{
		ID:          "appointment-status-rate",
		Name:        "Appointment Status Rate",
		Description: "Per-status count and percentage of all appointments",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.AppointmentStatusRate(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("status", "count", "percentage")
		for _, s := range items {
			t.Append(s.Status, s.Count, s.Percentage)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "latest-appointment-per-patient",
		Name:        "Latest Appointment per Patient",
		Description: "Each patient's most recent appointment date",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.LatestAppointmentPerPatient(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("patient_id", "last_appointment")
		for _, v := range items {
			t.Append(v.PatientID, v.LastAppointment.Format(dateLayout))
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "top-visit-reasons",
		Name:        "Top Visit Reasons",
		Description: "Most frequent reasons for visit",
		Parameters: []reporting.ParamSpec{
			{Name: "limit", Type: "int", Default: "5"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		limit, err := reporting.IntParam(params, "limit", 0)
		if err != nil {
			return nil, err
		}
		items, err := svc.TopVisitReasons(ctx, limit)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("reason_for_visit", "count")
		for _, v := range items {
			t.Append(v.Reason, v.Count)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "appointment-summary",
		Name:        "Appointment Summary",
		Description: "Rows from the appointment_summary view, optionally for one date",
		Parameters: []reporting.ParamSpec{
			{Name: "date", Type: "date", Description: "YYYY-MM-DD"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		onDate, err := reporting.DateParam(params, "date")
		if err != nil {
			return nil, err
		}
		items, err := svc.AppointmentSummary(ctx, onDate)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("appointment_id", "patient_name", "doctor_name", "specialization", "appointment_date", "status", "reason_for_visit")
		for _, s := range items {
			t.Append(s.AppointmentID, s.PatientName, s.DoctorName, s.Specialization,
				s.AppointmentDate.Format(dateLayout), s.Status, strOrNil(s.ReasonForVisit))
		}
		return t, nil
	})
}

func appointmentRowTable(items []*AppointmentRow) *reporting.Table {
	t := reporting.NewTable("appointment_id", "patient_id", "patient_name", "appointment_date", "status", "reason_for_visit")
	for _, r := range items {
		t.Append(r.AppointmentID, r.PatientID, r.PatientName, r.AppointmentDate.Format(dateLayout), r.Status, strOrNil(r.ReasonForVisit))
	}
	return t
}

func strOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
