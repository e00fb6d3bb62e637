package scheduling

import "time"

// AppointmentDetail is the projection of the appointment detail report:
// appointments inner-joined to patients and doctors.
type AppointmentDetail struct {
	AppointmentID    int64     `json:"appointment_id"`
	PatientFirstName string    `json:"patient_first_name"`
	DoctorFirstName  string    `json:"doctor_first_name"`
	AppointmentDate  time.Time `json:"appointment_date"`
	ReasonForVisit   *string   `json:"reason_for_visit,omitempty"`
}

// AppointmentRow is the row shape of the filtered appointment reports
// (by gender, by status, recent window).
type AppointmentRow struct {
	AppointmentID   int64     `json:"appointment_id"`
	PatientID       int64     `json:"patient_id"`
	PatientName     string    `json:"patient_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	ReasonForVisit  *string   `json:"reason_for_visit,omitempty"`
}

// StatusCount is one partition of the appointment status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// StatusRate extends StatusCount with a percentage of the grand total.
type StatusRate struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PatientLastVisit is a patient's most recent appointment date.
type PatientLastVisit struct {
	PatientID       int64     `json:"patient_id"`
	LastAppointment time.Time `json:"last_appointment"`
}

// VisitReasonCount is one reason_for_visit group with its frequency.
type VisitReasonCount struct {
	Reason string `json:"reason_for_visit"`
	Count  int64  `json:"count"`
}

// SummaryRow is one row of the appointment_summary view.
type SummaryRow struct {
	AppointmentID   int64     `json:"appointment_id"`
	PatientName     string    `json:"patient_name"`
	DoctorName      string    `json:"doctor_name"`
	Specialization  string    `json:"specialization"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	ReasonForVisit  *string   `json:"reason_for_visit,omitempty"`
}

// DefaultRecentWindowDays is the lookback for the recent appointments
// report: two years.
const DefaultRecentWindowDays = 730

// DefaultTopReasonsLimit bounds the top visit reasons report.
const DefaultTopReasonsLimit = 5

// ValidStatuses are the appointment statuses the store records.
var ValidStatuses = map[string]bool{
	"Scheduled": true,
	"Completed": true,
	"Cancelled": true,
	"No Show":   true,
}

// ValidGenders are the gender codes recorded on patients.
var ValidGenders = map[string]bool{
	"M":     true,
	"F":     true,
	"Other": true,
}
