package patients

import "time"

// Age band thresholds: under 18 is Child, 18 through 59 is Adult, 60 and
// over is Senior.
const (
	AgeGroupChild  = "Child"
	AgeGroupAdult  = "Adult"
	AgeGroupSenior = "Senior"

	seniorAge = 60
	adultAge  = 18
)

// DefaultMinAppointments is the frequent-patient cutoff; patients need
// strictly more appointments than this to qualify.
const DefaultMinAppointments = 3

// PatientBirthDate is the repo projection behind the age group report.
type PatientBirthDate struct {
	PatientID   int64     `json:"patient_id"`
	FirstName   string    `json:"first_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// PatientAgeGroup is one row of the age group report.
type PatientAgeGroup struct {
	PatientID int64  `json:"patient_id"`
	FirstName string `json:"first_name"`
	Age       int    `json:"age"`
	AgeGroup  string `json:"age_group"`
}

// UninsuredPatient is a patient missing an insurance provider or number.
type UninsuredPatient struct {
	PatientID         int64   `json:"patient_id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	InsuranceProvider *string `json:"insurance_provider,omitempty"`
	InsuranceNumber   *string `json:"insurance_number,omitempty"`
}

// FrequentPatient is a patient with more than the cutoff number of
// appointments.
type FrequentPatient struct {
	PatientID        int64  `json:"patient_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	AppointmentCount int64  `json:"appointment_count"`
}

// DuplicateEmail is an email shared by more than one patient record.
type DuplicateEmail struct {
	Email string `json:"email"`
	Count int64  `json:"count"`
}

// AgeInYears returns the whole-year age at the given date.
func AgeInYears(dateOfBirth, on time.Time) int {
	years := on.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(years, 0, 0).After(on) {
		years--
	}
	return years
}

// AgeBand classifies a whole-year age into Child, Adult or Senior.
func AgeBand(age int) string {
	switch {
	case age < adultAge:
		return AgeGroupChild
	case age < seniorAge:
		return AgeGroupAdult
	default:
		return AgeGroupSenior
	}
}
