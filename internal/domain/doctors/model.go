package doctors

// DefaultMinYearsExperience is the cutoff for the experienced doctor
// report.
const DefaultMinYearsExperience = 20

// ExperiencedDoctor is a doctor at or above the experience cutoff.
type ExperiencedDoctor struct {
	DoctorID        int64  `json:"doctor_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Specialization  string `json:"specialization"`
	YearsExperience int    `json:"years_experience"`
}

// DoctorLoad is a doctor's appointment count.
type DoctorLoad struct {
	DoctorID         int64  `json:"doctor_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	AppointmentCount int64  `json:"appointment_count"`
}

// SpecializationCount is the doctor headcount for one specialization.
type SpecializationCount struct {
	Specialization string `json:"specialization"`
	DoctorCount    int64  `json:"doctor_count"`
}

// SpecializationRevenue is the Paid billing total attributed to one
// specialization. Bills attach through the patient, so a patient seen by
// doctors of several specializations contributes their full billing to
// each of them.
type SpecializationRevenue struct {
	Specialization string  `json:"specialization"`
	TotalRevenue   float64 `json:"total_revenue"`
}
