package patients

import (
	"context"
	"time"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// Service runs the patient reports. Age classification happens here so the
// band boundaries stay unit-testable without a store.
type Service struct {
	repo ReportRepository
	now  func() time.Time
}

// NewService creates the patient report service.
func NewService(repo ReportRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// PatientAgeGroups computes each patient's whole-year age as of today and
// classifies it into Child, Adult or Senior.
func (s *Service) PatientAgeGroups(ctx context.Context) ([]*PatientAgeGroup, error) {
	births, err := s.repo.PatientBirthDates(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	groups := make([]*PatientAgeGroup, 0, len(births))
	for _, b := range births {
		age := AgeInYears(b.DateOfBirth, today)
		groups = append(groups, &PatientAgeGroup{
			PatientID: b.PatientID,
			FirstName: b.FirstName,
			Age:       age,
			AgeGroup:  AgeBand(age),
		})
	}
	return groups, nil
}

// PatientsMissingInsurance returns patients lacking an insurance provider
// or number.
func (s *Service) PatientsMissingInsurance(ctx context.Context) ([]*UninsuredPatient, error) {
	return s.repo.MissingInsurance(ctx)
}

// FrequentPatients returns patients with strictly more than
// minAppointments appointments. Zero is a literal cutoff (anyone with at
// least one appointment); callers apply DefaultMinAppointments when the
// parameter is absent.
func (s *Service) FrequentPatients(ctx context.Context, minAppointments int) ([]*FrequentPatient, error) {
	if minAppointments < 0 {
		return nil, reporting.InvalidParam("minAppointments", "must not be negative, got %d", minAppointments)
	}
	return s.repo.FrequentPatients(ctx, minAppointments)
}

// DuplicatePatientEmails returns emails shared by more than one patient
// record.
func (s *Service) DuplicatePatientEmails(ctx context.Context) ([]*DuplicateEmail, error) {
	return s.repo.DuplicateEmails(ctx)
}

// AllUniqueEmails returns the union of patient and doctor emails with
// duplicates eliminated.
func (s *Service) AllUniqueEmails(ctx context.Context) ([]string, error) {
	return s.repo.AllUniqueEmails(ctx)
}
