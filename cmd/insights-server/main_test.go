package main

import (
	"testing"

	"github.com/hospitalops/insights/internal/domain/billing"
	"github.com/hospitalops/insights/internal/domain/doctors"
	"github.com/hospitalops/insights/internal/domain/patients"
	"github.com/hospitalops/insights/internal/domain/scheduling"
	"github.com/hospitalops/insights/internal/domain/treatments"
)

func TestBuildCatalog_AllReportsRegistered(t *testing.T) {
	catalog := buildCatalog(
		scheduling.NewService(nil),
		patients.NewService(nil),
		billing.NewService(nil),
		doctors.NewService(nil),
		treatments.NewService(nil),
	)

	defs := catalog.Definitions()
	if len(defs) != 28 {
		t.Fatalf("catalog has %d reports, want 28", len(defs))
	}

	// Registration panics on duplicate IDs, so reaching here also proves
	// every domain picked distinct identifiers.
	want := []string{
		"appointment-details",
		"appointment-status-rate",
		"billing-rank",
		"total-revenue",
		"patient-age-groups",
		"revenue-by-specialization",
		"top-treatment-types",
	}
	for _, id := range want {
		if catalog.Find(id) == nil {
			t.Errorf("report %q not registered", id)
		}
	}
}

func TestBuildCatalog_DefinitionsSorted(t *testing.T) {
	catalog := buildCatalog(
		scheduling.NewService(nil),
		patients.NewService(nil),
		billing.NewService(nil),
		doctors.NewService(nil),
		treatments.NewService(nil),
	)

	defs := catalog.Definitions()
	for i := 1; i < len(defs); i++ {
		if defs[i-1].ID >= defs[i].ID {
			t.Fatalf("definitions not sorted: %q before %q", defs[i-1].ID, defs[i].ID)
		}
	}
}
