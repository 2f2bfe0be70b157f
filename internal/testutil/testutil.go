// Package testutil provides shared test fixtures for the agplan project.
package testutil

import (
	"testing"

	"github.com/tbickford/agplan/internal/plan"
)

// SeedWorkspace moves the test into a fresh temp directory and
// initializes a workspace there with the default plan for the given
// term start year. Commands resolving the workspace relative to the
// working directory find it without further setup.
func SeedWorkspace(t *testing.T, startYear int) *plan.Plan {
	t.Helper()

	t.Chdir(t.TempDir())
	p := plan.DefaultPlan(startYear)
	if err := plan.InitWorkspace(plan.DefaultWorkspace, p); err != nil {
		t.Fatalf("InitWorkspace failed: %v", err)
	}
	return p
}
