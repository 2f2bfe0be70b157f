package cli

import (
	"testing"
	"time"

	"github.com/tbickford/agplan/internal/testutil"
)

func TestCurrentTermStartYear(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"august starts a new term", time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), 2025},
		{"december is still the same term", time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC), 2025},
		{"spring belongs to the prior year's term", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), 2025},
		{"july is the tail of the term", time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC), 2025},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := currentTermStartYear(tt.now); got != tt.want {
				t.Errorf("currentTermStartYear = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTermLabel(t *testing.T) {
	if got := termLabel(2025); got != "2025-2026" {
		t.Errorf("termLabel = %q", got)
	}
}

func TestOpenWorkspaceMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := openWorkspace(); err == nil {
		t.Error("expected error for missing workspace")
	}
}

func TestRequireAdmin(t *testing.T) {
	testutil.SeedWorkspace(t, 2025)

	ws, err := openWorkspace()
	if err != nil {
		t.Fatalf("openWorkspace failed: %v", err)
	}

	if err := ws.requireAdmin(""); err == nil {
		t.Error("empty password should be rejected")
	}
	if err := ws.requireAdmin("wrong"); err == nil {
		t.Error("wrong password should be rejected")
	}
	if err := ws.requireAdmin(ws.Config.AdminPassword); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
}

func TestGeneratorRequiresKey(t *testing.T) {
	testutil.SeedWorkspace(t, 2025)
	t.Setenv("AGPLAN_API_KEY", "")
	ws, err := openWorkspace()
	if err != nil {
		t.Fatalf("openWorkspace failed: %v", err)
	}
	if _, err := ws.generator(); err == nil {
		t.Error("expected error when no API key is configured")
	}
}
