package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tbickford/agplan/internal/plan"
)

func TestRunInit(t *testing.T) {
	t.Chdir(t.TempDir())
	initTermYear = 2025
	initChairperson = "Jordan Li"
	defer func() { initTermYear = 0; initChairperson = "" }()

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}

	p, err := plan.LoadPlan(plan.DefaultWorkspace)
	if err != nil {
		t.Fatalf("LoadPlan after init failed: %v", err)
	}
	if p.TermYear != "2025-2026" {
		t.Errorf("termYear = %q", p.TermYear)
	}
	if p.Chairperson != "Jordan Li" {
		t.Errorf("chairperson = %q", p.Chairperson)
	}
	if len(p.AllTasks()) == 0 {
		t.Error("seeded plan has no tasks")
	}

	if _, err := os.Stat(filepath.Join(plan.DefaultWorkspace, "config.yaml")); err != nil {
		t.Error("config.yaml not written")
	}

	history, err := os.ReadFile(filepath.Join(plan.DefaultWorkspace, "history.log"))
	if err != nil {
		t.Fatalf("history.log missing: %v", err)
	}
	if !strings.Contains(string(history), "plan_seeded") {
		t.Error("init did not log plan_seeded")
	}
}

func TestRunInitTwiceFails(t *testing.T) {
	t.Chdir(t.TempDir())
	initTermYear = 2025
	defer func() { initTermYear = 0 }()

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := runInit(initCmd, nil); err == nil {
		t.Error("second init should fail")
	}
}
