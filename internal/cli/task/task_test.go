package task

import (
	"testing"

	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/testutil"
)

func setupWorkspace(t *testing.T) {
	t.Helper()
	testutil.SeedWorkspace(t, 2025)
}

func TestRunAdd(t *testing.T) {
	setupWorkspace(t)
	addDueDate = "2025-09-15"
	addPriority = plan.PriorityHigh
	addBaseline = false
	defer func() { addDueDate = ""; addPriority = plan.PriorityMedium }()

	before, err := plan.LoadPlan(plan.DefaultWorkspace)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	wantID := before.NextID()

	if err := runAdd(addCmd, []string{"Book AV equipment"}); err != nil {
		t.Fatalf("runAdd failed: %v", err)
	}

	after, err := plan.LoadPlan(plan.DefaultWorkspace)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	got, ok := after.FindTask(wantID)
	if !ok {
		t.Fatalf("task %d not found after add", wantID)
	}
	if got.Name != "Book AV equipment" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Source != plan.SourceUserAdded {
		t.Errorf("source = %q, want %q", got.Source, plan.SourceUserAdded)
	}
	if got.Status != plan.StatusNotStarted {
		t.Errorf("status = %q", got.Status)
	}
}

func TestRunAddRejectsBadPriority(t *testing.T) {
	setupWorkspace(t)
	addPriority = "Urgent"
	defer func() { addPriority = plan.PriorityMedium }()

	if err := runAdd(addCmd, []string{"Anything"}); err == nil {
		t.Error("expected error for invalid priority")
	}
}

func TestRunUpdate(t *testing.T) {
	setupWorkspace(t)

	if err := updateCmd.Flags().Set("status", plan.StatusCompleted); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if err := updateCmd.Flags().Set("comments", "Done at the kickoff call"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	if err := runUpdate(updateCmd, []string{"1"}); err != nil {
		t.Fatalf("runUpdate failed: %v", err)
	}

	after, err := plan.LoadPlan(plan.DefaultWorkspace)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	got, ok := after.FindTask(1)
	if !ok {
		t.Fatal("task 1 missing")
	}
	if got.Status != plan.StatusCompleted {
		t.Errorf("status = %q", got.Status)
	}
	if got.Comments != "Done at the kickoff call" {
		t.Errorf("comments = %q", got.Comments)
	}
}

func TestRunUpdateUnknownID(t *testing.T) {
	setupWorkspace(t)
	if err := runUpdate(updateCmd, []string{"99999"}); err == nil {
		t.Error("expected error for unknown task id")
	}
}

func TestRunRemoveAndRestore(t *testing.T) {
	setupWorkspace(t)

	if err := runRemove(removeCmd, []string{"2"}); err != nil {
		t.Fatalf("runRemove failed: %v", err)
	}
	p, err := plan.LoadPlan(plan.DefaultWorkspace)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if got, _ := p.FindTask(2); got.Status != plan.StatusRemoved {
		t.Errorf("status after remove = %q", got.Status)
	}

	if err := runRestore(restoreCmd, []string{"2"}); err != nil {
		t.Fatalf("runRestore failed: %v", err)
	}
	p, err = plan.LoadPlan(plan.DefaultWorkspace)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if got, _ := p.FindTask(2); got.Status != plan.StatusNotStarted {
		t.Errorf("status after restore = %q", got.Status)
	}
}

func TestRunRemoveBadID(t *testing.T) {
	setupWorkspace(t)
	if err := runRemove(removeCmd, []string{"not-a-number"}); err == nil {
		t.Error("expected error for non-numeric id")
	}
}
