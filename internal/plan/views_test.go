package plan

import "testing"

func testPlan() *Plan {
	return &Plan{
		TermYear:    "2025-2026",
		Chairperson: "Pat Chair",
		Periods: []Period{
			{
				Name: "Fall",
				Tasks: []Task{
					{ID: 1, Name: "Wrap-up meeting", Status: StatusNotStarted, Priority: PriorityHigh, Source: seedSource, DueDate: "2025-08-15", StartDate: "2025-08-01"},
					{ID: 2, Name: "Send reminders", Status: StatusInProgress, Priority: PriorityMedium, Source: seedSource, DueDate: "2025-09-15", StartDate: "2025-09-01"},
					{ID: 3, Name: "Book venue", Status: StatusCompleted, Priority: PriorityHigh, Source: seedSource, DueDate: "2025-09-30", StartDate: "2025-09-15"},
				},
			},
			{
				Name: "Winter",
				Tasks: []Task{
					{ID: 4, Name: "Order shirts", Status: StatusNotStarted, Priority: PriorityLow, Source: SourceUserAdded, DueDate: "2025-11-15", StartDate: "2025-11-01"},
					{ID: 5, Name: "Holiday note", Status: StatusRemoved, Priority: PriorityLow, Source: seedSource, DueDate: "2025-12-20", StartDate: "2025-12-15"},
					{ID: 6, Name: "Baseline addition", Status: StatusNotStarted, Priority: PriorityMedium, Source: SourceUserAddedBaseline, DueDate: "2025-12-01", StartDate: "2025-11-20"},
				},
			},
		},
	}
}

func collectIDs(periods []Period) []int {
	var ids []int
	for _, p := range periods {
		for _, t := range p.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func TestBaselineView(t *testing.T) {
	p := testPlan()
	ids := collectIDs(p.BaselineView())

	// Open, non-user-added tasks only. The user-added baseline task
	// (distinct source label) stays in the baseline view.
	want := []int{1, 2, 6}
	if len(ids) != len(want) {
		t.Fatalf("got ids %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("got ids %v, want %v", ids, want)
			break
		}
	}
}

func TestAddedView(t *testing.T) {
	p := testPlan()
	ids := collectIDs(p.AddedView())
	if len(ids) != 1 || ids[0] != 4 {
		t.Errorf("got ids %v, want [4]", ids)
	}
}

func TestCompletedView(t *testing.T) {
	p := testPlan()
	ids := collectIDs(p.CompletedView())
	if len(ids) != 1 || ids[0] != 3 {
		t.Errorf("got ids %v, want [3]", ids)
	}
}

func TestRemovedView(t *testing.T) {
	p := testPlan()
	ids := collectIDs(p.RemovedView())
	if len(ids) != 1 || ids[0] != 5 {
		t.Errorf("got ids %v, want [5]", ids)
	}
}

func TestViewsDropEmptyPeriods(t *testing.T) {
	p := testPlan()
	completed := p.CompletedView()
	if len(completed) != 1 {
		t.Fatalf("got %d periods, want 1", len(completed))
	}
	if completed[0].Name != "Fall" {
		t.Errorf("got period %q, want %q", completed[0].Name, "Fall")
	}
}

// Every active task belongs to exactly one of baseline, added, or
// completed; removed tasks appear only in the removed view.
func TestViewsPartitionActiveTasks(t *testing.T) {
	p := testPlan()

	seen := make(map[int]int)
	for _, view := range [][]Period{p.BaselineView(), p.AddedView(), p.CompletedView()} {
		for _, id := range collectIDs(view) {
			seen[id]++
		}
	}

	active := p.ActiveTasks()
	if len(seen) != len(active) {
		t.Fatalf("views cover %d tasks, active set has %d", len(seen), len(active))
	}
	for _, task := range active {
		if seen[task.ID] != 1 {
			t.Errorf("task %d appears in %d views, want exactly 1", task.ID, seen[task.ID])
		}
	}
	for _, id := range collectIDs(p.RemovedView()) {
		if seen[id] != 0 {
			t.Errorf("removed task %d also appears in an active view", id)
		}
	}
}
