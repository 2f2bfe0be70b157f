package plan

import (
	"sort"
	"time"
)

// Category selects the provenance label for a user-added task.
type Category string

// Task categories for AddTask.
const (
	CategoryBaseline Category = "baseline"
	CategoryGeneral  Category = "general"
)

// Source returns the source label recorded on tasks of this category.
func (c Category) Source() string {
	if c == CategoryBaseline {
		return SourceUserAddedBaseline
	}
	return SourceUserAdded
}

// UpdateTask returns a new plan with the task whose id matches t.ID
// replaced by t. If no period contains the id, the returned plan is
// structurally unchanged; the miss is not reported.
func (p *Plan) UpdateTask(t Task) *Plan {
	next := p.clone()
	for pi := range next.Periods {
		for ti := range next.Periods[pi].Tasks {
			if next.Periods[pi].Tasks[ti].ID == t.ID {
				next.Periods[pi].Tasks[ti] = t
				return next
			}
		}
	}
	return next
}

// AddTask returns a new plan containing t placed into a period by due
// month. The task is assigned a fresh id and the category's source
// label; any id or source already set on t is overwritten.
//
// Placement scans periods in order and picks the first whose reference
// month is at or before the new task's due month. A period's reference
// month is the month of its first task's due date (January when the
// period is empty), so it drifts as tasks come and go. When no period
// matches, the task lands in the first period, or in a new "General"
// period when the plan has none.
func (p *Plan) AddTask(t Task, category Category) *Plan {
	t.ID = p.NextID()
	t.Source = category.Source()

	next := p.clone()
	due, dueOK := parseDate(t.DueDate)

	if dueOK {
		for pi := range next.Periods {
			refMonth, ok := periodReferenceMonth(next.Periods[pi])
			if !ok {
				continue
			}
			if due.Month() >= refMonth {
				next.Periods[pi].Tasks = append(next.Periods[pi].Tasks, t)
				sortByDueDate(next.Periods[pi].Tasks)
				return next
			}
		}
	}

	if len(next.Periods) > 0 {
		next.Periods[0].Tasks = append(next.Periods[0].Tasks, t)
		sortByDueDate(next.Periods[0].Tasks)
		return next
	}

	next.Periods = append(next.Periods, Period{Name: "General", Tasks: []Task{t}})
	return next
}

// RemoveTask returns a new plan with the task's status set to Removed.
// The task stays in its period; only the Removed projection shows it.
func (p *Plan) RemoveTask(id int) *Plan {
	if t, ok := p.FindTask(id); ok {
		t.Status = StatusRemoved
		return p.UpdateTask(t)
	}
	return p.clone()
}

// RestoreTask returns a new plan with the task's status set back to
// Not-Started. The status it held before removal is not preserved.
func (p *Plan) RestoreTask(id int) *Plan {
	if t, ok := p.FindTask(id); ok {
		t.Status = StatusNotStarted
		return p.UpdateTask(t)
	}
	return p.clone()
}

// periodReferenceMonth returns the month used to decide whether a new
// task belongs in the period. An empty period answers January; a first
// task with an unparseable due date disqualifies the period.
func periodReferenceMonth(period Period) (time.Month, bool) {
	if len(period.Tasks) == 0 {
		return time.January, true
	}
	due, ok := parseDate(period.Tasks[0].DueDate)
	if !ok {
		return 0, false
	}
	return due.Month(), true
}

// sortByDueDate orders tasks ascending by due date, keeping the
// existing order for ties. Tasks with unparseable due dates sort last.
func sortByDueDate(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, iOK := parseDate(tasks[i].DueDate)
		dj, jOK := parseDate(tasks[j].DueDate)
		if iOK && jOK {
			return di.Before(dj)
		}
		return iOK && !jOK
	})
}
