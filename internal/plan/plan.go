package plan

import (
	"strconv"
	"strings"
	"time"
)

// Plan is the aggregate root: the full committee task roster for one
// annual term. A Plan exclusively owns its periods and, transitively,
// every task; no task is shared between plans or periods.
type Plan struct {
	TermYear    string   `json:"termYear"`
	Chairperson string   `json:"chairperson"`
	Periods     []Period `json:"periods"`
}

// Period is a named time bucket of tasks. Task-to-period assignment is
// structural: a task belongs to whichever period's sequence contains it.
type Period struct {
	Name  string `json:"periodName"`
	Tasks []Task `json:"tasks"`
}

// dateLayout is the calendar date format used throughout a plan.
const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD date string.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TermStartYear returns the first year of the term label, or 0 if the
// label is not in YYYY-YYYY form.
func (p *Plan) TermStartYear() int {
	first, _, ok := strings.Cut(p.TermYear, "-")
	if !ok {
		return 0
	}
	year, err := strconv.Atoi(first)
	if err != nil {
		return 0
	}
	return year
}

// AllTasks returns every task in period order, including removed ones.
func (p *Plan) AllTasks() []Task {
	var tasks []Task
	for _, period := range p.Periods {
		tasks = append(tasks, period.Tasks...)
	}
	return tasks
}

// ActiveTasks returns every non-removed task in period order.
func (p *Plan) ActiveTasks() []Task {
	var tasks []Task
	for _, period := range p.Periods {
		for _, t := range period.Tasks {
			if t.Active() {
				tasks = append(tasks, t)
			}
		}
	}
	return tasks
}

// FindTask returns the task with the given id, or false if no period
// contains it.
func (p *Plan) FindTask(id int) (Task, bool) {
	for _, period := range p.Periods {
		for _, t := range period.Tasks {
			if t.ID == id {
				return t, true
			}
		}
	}
	return Task{}, false
}

// NextID returns one past the highest task id in the plan. The plan
// owns id assignment so that user-added tasks cannot collide the way
// wall-clock ids can.
func (p *Plan) NextID() int {
	max := 0
	for _, period := range p.Periods {
		for _, t := range period.Tasks {
			if t.ID > max {
				max = t.ID
			}
		}
	}
	return max + 1
}

// clone returns a copy of the plan with fresh period and task slices.
// Excerpts and attachments are still shared; mutation operations
// replace whole task values, never edit them in place.
func (p *Plan) clone() *Plan {
	next := &Plan{
		TermYear:    p.TermYear,
		Chairperson: p.Chairperson,
		Periods:     make([]Period, len(p.Periods)),
	}
	for i, period := range p.Periods {
		tasks := make([]Task, len(period.Tasks))
		copy(tasks, period.Tasks)
		next.Periods[i] = Period{Name: period.Name, Tasks: tasks}
	}
	return next
}
