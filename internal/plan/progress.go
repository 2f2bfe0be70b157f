package plan

import (
	"math"
	"sort"
	"time"
)

// DashboardMetrics summarizes the active task set for the dashboard.
type DashboardMetrics struct {
	Total                   int
	Completed               int
	InProgress              int
	NotStarted              int
	CompletionPct           int
	HighPriorityOutstanding []Task
}

// Dashboard computes metrics over the given tasks. Callers pass the
// active (non-removed) task set.
func Dashboard(tasks []Task) DashboardMetrics {
	m := DashboardMetrics{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusCompleted:
			m.Completed++
		case StatusInProgress:
			m.InProgress++
		case StatusNotStarted:
			m.NotStarted++
		}
		if t.Priority == PriorityHigh && t.Status != StatusCompleted {
			m.HighPriorityOutstanding = append(m.HighPriorityOutstanding, t)
		}
	}
	if m.Total > 0 {
		m.CompletionPct = int(math.Round(float64(m.Completed) / float64(m.Total) * 100))
	}
	return m
}

// KanbanBoard partitions tasks into the three visible status buckets.
// Removed tasks are excluded by the caller, not filtered here; a task
// in any other status is simply absent from the board.
type KanbanBoard struct {
	NotStarted []Task
	InProgress []Task
	Completed  []Task
}

// Kanban buckets tasks by status.
func Kanban(tasks []Task) KanbanBoard {
	var b KanbanBoard
	for _, t := range tasks {
		switch t.Status {
		case StatusNotStarted:
			b.NotStarted = append(b.NotStarted, t)
		case StatusInProgress:
			b.InProgress = append(b.InProgress, t)
		case StatusCompleted:
			b.Completed = append(b.Completed, t)
		}
	}
	return b
}

// Columns returns the board's buckets in display order with their titles.
func (b KanbanBoard) Columns() []struct {
	Title string
	Tasks []Task
} {
	return []struct {
		Title string
		Tasks []Task
	}{
		{StatusLabel(StatusNotStarted), b.NotStarted},
		{StatusLabel(StatusInProgress), b.InProgress},
		{StatusLabel(StatusCompleted), b.Completed},
	}
}

// GanttMonths are the fixed horizontal axis labels, starting with the
// term's first month.
var GanttMonths = []string{"Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}

// GanttBar is one timeline row: a task with its horizontal placement as
// percentages of the term window.
type GanttBar struct {
	Task     Task
	LeftPct  float64
	WidthPct float64
}

// TermWindow returns the fixed fiscal-year window for a term label:
// August 1 of the first year through July 31 of the second. The window
// is a convention, independent of the actual task dates.
func TermWindow(startYear int) (time.Time, time.Time) {
	start := time.Date(startYear, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+1, time.July, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// GanttLayout places each task on the term timeline, sorted ascending
// by start date. Degenerate inputs never fail: a due date before the
// start date collapses to a one-day bar, a missing start date renders
// the due date as a narrow marker, and bar widths are floored at 0.5%
// so zero-length tasks stay visible.
func GanttLayout(tasks []Task, termStartYear int) []GanttBar {
	windowStart, windowEnd := TermWindow(termStartYear)
	totalDays := windowEnd.Sub(windowStart).Hours() / 24

	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, iOK := parseDate(sorted[i].StartDate)
		sj, jOK := parseDate(sorted[j].StartDate)
		if iOK && jOK {
			return si.Before(sj)
		}
		return iOK && !jOK
	})

	bars := make([]GanttBar, 0, len(sorted))
	for _, t := range sorted {
		bars = append(bars, GanttBar{Task: t, LeftPct: barLeft(t, windowStart, totalDays), WidthPct: barWidth(t, totalDays)})
	}
	return bars
}

func barLeft(t Task, windowStart time.Time, totalDays float64) float64 {
	start, ok := parseDate(t.StartDate)
	if !ok {
		// Fall back to the due date as a zero-width marker position.
		due, dueOK := parseDate(t.DueDate)
		if !dueOK {
			return 0
		}
		start = due
	}
	offset := start.Sub(windowStart).Hours() / 24
	return math.Max(0, offset/totalDays*100)
}

func barWidth(t Task, totalDays float64) float64 {
	start, ok := parseDate(t.StartDate)
	if !ok {
		return 1
	}
	due, dueOK := parseDate(t.DueDate)
	if !dueOK || due.Before(start) {
		// Corrected, not rejected: a due date before the start date
		// collapses to a one-day bar at the start date.
		due = start
	}
	duration := due.Sub(start).Hours()/24 + 1 // inclusive of the due date
	if duration < 1 {
		duration = 1
	}
	return math.Max(0.5, duration/totalDays*100)
}
