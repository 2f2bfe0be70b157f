// Package msgs defines shared message types for TUI view transitions
// and plan state changes.
package msgs

import "github.com/tbickford/agplan/internal/plan"

// SavePlanMsg asks the app to persist a mutated plan snapshot and log
// the event that produced it.
type SavePlanMsg struct {
	Plan   *plan.Plan
	Event  string // history event name
	TaskID int
	Name   string // task name, for task_added
}

// PlanReplacedMsg fans a fresh snapshot out to every view after a save.
type PlanReplacedMsg struct {
	Plan *plan.Plan
}

// NotificationMsg shows a transient message in the status bar.
type NotificationMsg struct {
	Text string
}

// ClearNotificationMsg hides the status bar notification.
type ClearNotificationMsg struct{}

// OpenFormMsg opens the task form. A zero Task means "add"; a task
// with an id means "edit".
type OpenFormMsg struct {
	Task     plan.Task
	Editing  bool
	Baseline bool // add to the baseline checklist instead of custom tasks
}

// CloseFormMsg closes the task form without saving.
type CloseFormMsg struct{}

// AdminChangedMsg signals a login or logout.
type AdminChangedMsg struct {
	IsAdmin bool
}

// GenerationDoneMsg carries the result of an AI plan generation.
type GenerationDoneMsg struct {
	Plan *plan.Plan
	Err  error
}

// ReportDoneMsg carries the result of an AI report generation.
type ReportDoneMsg struct {
	Narrative string
	Style     string
	Err       error
}

// RewordDoneMsg carries comment rewording suggestions.
type RewordDoneMsg struct {
	Suggestions []string
	Err         error
}
