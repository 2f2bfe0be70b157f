package plan

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Event type constants for the history log.
const (
	EventPlanSeeded      = "plan_seeded"
	EventPlanGenerated   = "plan_generated"
	EventPlanLoaded      = "plan_loaded"
	EventTaskAdded       = "task_added"
	EventTaskUpdated     = "task_updated"
	EventTaskRemoved     = "task_removed"
	EventTaskRestored    = "task_restored"
	EventReportGenerated = "report_generated"
)

// HistoryEvent is a single history log entry.
type HistoryEvent struct {
	Timestamp time.Time      `json:"timestamp"`
	Event     string         `json:"event"`
	Data      map[string]any `json:"data,omitempty"`
}

// HistoryLogger appends plan-change events to a JSON Lines file in the
// workspace. It is the audit surface for every mutation and plan
// replacement.
type HistoryLogger struct {
	path string
}

// NewHistoryLogger creates a history logger for the given workspace
// directory.
func NewHistoryLogger(dir string) *HistoryLogger {
	return &HistoryLogger{path: filepath.Join(dir, historyFileName)}
}

// Log appends an event to the history file.
func (h *HistoryLogger) Log(event string, data map[string]any) error {
	entry := HistoryEvent{
		Timestamp: time.Now(),
		Event:     event,
		Data:      data,
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	jsonBytes = append(jsonBytes, '\n')

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(jsonBytes)
	return err
}

// PlanSeeded logs creation of the default plan.
func (h *HistoryLogger) PlanSeeded(termYear string) error {
	return h.Log(EventPlanSeeded, map[string]any{"term_year": termYear})
}

// PlanGenerated logs replacement of the plan by an AI generation.
func (h *HistoryLogger) PlanGenerated(termYear, chairperson string, taskCount int) error {
	return h.Log(EventPlanGenerated, map[string]any{
		"term_year":   termYear,
		"chairperson": chairperson,
		"task_count":  taskCount,
	})
}

// PlanLoaded logs replacement of the plan by an imported file.
func (h *HistoryLogger) PlanLoaded(path string, taskCount int) error {
	return h.Log(EventPlanLoaded, map[string]any{
		"path":       path,
		"task_count": taskCount,
	})
}

// TaskAdded logs a task insertion.
func (h *HistoryLogger) TaskAdded(taskID int, name string, category Category) error {
	return h.Log(EventTaskAdded, map[string]any{
		"task_id":  taskID,
		"name":     name,
		"category": string(category),
	})
}

// TaskUpdated logs a task field edit.
func (h *HistoryLogger) TaskUpdated(taskID int) error {
	return h.Log(EventTaskUpdated, map[string]any{"task_id": taskID})
}

// TaskRemoved logs a remove transition.
func (h *HistoryLogger) TaskRemoved(taskID int) error {
	return h.Log(EventTaskRemoved, map[string]any{"task_id": taskID})
}

// TaskRestored logs a restore transition.
func (h *HistoryLogger) TaskRestored(taskID int) error {
	return h.Log(EventTaskRestored, map[string]any{"task_id": taskID})
}

// ReadHistory loads every event from the workspace history file, in
// append order. A missing file means no history yet, not an error.
func ReadHistory(dir string) ([]HistoryEvent, error) {
	f, err := os.Open(filepath.Join(dir, historyFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var events []HistoryEvent
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event HistoryEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue // skip malformed lines
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}

// ReportGenerated logs a report generation.
func (h *HistoryLogger) ReportGenerated(termYear, style string) error {
	return h.Log(EventReportGenerated, map[string]any{
		"term_year": termYear,
		"style":     style,
	})
}
