package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultWorkspace is the directory holding the working plan and its
// history log, relative to the current directory.
const DefaultWorkspace = ".agplan"

const (
	planFileName    = "plan.json"
	historyFileName = "history.log"
)

// ValidationError describes a plan file that failed the shape check on
// load. TaskID is zero for plan-level problems.
type ValidationError struct {
	Field  string
	TaskID int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.TaskID != 0 {
		return fmt.Sprintf("invalid plan: task %d: %s %s", e.TaskID, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid plan: %s %s", e.Field, e.Reason)
}

// Validate checks the plan's required fields, closed enums, and date
// formats. This is deliberately stricter than the original front-end,
// which accepted any object carrying termYear and periods.
func (p *Plan) Validate() error {
	if p.TermYear == "" {
		return &ValidationError{Field: "termYear", Reason: "is missing"}
	}
	if p.Periods == nil {
		return &ValidationError{Field: "periods", Reason: "is missing"}
	}
	for _, period := range p.Periods {
		for _, t := range period.Tasks {
			if !ValidStatus(t.Status) {
				return &ValidationError{Field: "status", TaskID: t.ID, Reason: fmt.Sprintf("%q is not a known status", t.Status)}
			}
			if !ValidPriority(t.Priority) {
				return &ValidationError{Field: "priority", TaskID: t.ID, Reason: fmt.Sprintf("%q is not a known priority", t.Priority)}
			}
			if t.StartDate != "" {
				if _, ok := parseDate(t.StartDate); !ok {
					return &ValidationError{Field: "startDate", TaskID: t.ID, Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", t.StartDate)}
				}
			}
			if t.DueDate != "" {
				if _, ok := parseDate(t.DueDate); !ok {
					return &ValidationError{Field: "dueDate", TaskID: t.ID, Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", t.DueDate)}
				}
			}
		}
	}
	return nil
}

// InitWorkspace creates the workspace directory with the given plan and
// an empty history log.
func InitWorkspace(dir string, p *Plan) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	if err := SavePlan(dir, p); err != nil {
		return err
	}
	historyPath := filepath.Join(dir, historyFileName)
	if _, err := os.Stat(historyPath); os.IsNotExist(err) {
		if err := os.WriteFile(historyPath, []byte{}, 0644); err != nil {
			return fmt.Errorf("failed to create history log: %w", err)
		}
	}
	return nil
}

// WorkspaceExists reports whether dir holds a plan file.
func WorkspaceExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, planFileName))
	return err == nil
}

// LoadPlan reads and validates plan.json from the workspace directory.
func LoadPlan(dir string) (*Plan, error) {
	data, err := os.ReadFile(filepath.Join(dir, planFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no plan found. Run 'agplan init' first")
		}
		return nil, fmt.Errorf("failed to read plan.json: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan.json: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// SavePlan atomically writes plan.json to the workspace directory
// using a temp file + rename.
func SavePlan(dir string, p *Plan) error {
	planPath := filepath.Join(dir, planFileName)
	tmpPath := fmt.Sprintf("%s.tmp.%d", planPath, os.Getpid())

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, planPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// ExportFileName is the conventional file name for an exported plan.
func ExportFileName(p *Plan) string {
	return fmt.Sprintf("agmsc-plan-%s.json", p.TermYear)
}

// ExportPlan writes the plan to path as indented JSON, losslessly
// including excerpts and attachments.
func ExportPlan(p *Plan, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ImportPlan reads a previously exported plan file. Unknown JSON keys
// are dropped silently; anything failing the shape check is rejected
// with a ValidationError.
func ImportPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
