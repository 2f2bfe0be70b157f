package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeGenerator returns canned responses without touching the network.
type fakeGenerator struct {
	text    string
	jsonOut []byte
	err     error

	lastPrompt string
	lastSchema *Schema
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.text, f.err
}

func (f *fakeGenerator) GenerateJSON(ctx context.Context, prompt string, schema *Schema) ([]byte, error) {
	f.lastPrompt = prompt
	f.lastSchema = schema
	return f.jsonOut, f.err
}

const generatedPlanJSON = `{
	"termYear": "ignored",
	"periods": [
		{
			"periodName": "Fall Planning (August - October)",
			"tasks": [
				{"id": 99, "taskName": "Confirm venue", "responsible": "Program Chairman", "startDate": "2025-08-01", "dueDate": "2025-08-15", "status": "Not-Started", "priority": "High", "source": "Section 2, Page 13", "comments": ""},
				{"id": 99, "taskName": "Draft committee roster", "responsible": "Program Chairman", "startDate": "2025-08-10", "dueDate": "2025-09-01", "status": "Not-Started", "priority": "Medium", "source": "Section 2, Page 14", "comments": ""}
			]
		},
		{
			"periodName": "Winter (November - January)",
			"tasks": [
				{"id": 1, "taskName": "Send speaker invitations", "responsible": "Program Chairman", "startDate": "2025-11-01", "dueDate": "2025-11-30", "status": "Not-Started", "priority": "High", "source": "Section 3, Page 44", "comments": ""}
			]
		}
	]
}`

func TestGeneratePlan(t *testing.T) {
	fake := &fakeGenerator{jsonOut: []byte(generatedPlanJSON)}

	p, err := GeneratePlan(context.Background(), fake, "2025-2026", "Jordan Li")
	if err != nil {
		t.Fatalf("GeneratePlan failed: %v", err)
	}

	if p.TermYear != "2025-2026" {
		t.Errorf("termYear = %q, want the requested term", p.TermYear)
	}
	if p.Chairperson != "Jordan Li" {
		t.Errorf("chairperson = %q", p.Chairperson)
	}

	// Model-assigned ids are replaced with a sequential numbering.
	wantIDs := []int{1, 2, 3}
	var gotIDs []int
	for _, period := range p.Periods {
		for _, task := range period.Tasks {
			gotIDs = append(gotIDs, task.ID)
		}
	}
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("got %d tasks, want %d", len(gotIDs), len(wantIDs))
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("task id[%d] = %d, want %d", i, gotIDs[i], wantIDs[i])
		}
	}

	if fake.lastSchema != planSchema {
		t.Error("plan schema was not passed to the generator")
	}
	if !strings.Contains(fake.lastPrompt, "2025-2026 term") {
		t.Error("prompt does not mention the requested term")
	}
	if !strings.Contains(fake.lastPrompt, "AGMSC Handbook") {
		t.Error("prompt does not include the handbook context")
	}
}

func TestGeneratePlanGeneratorError(t *testing.T) {
	fake := &fakeGenerator{err: errors.New("boom")}
	if _, err := GeneratePlan(context.Background(), fake, "2025-2026", "Jordan Li"); err == nil {
		t.Error("expected error when the generator fails")
	}
}

func TestGeneratePlanRejectsInvalidPlan(t *testing.T) {
	// Bad status should fail plan validation.
	fake := &fakeGenerator{jsonOut: []byte(`{
		"termYear": "x",
		"periods": [{"periodName": "P", "tasks": [
			{"id": 1, "taskName": "T", "responsible": "R", "startDate": "2025-08-01", "dueDate": "2025-08-02", "status": "Done", "priority": "High", "source": "S", "comments": ""}
		]}]
	}`)}
	if _, err := GeneratePlan(context.Background(), fake, "2025-2026", "Jordan Li"); err == nil {
		t.Error("expected validation error for unknown status")
	}
}

func TestGeneratePlanRejectsGarbage(t *testing.T) {
	fake := &fakeGenerator{jsonOut: []byte(`{"unexpected": true}`)}
	if _, err := GeneratePlan(context.Background(), fake, "", "X"); err == nil {
		t.Error("expected error for a plan with no periods")
	}
}
