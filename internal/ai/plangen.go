package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tbickford/agplan/internal/plan"
)

// taskSchema mirrors the task shape the model is asked to produce.
var taskSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"id":          {Type: TypeInteger},
		"taskName":    {Type: TypeString},
		"responsible": {Type: TypeString},
		"startDate":   {Type: TypeString},
		"dueDate":     {Type: TypeString},
		"status":      {Type: TypeString},
		"priority":    {Type: TypeString},
		"source":      {Type: TypeString},
		"comments":    {Type: TypeString},
	},
}

// planSchema constrains plan generation to the plan JSON shape.
var planSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"termYear": {Type: TypeString},
		"periods": {
			Type: TypeArray,
			Items: &Schema{
				Type: TypeObject,
				Properties: map[string]*Schema{
					"periodName": {Type: TypeString},
					"tasks": {
						Type:  TypeArray,
						Items: taskSchema,
					},
				},
			},
		},
	},
}

// GeneratePlan asks the model for a fresh committee plan for the given
// term. Task ids in the response are discarded and reassigned
// sequentially; termYear and chairperson are forced to the caller's
// values regardless of what the model returns.
func GeneratePlan(ctx context.Context, g Generator, termYear, chairperson string) (*plan.Plan, error) {
	prompt := buildPlanPrompt(termYear)

	data, err := g.GenerateJSON(ctx, prompt, planSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan: %w", err)
	}

	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse generated plan: %w", err)
	}

	id := 1
	for pi := range p.Periods {
		for ti := range p.Periods[pi].Tasks {
			p.Periods[pi].Tasks[ti].ID = id
			id++
		}
	}
	p.TermYear = termYear
	p.Chairperson = chairperson

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("generated plan is invalid: %w", err)
	}

	return &p, nil
}

// buildPlanPrompt creates the prompt for plan generation.
func buildPlanPrompt(termYear string) string {
	return fmt.Sprintf(`Based on the provided AGMSC Handbook, create a detailed project plan for the Program Committee Chairman for the %s term. The plan should be structured into logical time periods (e.g., "August - October", "November - January", etc.). For each period, list specific tasks. Each task must include a responsible party (default to 'Program Chairman'), a suggested start date, a suggested due date within the period, a priority (High, Medium, or Low), and the source from the handbook (e.g., "Section 1, Page 5"). The status for all initial tasks should be 'Not-Started' and comments should be an empty string. Ensure dates are in YYYY-MM-DD format and fall realistically within the term year provided. Focus on actionable items relevant to the Program Chairman's role.

      Context Document:
      %s`, termYear, agmscHandbook)
}
