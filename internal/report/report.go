// Package report generates progress-report narratives from a plan and
// renders them to PDF.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tbickford/agplan/internal/ai"
	"github.com/tbickford/agplan/internal/plan"
)

// Style selects the overall voice of the report.
type Style string

const (
	StyleExecutive Style = "executive"
	StyleDetailed  Style = "detailed"
	StyleBullets   Style = "bullets"
)

// PriorityFocus selects which priorities the report covers.
type PriorityFocus string

const (
	FocusAll        PriorityFocus = "all"
	FocusHigh       PriorityFocus = "high"
	FocusHighMedium PriorityFocus = "high-medium"
)

// DetailLevel selects how much per-task detail the report includes.
type DetailLevel string

const (
	DetailBasic    DetailLevel = "basic"
	DetailStandard DetailLevel = "standard"
	DetailFull     DetailLevel = "full"
)

// Options controls report generation.
type Options struct {
	Style    Style
	Statuses []string // statuses to include; empty or all three means no filter
	Priority PriorityFocus
	Detail   DetailLevel
}

// DefaultOptions returns the options used when the user picks nothing.
func DefaultOptions() Options {
	return Options{
		Style:    StyleDetailed,
		Priority: FocusAll,
		Detail:   DetailStandard,
	}
}

// ValidStyle reports whether s is a known report style.
func ValidStyle(s Style) bool {
	switch s {
	case StyleExecutive, StyleDetailed, StyleBullets:
		return true
	}
	return false
}

// ValidPriorityFocus reports whether f is a known priority focus.
func ValidPriorityFocus(f PriorityFocus) bool {
	switch f {
	case FocusAll, FocusHigh, FocusHighMedium:
		return true
	}
	return false
}

// ValidDetailLevel reports whether d is a known detail level.
func ValidDetailLevel(d DetailLevel) bool {
	switch d {
	case DetailBasic, DetailStandard, DetailFull:
		return true
	}
	return false
}

// Generate produces the report narrative for a plan.
func Generate(ctx context.Context, g ai.Generator, p *plan.Plan, opts Options) (string, error) {
	prompt, err := buildPrompt(p, opts)
	if err != nil {
		return "", err
	}
	text, err := g.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate report: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// planForAnalysis prepares the plan for the prompt: removed tasks are
// dropped and attachment payloads are replaced with a filename list.
func planForAnalysis(p *plan.Plan) (string, error) {
	type analysisPeriod struct {
		Name  string           `json:"periodName"`
		Tasks []map[string]any `json:"tasks"`
	}
	out := struct {
		TermYear    string           `json:"termYear"`
		Chairperson string           `json:"chairperson"`
		Periods     []analysisPeriod `json:"periods"`
	}{
		TermYear:    p.TermYear,
		Chairperson: p.Chairperson,
		Periods:     []analysisPeriod{},
	}

	for _, period := range p.Periods {
		ap := analysisPeriod{Name: period.Name, Tasks: []map[string]any{}}
		for _, task := range period.Tasks {
			if task.Status == plan.StatusRemoved {
				continue
			}
			raw, err := json.Marshal(task)
			if err != nil {
				return "", fmt.Errorf("failed to encode task %d: %w", task.ID, err)
			}
			m := map[string]any{}
			if err := json.Unmarshal(raw, &m); err != nil {
				return "", fmt.Errorf("failed to encode task %d: %w", task.ID, err)
			}
			if len(task.Attachments) > 0 {
				names := make([]string, len(task.Attachments))
				for i, a := range task.Attachments {
					names[i] = a.FileName
				}
				m["attachmentNames"] = strings.Join(names, ", ")
			}
			delete(m, "attachments")
			ap.Tasks = append(ap.Tasks, m)
		}
		out.Periods = append(out.Periods, ap)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}
	return string(data), nil
}

// buildPrompt assembles the report prompt from the plan and options.
func buildPrompt(p *plan.Plan, opts Options) (string, error) {
	summary, err := planForAnalysis(p)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `You are an assistant for the Program Committee Chairman of the AGMSC.
The current chairperson is %s.
Your task is to generate a comprehensive, well-structured progress report based on the provided project plan data and the specific instructions that follow.
Format the entire output as plain text with clear section headings in uppercase. Do not use markdown or HTML.
`, p.Chairperson)

	switch opts.Style {
	case StyleExecutive:
		sb.WriteString("\n**Report Style:** Write a formal executive summary. It should be a high-level overview of the project's current status, key highlights, and overall outlook. Be concise and professional.\n")
	case StyleBullets:
		sb.WriteString("\n**Report Style:** Write the report using bullet points. Use clear headings for each section and list tasks as bullet points underneath. Be direct and to the point.\n")
	default:
		sb.WriteString("\n**Report Style:** Write a detailed progress update. Create separate sections for different task statuses (e.g., Accomplishments, In Progress). Be comprehensive and thorough in your descriptions.\n")
	}

	if n := len(opts.Statuses); n > 0 && n < 3 {
		fmt.Fprintf(&sb, "\n**Task Status Filter:** Only include tasks with the following statuses in your report: %s. Ignore all other tasks.\n", strings.Join(opts.Statuses, ", "))
	} else {
		sb.WriteString("\n**Task Status Filter:** Include tasks of all statuses (Completed, In-Progress, Not-Started).\n")
	}

	switch opts.Priority {
	case FocusHigh:
		sb.WriteString("\n**Task Priority Filter:** Focus exclusively on 'High' priority tasks. Do not mention Medium or Low priority tasks.\n")
	case FocusHighMedium:
		sb.WriteString("\n**Task Priority Filter:** Include tasks with 'High' and 'Medium' priority. Exclude 'Low' priority tasks.\n")
	default:
		sb.WriteString("\n**Task Priority Filter:** Include tasks of all priority levels.\n")
	}

	switch opts.Detail {
	case DetailBasic:
		sb.WriteString("\n**Detail Level:** For each task, only mention its name. Do not include dates, responsible person, comments, or attachments.\n")
	case DetailFull:
		sb.WriteString("\n**Detail Level:** For each task, provide full details: name, dates, responsible person, a summary of its comments, and a list of any attachment filenames (from the 'attachmentNames' property).\n")
	default:
		sb.WriteString("\n**Detail Level:** For each task, include its name, start date, and due date.\n")
	}

	sb.WriteString("\nHere is the project plan data in JSON format. Use this data to generate the report according to all the instructions above.\nProject Plan Data:\n")
	sb.WriteString(summary)
	sb.WriteString("\n")

	return sb.String(), nil
}
