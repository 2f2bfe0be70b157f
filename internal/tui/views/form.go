package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/tui/msgs"
	"github.com/tbickford/agplan/internal/tui/styles"
)

// RewordFunc produces alternative phrasings for a comment. Wired to
// the AI client by the app; replaced in tests.
type RewordFunc func(ctx context.Context, comment string) ([]string, error)

// Form field indexes, in focus order.
const (
	fieldName = iota
	fieldResponsible
	fieldStart
	fieldDue
	fieldPriority
	fieldStatus
	fieldComments
	fieldCount
)

var priorityCycle = []string{plan.PriorityHigh, plan.PriorityMedium, plan.PriorityLow}

var statusCycle = []string{plan.StatusNotStarted, plan.StatusInProgress, plan.StatusCompleted}

// FormModel is the add/edit task form.
type FormModel struct {
	plan     *plan.Plan
	task     plan.Task
	editing  bool
	baseline bool

	inputs   []textinput.Model // name, responsible, start, due
	comments textarea.Model
	priority int // index into priorityCycle
	status   int // index into statusCycle
	focus    int

	reword      RewordFunc
	suggestions []string
	rewordErr   string
	rewording   bool

	width  int
	height int
}

// NewFormModel builds the form for adding or editing a task.
func NewFormModel(p *plan.Plan, open msgs.OpenFormMsg, reword RewordFunc) FormModel {
	mk := func(placeholder, value string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.SetValue(value)
		ti.CharLimit = limit
		ti.Width = 48
		return ti
	}

	t := open.Task
	if !open.Editing {
		t.Status = plan.StatusNotStarted
		if t.Priority == "" {
			t.Priority = plan.PriorityMedium
		}
		if t.Responsible == "" {
			t.Responsible = "Program Chairman"
		}
	}

	m := FormModel{
		plan:     p,
		task:     t,
		editing:  open.Editing,
		baseline: open.Baseline,
		inputs: []textinput.Model{
			mk("Task name", t.Name, 200),
			mk("Responsible", t.Responsible, 100),
			mk("Start date (YYYY-MM-DD)", t.StartDate, 10),
			mk("Due date (YYYY-MM-DD)", t.DueDate, 10),
		},
		comments: textarea.New(),
		priority: indexOf(priorityCycle, t.Priority),
		status:   indexOf(statusCycle, t.Status),
		reword:   reword,
	}
	m.comments.Placeholder = "Comments"
	m.comments.SetValue(t.Comments)
	m.comments.SetWidth(60)
	m.comments.SetHeight(4)
	m.inputs[fieldName].Focus()
	return m
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return 0
}

// Init implements tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.RewordDoneMsg:
		m.rewording = false
		if msg.Err != nil {
			m.rewordErr = msg.Err.Error()
			return m, nil
		}
		m.suggestions = msg.Suggestions
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return msgs.CloseFormMsg{} }
		case "tab", "shift+tab":
			m = m.moveFocus(msg.String() == "tab")
			return m, nil
		case "ctrl+s":
			return m.submit()
		case "ctrl+r":
			return m.startReword()
		case "1", "2", "3":
			// Suggestion pick, unless a text field wants the digit.
			if len(m.suggestions) > 0 && m.focus != fieldComments && !m.textFieldFocused() {
				i := int(msg.String()[0] - '1')
				if i < len(m.suggestions) {
					m.comments.SetValue(m.suggestions[i])
					m.suggestions = nil
				}
				return m, nil
			}
		case "left", "right":
			if m.focus == fieldPriority {
				m.priority = cycle(m.priority, len(priorityCycle), msg.String() == "right")
				return m, nil
			}
			if m.focus == fieldStatus {
				m.status = cycle(m.status, len(statusCycle), msg.String() == "right")
				return m, nil
			}
		}
	}

	return m.updateFocused(msg)
}

func cycle(i, n int, forward bool) int {
	if forward {
		return (i + 1) % n
	}
	return (i + n - 1) % n
}

func (m FormModel) textFieldFocused() bool {
	return m.focus <= fieldDue
}

func (m FormModel) moveFocus(forward bool) FormModel {
	m.inputs[clampInput(m.focus)].Blur()
	m.comments.Blur()

	m.focus = cycle(m.focus, fieldCount, forward)
	if !m.editing && m.focus == fieldStatus {
		// New tasks always start Not-Started; skip the field.
		m.focus = cycle(m.focus, fieldCount, forward)
	}

	if m.textFieldFocused() {
		m.inputs[m.focus].Focus()
	} else if m.focus == fieldComments {
		m.comments.Focus()
	}
	return m
}

func clampInput(focus int) int {
	if focus > fieldDue {
		return fieldDue
	}
	return focus
}

func (m FormModel) updateFocused(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.textFieldFocused() {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else if m.focus == fieldComments {
		m.comments, cmd = m.comments.Update(msg)
	}
	return m, cmd
}

// submit builds the task and hands the mutated plan to the app.
func (m FormModel) submit() (FormModel, tea.Cmd) {
	t := m.task
	t.Name = strings.TrimSpace(m.inputs[fieldName].Value())
	t.Responsible = strings.TrimSpace(m.inputs[fieldResponsible].Value())
	t.StartDate = strings.TrimSpace(m.inputs[fieldStart].Value())
	t.DueDate = strings.TrimSpace(m.inputs[fieldDue].Value())
	t.Priority = priorityCycle[m.priority]
	t.Comments = m.comments.Value()
	if m.editing {
		t.Status = statusCycle[m.status]
	}

	if t.Name == "" {
		m.rewordErr = "task name is required"
		return m, nil
	}

	if m.editing {
		next := m.plan.UpdateTask(t)
		return m, func() tea.Msg {
			return msgs.SavePlanMsg{Plan: next, Event: plan.EventTaskUpdated, TaskID: t.ID}
		}
	}

	category := plan.CategoryGeneral
	if m.baseline {
		category = plan.CategoryBaseline
	}
	id := m.plan.NextID()
	next := m.plan.AddTask(t, category)
	return m, func() tea.Msg {
		return msgs.SavePlanMsg{Plan: next, Event: plan.EventTaskAdded, TaskID: id, Name: t.Name}
	}
}

// startReword kicks off comment rewording in the background.
func (m FormModel) startReword() (FormModel, tea.Cmd) {
	if m.reword == nil {
		m.rewordErr = "log in via the Admin tab to use rewording"
		return m, nil
	}
	comment := m.comments.Value()
	if strings.TrimSpace(comment) == "" {
		m.rewordErr = "write a comment first"
		return m, nil
	}

	m.rewording = true
	m.rewordErr = ""
	reword := m.reword
	return m, func() tea.Msg {
		suggestions, err := reword(context.Background(), comment)
		return msgs.RewordDoneMsg{Suggestions: suggestions, Err: err}
	}
}

// HelpItems returns the status bar entries for the form.
func (m FormModel) HelpItems() []string {
	return []string{"tab next field", "ctrl+s save", "ctrl+r reword comment", "esc cancel"}
}

// View implements tea.Model.
func (m FormModel) View() string {
	var b strings.Builder

	title := "Add Task"
	if m.editing {
		title = fmt.Sprintf("Edit Task %d", m.task.ID)
	} else if m.baseline {
		title = "Add Baseline Task"
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	labels := []string{"Name", "Responsible", "Start date", "Due date"}
	for i, input := range m.inputs {
		b.WriteString(m.renderLabel(labels[i], i))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderLabel("Priority", fieldPriority))
	b.WriteString(m.renderChoice(priorityCycle[m.priority], m.focus == fieldPriority))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(m.renderLabel("Status", fieldStatus))
		b.WriteString(m.renderChoice(plan.StatusLabel(statusCycle[m.status]), m.focus == fieldStatus))
		b.WriteString("\n")
	}

	b.WriteString(m.renderLabel("Comments", fieldComments))
	b.WriteString("\n")
	b.WriteString(m.comments.View())
	b.WriteString("\n")

	// Provenance travels with the task but is not editable here.
	if len(m.task.Excerpts) > 0 {
		b.WriteString(styles.SubtleStyle.Render("Excerpts"))
		b.WriteString("\n")
		for _, e := range m.task.Excerpts {
			b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("  %s: %q", e.Source, e.Text)))
			b.WriteString("\n")
		}
	}
	if len(m.task.Attachments) > 0 {
		b.WriteString(styles.SubtleStyle.Render("Attachments"))
		b.WriteString("\n")
		for _, a := range m.task.Attachments {
			b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("  %s (%s)", a.FileName, a.FileType)))
			b.WriteString("\n")
		}
	}

	if m.rewording {
		b.WriteString(styles.SubtleStyle.Render("Getting suggestions..."))
		b.WriteString("\n")
	}
	if m.rewordErr != "" {
		b.WriteString(styles.ErrorStyle.Render(m.rewordErr))
		b.WriteString("\n")
	}
	if len(m.suggestions) > 0 {
		b.WriteString(styles.TitleStyle.Render("Suggestions (press 1-3 to use)"))
		b.WriteString("\n")
		for i, s := range m.suggestions {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
		}
	}

	return b.String()
}

func (m FormModel) renderLabel(label string, field int) string {
	text := fmt.Sprintf("%-12s ", label)
	if m.focus == field {
		return styles.SelectedStyle.Render(text)
	}
	return styles.SubtleStyle.Render(text)
}

func (m FormModel) renderChoice(value string, focused bool) string {
	if focused {
		return styles.SelectedStyle.Render("< " + value + " >")
	}
	return value
}
