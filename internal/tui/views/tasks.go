// Package views holds the TUI tab views: task lists, the task form,
// progress, report, and admin.
package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/tui/msgs"
	"github.com/tbickford/agplan/internal/tui/styles"
)

// TaskListKind selects which projection of the plan a list shows.
type TaskListKind int

const (
	ListBaseline TaskListKind = iota
	ListAdded
	ListCompleted
	ListRemoved
)

// TaskListModel renders one projection of the plan as period sections
// with a movable cursor.
type TaskListModel struct {
	kind    TaskListKind
	plan    *plan.Plan
	cursor  int
	isAdmin bool
	width   int
	height  int
}

// NewTaskListModel creates a list over a plan projection.
func NewTaskListModel(kind TaskListKind, p *plan.Plan) TaskListModel {
	return TaskListModel{kind: kind, plan: p}
}

// periods returns the projection for this list's kind.
func (m TaskListModel) periods() []plan.Period {
	switch m.kind {
	case ListAdded:
		return m.plan.AddedView()
	case ListCompleted:
		return m.plan.CompletedView()
	case ListRemoved:
		return m.plan.RemovedView()
	default:
		return m.plan.BaselineView()
	}
}

// emptyMessage returns the text shown when the projection has no tasks.
func (m TaskListModel) emptyMessage() string {
	switch m.kind {
	case ListAdded:
		return plan.EmptyAddedMessage
	case ListCompleted:
		return plan.EmptyCompletedMessage
	case ListRemoved:
		return plan.EmptyRemovedMessage
	default:
		return plan.EmptyBaselineMessage
	}
}

// visibleTasks flattens the projection in display order.
func (m TaskListModel) visibleTasks() []plan.Task {
	var tasks []plan.Task
	for _, period := range m.periods() {
		tasks = append(tasks, period.Tasks...)
	}
	return tasks
}

// selected returns the task under the cursor.
func (m TaskListModel) selected() (plan.Task, bool) {
	tasks := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return plan.Task{}, false
	}
	return tasks[m.cursor], true
}

// Init implements tea.Model.
func (m TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.PlanReplacedMsg:
		m.plan = msg.Plan
		if n := len(m.visibleTasks()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case msgs.AdminChangedMsg:
		m.isAdmin = msg.IsAdmin
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visibleTasks())-1 {
				m.cursor++
			}
		case "a":
			if m.isAdmin && (m.kind == ListBaseline || m.kind == ListAdded) {
				baseline := m.kind == ListBaseline
				return m, func() tea.Msg { return msgs.OpenFormMsg{Baseline: baseline} }
			}
		case "enter", "e":
			if m.isAdmin && m.kind != ListRemoved {
				if t, ok := m.selected(); ok {
					return m, func() tea.Msg { return msgs.OpenFormMsg{Task: t, Editing: true} }
				}
			}
		case "x":
			if m.isAdmin && m.kind != ListRemoved {
				if t, ok := m.selected(); ok {
					next := m.plan.RemoveTask(t.ID)
					return m, func() tea.Msg {
						return msgs.SavePlanMsg{Plan: next, Event: plan.EventTaskRemoved, TaskID: t.ID}
					}
				}
			}
		case "r":
			if m.isAdmin && m.kind == ListRemoved {
				if t, ok := m.selected(); ok {
					next := m.plan.RestoreTask(t.ID)
					return m, func() tea.Msg {
						return msgs.SavePlanMsg{Plan: next, Event: plan.EventTaskRestored, TaskID: t.ID}
					}
				}
			}
		}
	}
	return m, nil
}

// HelpItems returns the status bar entries for this list.
func (m TaskListModel) HelpItems() []string {
	items := []string{"↑/↓ move", "tab switch view"}
	if m.isAdmin {
		switch m.kind {
		case ListRemoved:
			items = append(items, "r restore")
		case ListCompleted:
			items = append(items, "e edit", "x remove")
		default:
			items = append(items, "a add", "e edit", "x remove")
		}
	}
	items = append(items, "q quit")
	return items
}

// View implements tea.Model.
func (m TaskListModel) View() string {
	periods := m.periods()
	if len(periods) == 0 {
		return styles.SubtleStyle.Render(m.emptyMessage())
	}

	var b strings.Builder
	idx := 0
	for _, period := range periods {
		b.WriteString(styles.TitleStyle.Render(period.Name))
		b.WriteString("\n")
		for _, t := range period.Tasks {
			b.WriteString(m.renderRow(t, idx == m.cursor))
			b.WriteString("\n")
			idx++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m TaskListModel) renderRow(t plan.Task, selected bool) string {
	marker := "  "
	if selected {
		marker = styles.SelectedStyle.Render("> ")
	}

	name := t.Name
	if max := m.width - 46; max > 10 {
		name = truncateName(name, max)
	}

	line := fmt.Sprintf("%s[%3d] %-8s %-12s %s",
		marker,
		t.ID,
		styles.PriorityStyle(t.Priority).Render(t.Priority),
		plan.StatusLabel(t.Status),
		name)
	if t.DueDate != "" {
		line += styles.SubtleStyle.Render("  due " + t.DueDate)
	}
	if selected {
		return styles.SelectedStyle.Render(line)
	}
	return line
}
