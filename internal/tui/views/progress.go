package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/tui/components"
	"github.com/tbickford/agplan/internal/tui/msgs"
	"github.com/tbickford/agplan/internal/tui/styles"
)

// progressMode selects which progress visualization is shown.
type progressMode int

const (
	modeDashboard progressMode = iota
	modeKanban
	modeGantt
)

// ProgressModel shows dashboard metrics, a kanban board, or a gantt
// timeline over the plan's active tasks.
type ProgressModel struct {
	plan   *plan.Plan
	mode   progressMode
	width  int
	height int
}

// NewProgressModel creates the progress view over a plan snapshot.
func NewProgressModel(p *plan.Plan) ProgressModel {
	return ProgressModel{plan: p}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case msgs.PlanReplacedMsg:
		m.plan = msg.Plan

	case tea.KeyMsg:
		switch msg.String() {
		case "d":
			m.mode = modeDashboard
		case "b":
			m.mode = modeKanban
		case "g":
			m.mode = modeGantt
		}
	}
	return m, nil
}

// HelpItems returns the status bar entries for the progress view.
func (m ProgressModel) HelpItems() []string {
	return []string{"d dashboard", "b board", "g gantt", "tab switch view", "q quit"}
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	tasks := m.plan.ActiveTasks()
	switch m.mode {
	case modeKanban:
		return m.viewKanban(tasks)
	case modeGantt:
		return m.viewGantt(tasks)
	default:
		return m.viewDashboard(tasks)
	}
}

func (m ProgressModel) viewDashboard(tasks []plan.Task) string {
	metrics := plan.Dashboard(tasks)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Dashboard"))
	b.WriteString("\n")

	bar := components.NewProgress(metrics.Completed, metrics.Total, 30)
	if metrics.Total > 0 {
		b.WriteString(fmt.Sprintf("Overall completion  %s\n\n", bar.View()))
	} else {
		b.WriteString(styles.SubtleStyle.Render("No active tasks.\n"))
	}

	b.WriteString(fmt.Sprintf("Total       %d\n", metrics.Total))
	b.WriteString(fmt.Sprintf("Completed   %d\n", metrics.Completed))
	b.WriteString(fmt.Sprintf("In progress %d\n", metrics.InProgress))
	b.WriteString(fmt.Sprintf("Not started %d\n", metrics.NotStarted))

	if len(metrics.HighPriorityOutstanding) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render("High priority outstanding"))
		b.WriteString("\n")
		for _, t := range metrics.HighPriorityOutstanding {
			line := fmt.Sprintf("  [%3d] %s", t.ID, t.Name)
			if t.DueDate != "" {
				line += styles.SubtleStyle.Render("  due " + t.DueDate)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m ProgressModel) viewKanban(tasks []plan.Task) string {
	board := plan.Kanban(tasks)

	var cols []string
	for _, col := range board.Columns() {
		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))))
		b.WriteString("\n")
		for _, t := range col.Tasks {
			name := truncateName(t.Name, 24)
			b.WriteString(styles.PriorityStyle(t.Priority).Render("• "))
			b.WriteString(name)
			b.WriteString("\n")
		}
		cols = append(cols, styles.BoxStyle.Width(30).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// ganttWidth is the character width of the timeline column.
const ganttWidth = 48

func (m ProgressModel) viewGantt(tasks []plan.Task) string {
	bars := plan.GanttLayout(tasks, m.plan.TermStartYear())

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Term timeline %s", m.plan.TermYear)))
	b.WriteString("\n")

	perMonth := ganttWidth / len(plan.GanttMonths)
	var axis strings.Builder
	for _, month := range plan.GanttMonths {
		axis.WriteString(fmt.Sprintf("%-*s", perMonth, month))
	}
	b.WriteString(fmt.Sprintf("%-28s %s\n", "", styles.SubtleStyle.Render(axis.String())))

	for _, bar := range bars {
		// The layout does not cap the left offset at 100%; a task dated
		// past the term window clamps to the right edge as an empty row.
		left := int(bar.LeftPct / 100 * ganttWidth)
		if left > ganttWidth {
			left = ganttWidth
		}
		width := int(bar.WidthPct / 100 * ganttWidth)
		if width < 1 {
			width = 1
		}
		if left+width > ganttWidth {
			width = ganttWidth - left
		}

		name := truncateName(bar.Task.Name, 26)
		row := strings.Repeat(" ", left) + styles.PriorityStyle(bar.Task.Priority).Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("%-28s %s\n", name, row))
	}
	return b.String()
}

// truncateName shortens a task name to max runes with an ellipsis.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-3]) + "..."
}
