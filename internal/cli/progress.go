package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var progressView string

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show plan progress",
	Long:  "Shows progress over the plan's active tasks. Views: dashboard, kanban, gantt.",
	RunE:  runProgress,
}

func init() {
	progressCmd.Flags().StringVar(&progressView, "view", "dashboard", "View to show: dashboard, kanban, gantt")
}

func runProgress(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	tasks := ws.Plan.ActiveTasks()
	switch progressView {
	case "dashboard":
		renderDashboard(tasks)
	case "kanban":
		renderKanban(tasks)
	case "gantt":
		renderGantt(tasks, ws.Plan.TermStartYear())
	default:
		return fmt.Errorf("unknown view %q (want dashboard, kanban or gantt)", progressView)
	}
	return nil
}

func renderDashboard(tasks []plan.Task) {
	m := plan.Dashboard(tasks)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendRow(table.Row{"Total tasks", m.Total})
	tw.AppendRow(table.Row{"Completed", m.Completed})
	tw.AppendRow(table.Row{"In progress", m.InProgress})
	tw.AppendRow(table.Row{"Not started", m.NotStarted})
	tw.AppendRow(table.Row{"Completion", fmt.Sprintf("%d%%", m.CompletionPct)})
	tw.Render()

	if len(m.HighPriorityOutstanding) > 0 {
		fmt.Println("\nHigh priority outstanding:")
		renderTaskTable(m.HighPriorityOutstanding)
	}
}

func renderKanban(tasks []plan.Task) {
	board := plan.Kanban(tasks)
	for _, col := range board.Columns() {
		fmt.Printf("\n%s (%d)\n", col.Title, len(col.Tasks))
		if len(col.Tasks) == 0 {
			continue
		}
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"ID", "Task", "Due", "Priority"})
		for _, t := range col.Tasks {
			tw.AppendRow(table.Row{t.ID, t.Name, t.DueDate, t.Priority})
		}
		tw.Render()
	}
}

// ganttChartWidth is the character width of the timeline column.
const ganttChartWidth = 60

func renderGantt(tasks []plan.Task, termStartYear int) {
	bars := plan.GanttLayout(tasks, termStartYear)

	// Month axis, one slot per month across the chart width.
	var axis strings.Builder
	perMonth := ganttChartWidth / len(plan.GanttMonths)
	for _, m := range plan.GanttMonths {
		axis.WriteString(fmt.Sprintf("%-*s", perMonth, m))
	}
	fmt.Printf("%-32s %s\n", "", axis.String())

	for _, bar := range bars {
		left, width := ganttCells(bar, ganttChartWidth)
		name := truncateName(bar.Task.Name, 30)
		row := strings.Repeat(" ", left) + strings.Repeat("#", width)
		fmt.Printf("%-32s %s\n", name, row)
	}
}

// ganttCells converts a bar's percentage placement to character cells,
// clamped to the chart. The layout does not cap the left offset at
// 100%, so a task dated past the term window lands at the right edge
// as an empty row instead of a negative-width bar.
func ganttCells(bar plan.GanttBar, chartWidth int) (left, width int) {
	left = int(bar.LeftPct / 100 * float64(chartWidth))
	if left > chartWidth {
		left = chartWidth
	}
	width = int(bar.WidthPct / 100 * float64(chartWidth))
	if width < 1 {
		width = 1
	}
	if left+width > chartWidth {
		width = chartWidth - left
	}
	return left, width
}

// truncateName shortens a task name to max runes with an ellipsis.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-3]) + "..."
}
