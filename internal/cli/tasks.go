package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var tasksView string

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List plan tasks",
	Long:  "Lists plan tasks grouped by period. Views: baseline, added, completed, removed.",
	RunE:  runTasks,
}

func init() {
	tasksCmd.Flags().StringVar(&tasksView, "view", "baseline", "View to show: baseline, added, completed, removed")
}

func runTasks(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	var periods []plan.Period
	var empty string
	switch tasksView {
	case "baseline":
		periods, empty = ws.Plan.BaselineView(), plan.EmptyBaselineMessage
	case "added":
		periods, empty = ws.Plan.AddedView(), plan.EmptyAddedMessage
	case "completed":
		periods, empty = ws.Plan.CompletedView(), plan.EmptyCompletedMessage
	case "removed":
		periods, empty = ws.Plan.RemovedView(), plan.EmptyRemovedMessage
	default:
		return fmt.Errorf("unknown view %q (want baseline, added, completed or removed)", tasksView)
	}

	fmt.Printf("Term %s", ws.Plan.TermYear)
	if ws.Plan.Chairperson != "" {
		fmt.Printf(" - %s", ws.Plan.Chairperson)
	}
	fmt.Println()

	if len(periods) == 0 {
		fmt.Println(empty)
		return nil
	}

	for _, period := range periods {
		fmt.Printf("\n%s\n", period.Name)
		renderTaskTable(period.Tasks)
	}
	return nil
}

func renderTaskTable(tasks []plan.Task) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Task", "Responsible", "Start", "Due", "Status", "Priority", "Source"})
	for _, t := range tasks {
		tw.AppendRow(table.Row{t.ID, t.Name, t.Responsible, t.StartDate, t.DueDate, plan.StatusLabel(t.Status), t.Priority, t.Source})
	}
	tw.Render()
}
