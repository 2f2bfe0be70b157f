package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/analysis"
	"github.com/tbickford/agplan/internal/plan"
)

var (
	historyLimit   int
	historySummary bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the workspace change log",
	Long:  "Shows recent plan changes from the history log, or an activity summary with --summary.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of recent events to show")
	historyCmd.Flags().BoolVar(&historySummary, "summary", false, "Show aggregate activity instead of individual events")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	events, err := plan.ReadHistory(ws.Dir)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	if historySummary {
		renderHistorySummary(analysis.Summarize(events, ws.Plan))
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"When", "Event", "Details"})
	for _, event := range analysis.Recent(events, historyLimit) {
		tw.AppendRow(table.Row{
			event.Timestamp.Format("2006-01-02 15:04"),
			event.Event,
			eventDetails(event),
		})
	}
	tw.Render()
	return nil
}

func renderHistorySummary(s analysis.Summary) {
	fmt.Printf("%d events\n\n", s.Total)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Event", "Count"})
	for _, name := range []string{
		plan.EventPlanSeeded, plan.EventPlanGenerated, plan.EventPlanLoaded,
		plan.EventTaskAdded, plan.EventTaskUpdated, plan.EventTaskRemoved,
		plan.EventTaskRestored, plan.EventReportGenerated,
	} {
		if n := s.EventCounts[name]; n > 0 {
			tw.AppendRow(table.Row{name, n})
		}
	}
	tw.Render()

	if len(s.MostEdited) == 0 {
		return
	}
	fmt.Println("\nMost edited tasks")
	tw = table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Task", "Edits"})
	for _, t := range s.MostEdited {
		tw.AppendRow(table.Row{t.TaskID, t.Name, t.Touches})
	}
	tw.Render()
}

func eventDetails(event plan.HistoryEvent) string {
	switch event.Event {
	case plan.EventPlanSeeded:
		return fmt.Sprintf("term %v", event.Data["term_year"])
	case plan.EventPlanGenerated:
		return fmt.Sprintf("term %v, %v tasks", event.Data["term_year"], event.Data["task_count"])
	case plan.EventPlanLoaded:
		return fmt.Sprintf("%v, %v tasks", event.Data["path"], event.Data["task_count"])
	case plan.EventTaskAdded:
		return fmt.Sprintf("task %v: %v", event.Data["task_id"], event.Data["name"])
	case plan.EventTaskUpdated, plan.EventTaskRemoved, plan.EventTaskRestored:
		return fmt.Sprintf("task %v", event.Data["task_id"])
	case plan.EventReportGenerated:
		return fmt.Sprintf("%v style", event.Data["style"])
	}
	return ""
}
