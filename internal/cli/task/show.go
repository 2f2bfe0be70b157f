package task

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task in full",
	Long:  `Shows every field of a task, including comments, excerpts and attachments.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	_, p, err := loadWorkspacePlan()
	if err != nil {
		return err
	}

	t, ok := p.FindTask(id)
	if !ok {
		return fmt.Errorf("no task with id %d", id)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendRow(table.Row{"ID", t.ID})
	tw.AppendRow(table.Row{"Task", t.Name})
	tw.AppendRow(table.Row{"Responsible", t.Responsible})
	tw.AppendRow(table.Row{"Start", t.StartDate})
	tw.AppendRow(table.Row{"Due", t.DueDate})
	tw.AppendRow(table.Row{"Status", plan.StatusLabel(t.Status)})
	tw.AppendRow(table.Row{"Priority", t.Priority})
	tw.AppendRow(table.Row{"Source", t.Source})
	if t.Comments != "" {
		tw.AppendRow(table.Row{"Comments", t.Comments})
	}
	tw.Render()

	if len(t.Excerpts) > 0 {
		fmt.Println("\nExcerpts:")
		for _, e := range t.Excerpts {
			fmt.Printf("  %s: %q\n", e.Source, e.Text)
		}
	}
	if len(t.Attachments) > 0 {
		fmt.Println("\nAttachments:")
		for _, a := range t.Attachments {
			fmt.Printf("  %s (%s)\n", a.FileName, a.FileType)
		}
	}
	return nil
}
