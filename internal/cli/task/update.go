package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var (
	updateName        string
	updateResponsible string
	updateStartDate   string
	updateDueDate     string
	updateStatus      string
	updatePriority    string
	updateComments    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields on a task",
	Long:  `Updates a task in place. Only the flags you pass change; everything else keeps its current value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Task name")
	updateCmd.Flags().StringVar(&updateResponsible, "responsible", "", "Responsible party")
	updateCmd.Flags().StringVar(&updateStartDate, "start", "", "Start date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateDueDate, "due", "", "Due date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "Status: Not-Started, In-Progress, Completed or Removed")
	updateCmd.Flags().StringVar(&updatePriority, "priority", "", "Priority: High, Medium or Low")
	updateCmd.Flags().StringVar(&updateComments, "comments", "", "Free-form comments")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	dir, p, err := loadWorkspacePlan()
	if err != nil {
		return err
	}

	t, ok := p.FindTask(id)
	if !ok {
		return fmt.Errorf("no task with id %d", id)
	}

	if cmd.Flags().Changed("name") {
		t.Name = updateName
	}
	if cmd.Flags().Changed("responsible") {
		t.Responsible = updateResponsible
	}
	if cmd.Flags().Changed("start") {
		t.StartDate = updateStartDate
	}
	if cmd.Flags().Changed("due") {
		t.DueDate = updateDueDate
	}
	if cmd.Flags().Changed("status") {
		if err := validateStatus(updateStatus); err != nil {
			return err
		}
		t.Status = updateStatus
	}
	if cmd.Flags().Changed("priority") {
		if err := validatePriority(updatePriority); err != nil {
			return err
		}
		t.Priority = updatePriority
	}
	if cmd.Flags().Changed("comments") {
		t.Comments = updateComments
	}

	if err := saveWithLock(dir, p.UpdateTask(t)); err != nil {
		return err
	}
	if err := plan.NewHistoryLogger(dir).TaskUpdated(id); err != nil {
		return err
	}

	fmt.Printf("Updated task %d: %s\n", id, t.Name)
	return nil
}
