package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a task",
	Long:  `Marks a task as Removed. The task stays in the plan and can be restored later.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	if err := saveWithLock(dir, p.RemoveTask(id)); err != nil {
		return err
	}
	if err := plan.NewHistoryLogger(dir).TaskRemoved(id); err != nil {
		return err
	}

	fmt.Printf("Removed task %d: %s\n", id, t.Name)
	return nil
}
