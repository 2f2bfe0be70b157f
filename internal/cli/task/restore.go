package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a removed task",
	Long:  `Brings a removed task back into the plan with status Not-Started.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
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

	if err := saveWithLock(dir, p.RestoreTask(id)); err != nil {
		return err
	}
	if err := plan.NewHistoryLogger(dir).TaskRestored(id); err != nil {
		return err
	}

	fmt.Printf("Restored task %d: %s\n", id, t.Name)
	return nil
}
