// Package task holds the task subcommands: add, update, remove,
// restore, attach and show.
package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

// TaskCmd is the parent command for task-related subcommands.
var TaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Add and change individual tasks",
	Long:  `Commands for adding, updating, removing and restoring plan tasks.`,
}

func init() {
	TaskCmd.AddCommand(addCmd)
	TaskCmd.AddCommand(updateCmd)
	TaskCmd.AddCommand(removeCmd)
	TaskCmd.AddCommand(restoreCmd)
	TaskCmd.AddCommand(attachCmd)
	TaskCmd.AddCommand(showCmd)
}

// saveWithLock writes the plan back under the workspace lock.
func saveWithLock(dir string, p *plan.Plan) error {
	lock := plan.NewWorkspaceLock(dir)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()
	return plan.SavePlan(dir, p)
}

// loadWorkspacePlan loads the plan from the default workspace.
func loadWorkspacePlan() (string, *plan.Plan, error) {
	dir := plan.DefaultWorkspace
	p, err := plan.LoadPlan(dir)
	if err != nil {
		return "", nil, err
	}
	return dir, p, nil
}

func validateStatus(s string) error {
	if !plan.ValidStatus(s) {
		return fmt.Errorf("invalid status %q (want Not-Started, In-Progress, Completed or Removed)", s)
	}
	return nil
}

func validatePriority(p string) error {
	if !plan.ValidPriority(p) {
		return fmt.Errorf("invalid priority %q (want High, Medium or Low)", p)
	}
	return nil
}
