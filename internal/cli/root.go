package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/cli/task"
	"github.com/tbickford/agplan/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "agplan",
	Short:   "Task planner for the AGMSC Program Committee",
	Long:    `Agplan manages the Program Committee Chairman's term plan: baseline checklist tasks, custom tasks, progress views, and AI-generated plans and reports.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(task.TaskCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
