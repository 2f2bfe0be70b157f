package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/config"
	"github.com/tbickford/agplan/internal/plan"
)

var (
	initTermYear    int
	initChairperson string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a plan workspace in the current directory",
	Long:  "Creates a .agplan/ folder seeded with the Program Committee checklist plan for the term.",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().IntVar(&initTermYear, "term-year", 0, "First year of the term (default: current term)")
	initCmd.Flags().StringVar(&initChairperson, "chairperson", "", "Name of the Program Committee Chairman")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := plan.DefaultWorkspace
	if plan.WorkspaceExists(dir) {
		return fmt.Errorf("agplan is already initialized in this directory")
	}

	startYear := initTermYear
	if startYear == 0 {
		startYear = currentTermStartYear(time.Now())
	}

	p := plan.DefaultPlan(startYear)
	if initChairperson != "" {
		p.Chairperson = initChairperson
	}

	if err := plan.InitWorkspace(dir, p); err != nil {
		return err
	}
	if err := config.WriteDefault(dir); err != nil {
		return err
	}
	if err := plan.NewHistoryLogger(dir).PlanSeeded(p.TermYear); err != nil {
		return err
	}

	fmt.Printf("Initialized agplan in %s with the %s checklist plan (%d tasks)\n", dir, p.TermYear, len(p.AllTasks()))
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run: agplan tasks")
	fmt.Println("  2. Run: agplan (no arguments) for the interactive view")
	return nil
}
