package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/ai"
)

var (
	generateTermYear    int
	generateChairperson string
	generatePassword    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh plan with AI",
	Long:  "Replaces the workspace plan with a new one generated from the AGMSC Handbook. Requires the admin password and a Gemini API key.",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateTermYear, "term-year", 0, "First year of the term (default: current term)")
	generateCmd.Flags().StringVar(&generateChairperson, "chairperson", "", "Name of the Program Committee Chairman")
	generateCmd.Flags().StringVar(&generatePassword, "password", "", "Admin password")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	if err := ws.requireAdmin(generatePassword); err != nil {
		return err
	}
	gen, err := ws.generator()
	if err != nil {
		return err
	}

	startYear := generateTermYear
	if startYear == 0 {
		startYear = currentTermStartYear(time.Now())
	}
	term := termLabel(startYear)

	chairperson := generateChairperson
	if chairperson == "" {
		chairperson = ws.Plan.Chairperson
	}

	fmt.Printf("Generating plan for the %s term...\n", term)
	p, err := ai.GeneratePlan(cmd.Context(), gen, term, chairperson)
	if err != nil {
		return err
	}

	if err := ws.save(p); err != nil {
		return err
	}
	if err := ws.History.PlanGenerated(term, chairperson, len(p.AllTasks())); err != nil {
		return err
	}

	fmt.Printf("New plan generated: %d periods, %d tasks\n", len(p.Periods), len(p.AllTasks()))
	return nil
}
