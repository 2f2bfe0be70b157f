package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plan to a JSON file",
	Long:  "Writes the full plan, attachments included, to agmsc-plan-<term>.json for backup or transfer.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "Directory or file path to write to")
}

func runExport(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	path := exportOut
	if filepath.Ext(path) != ".json" {
		path = filepath.Join(path, plan.ExportFileName(ws.Plan))
	}
	if err := plan.ExportPlan(ws.Plan, path); err != nil {
		return err
	}

	fmt.Printf("Exported plan to %s\n", path)
	return nil
}

var importPassword string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the plan from a JSON file",
	Long:  "Replaces the workspace plan with one previously exported. Requires the admin password.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importPassword, "password", "", "Admin password")
}

func runImport(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	if err := ws.requireAdmin(importPassword); err != nil {
		return err
	}

	p, err := plan.ImportPlan(args[0])
	if err != nil {
		return err
	}
	if err := ws.save(p); err != nil {
		return err
	}
	if err := ws.History.PlanLoaded(args[0], len(p.AllTasks())); err != nil {
		return err
	}

	fmt.Printf("Imported %s plan (%d tasks) from %s\n", p.TermYear, len(p.AllTasks()), args[0])
	return nil
}
