package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/report"
)

var (
	reportStyle    string
	reportStatuses []string
	reportPriority string
	reportDetail   string
	reportPDF      bool
	reportOut      string
	reportPassword string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a progress report",
	Long:  "Generates a progress-report narrative from the plan with AI, printed to stdout or rendered to PDF with --pdf. Requires the admin password and a Gemini API key.",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportStyle, "style", string(report.StyleDetailed), "Report style: executive, detailed or bullets")
	reportCmd.Flags().StringSliceVar(&reportStatuses, "statuses", nil, "Statuses to include (default: all)")
	reportCmd.Flags().StringVar(&reportPriority, "priority", string(report.FocusAll), "Priority focus: all, high or high-medium")
	reportCmd.Flags().StringVar(&reportDetail, "detail", string(report.DetailStandard), "Detail level: basic, standard or full")
	reportCmd.Flags().BoolVar(&reportPDF, "pdf", false, "Write the report as a PDF")
	reportCmd.Flags().StringVar(&reportOut, "out", ".", "Directory or file path for the PDF")
	reportCmd.Flags().StringVar(&reportPassword, "password", "", "Admin password")
}

func runReport(cmd *cobra.Command, args []string) error {
	opts := report.Options{
		Style:    report.Style(reportStyle),
		Statuses: reportStatuses,
		Priority: report.PriorityFocus(reportPriority),
		Detail:   report.DetailLevel(reportDetail),
	}
	if !report.ValidStyle(opts.Style) {
		return fmt.Errorf("unknown style %q (want executive, detailed or bullets)", reportStyle)
	}
	if !report.ValidPriorityFocus(opts.Priority) {
		return fmt.Errorf("unknown priority focus %q (want all, high or high-medium)", reportPriority)
	}
	if !report.ValidDetailLevel(opts.Detail) {
		return fmt.Errorf("unknown detail level %q (want basic, standard or full)", reportDetail)
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	if err := ws.requireAdmin(reportPassword); err != nil {
		return err
	}
	gen, err := ws.generator()
	if err != nil {
		return err
	}

	fmt.Println("Generating report narrative...")
	narrative, err := report.Generate(cmd.Context(), gen, ws.Plan, opts)
	if err != nil {
		return err
	}
	if err := ws.History.ReportGenerated(ws.Plan.TermYear, string(opts.Style)); err != nil {
		return err
	}

	if !reportPDF {
		fmt.Println()
		fmt.Println(narrative)
		return nil
	}

	path := reportOut
	if filepath.Ext(path) != ".pdf" {
		path = filepath.Join(path, report.PDFFileName(ws.Plan.TermYear))
	}
	if err := report.WritePDF(path, ws.Plan.TermYear, ws.Plan.Chairperson, narrative); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", path)
	return nil
}
