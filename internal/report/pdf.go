package report

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters, matching the printed report layout.
const (
	topBottomMargin = 38.1
	leftRightMargin = 15.0
)

// PDFFileName returns the conventional report filename for a term.
func PDFFileName(termYear string) string {
	return fmt.Sprintf("AGMSC-Report-%s.pdf", termYear)
}

// WritePDF renders the report narrative to an A4 PDF at path.
func WritePDF(path, termYear, chairperson, narrative string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(leftRightMargin, topBottomMargin, leftRightMargin)
	pdf.SetAutoPageBreak(true, topBottomMargin)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("AGMSC Progress Report %s", termYear)), "", 1, "C", false, 0, "")
	if chairperson != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Program Committee Chairman: %s", chairperson)), "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	for _, line := range strings.Split(narrative, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			pdf.Ln(3)
			continue
		}
		if isHeading(line) {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
			pdf.Ln(1)
			continue
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5.5, tr(line), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// isHeading reports whether a narrative line is an uppercase section
// heading rather than body text.
func isHeading(line string) bool {
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter && len(line) < 80
}
