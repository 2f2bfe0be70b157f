package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/report"
	"github.com/tbickford/agplan/internal/tui/msgs"
	"github.com/tbickford/agplan/internal/tui/styles"
)

// GenerateReportFunc produces a report narrative. Wired to the AI
// client by the app; replaced in tests.
type GenerateReportFunc func(ctx context.Context, p *plan.Plan, opts report.Options) (string, error)

// WritePDFFunc renders a narrative to a PDF file. Replaced in tests.
type WritePDFFunc func(path, termYear, chairperson, narrative string) error

// Report option rows, in cursor order.
const (
	optStyle = iota
	optPriority
	optDetail
	optStatusCompleted
	optStatusInProgress
	optStatusNotStarted
	optCount
)

var styleCycle = []report.Style{report.StyleExecutive, report.StyleDetailed, report.StyleBullets}
var focusCycle = []report.PriorityFocus{report.FocusAll, report.FocusHigh, report.FocusHighMedium}
var detailCycle = []report.DetailLevel{report.DetailBasic, report.DetailStandard, report.DetailFull}

// ReportModel is the report tab: an options panel, then the generated
// narrative with a PDF save action.
type ReportModel struct {
	plan    *plan.Plan
	isAdmin bool

	cursor   int
	style    int
	priority int
	detail   int
	statuses map[string]bool

	generate GenerateReportFunc
	writePDF WritePDFFunc

	generating bool
	spinner    spinner.Model
	narrative  string
	errMsg     string
	savedTo    string

	width  int
	height int
}

// NewReportModel creates the report view.
func NewReportModel(p *plan.Plan, generate GenerateReportFunc, writePDF WritePDFFunc) ReportModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return ReportModel{
		plan:     p,
		style:    1, // detailed
		detail:   1, // standard
		statuses: map[string]bool{plan.StatusCompleted: true, plan.StatusInProgress: true, plan.StatusNotStarted: true},
		generate: generate,
		writePDF: writePDF,
		spinner:  sp,
	}
}

// Options returns the report options as currently selected.
func (m ReportModel) Options() report.Options {
	var statuses []string
	for _, s := range []string{plan.StatusCompleted, plan.StatusInProgress, plan.StatusNotStarted} {
		if m.statuses[s] {
			statuses = append(statuses, s)
		}
	}
	return report.Options{
		Style:    styleCycle[m.style],
		Statuses: statuses,
		Priority: focusCycle[m.priority],
		Detail:   detailCycle[m.detail],
	}
}

// Init implements tea.Model.
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReportModel) Update(msg tea.Msg) (ReportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case msgs.PlanReplacedMsg:
		m.plan = msg.Plan

	case msgs.AdminChangedMsg:
		m.isAdmin = msg.IsAdmin

	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case msgs.ReportDoneMsg:
		m.generating = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.narrative = msg.Narrative
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < optCount-1 {
				m.cursor++
			}
		case "left", "right", " ", "enter":
			m = m.adjust(msg.String())
		case "g":
			return m.startGenerate()
		case "s":
			return m.savePDF()
		}
	}
	return m, nil
}

func (m ReportModel) adjust(key string) ReportModel {
	forward := key != "left"
	switch m.cursor {
	case optStyle:
		m.style = cycle(m.style, len(styleCycle), forward)
	case optPriority:
		m.priority = cycle(m.priority, len(focusCycle), forward)
	case optDetail:
		m.detail = cycle(m.detail, len(detailCycle), forward)
	case optStatusCompleted:
		m.statuses[plan.StatusCompleted] = !m.statuses[plan.StatusCompleted]
	case optStatusInProgress:
		m.statuses[plan.StatusInProgress] = !m.statuses[plan.StatusInProgress]
	case optStatusNotStarted:
		m.statuses[plan.StatusNotStarted] = !m.statuses[plan.StatusNotStarted]
	}
	return m
}

func (m ReportModel) startGenerate() (ReportModel, tea.Cmd) {
	if !m.isAdmin {
		m.errMsg = "log in via the Admin tab to generate reports"
		return m, nil
	}
	if m.generating {
		return m, nil
	}

	m.generating = true
	m.errMsg = ""
	generate := m.generate
	p := m.plan
	opts := m.Options()
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			narrative, err := generate(context.Background(), p, opts)
			return msgs.ReportDoneMsg{Narrative: narrative, Style: string(opts.Style), Err: err}
		},
	)
}

func (m ReportModel) savePDF() (ReportModel, tea.Cmd) {
	if m.narrative == "" {
		m.errMsg = "generate a report first"
		return m, nil
	}
	path := report.PDFFileName(m.plan.TermYear)
	if err := m.writePDF(path, m.plan.TermYear, m.plan.Chairperson, m.narrative); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.savedTo = path
	return m, func() tea.Msg { return msgs.NotificationMsg{Text: "Report saved to " + path} }
}

// HelpItems returns the status bar entries for the report view.
func (m ReportModel) HelpItems() []string {
	items := []string{"↑/↓ option", "←/→ change", "g generate"}
	if m.narrative != "" {
		items = append(items, "s save PDF")
	}
	return append(items, "tab switch view", "q quit")
}

// View implements tea.Model.
func (m ReportModel) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Progress Report"))
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Style", string(styleCycle[m.style])},
		{"Priority focus", string(focusCycle[m.priority])},
		{"Detail level", string(detailCycle[m.detail])},
		{"Include Completed", checkbox(m.statuses[plan.StatusCompleted])},
		{"Include In-Progress", checkbox(m.statuses[plan.StatusInProgress])},
		{"Include Not-Started", checkbox(m.statuses[plan.StatusNotStarted])},
	}
	for i, row := range rows {
		line := fmt.Sprintf("%-20s %s", row.label, row.value)
		if i == m.cursor {
			line = styles.SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.generating {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Generating report narrative...")
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.narrative != "" {
		b.WriteString("\n")
		w := m.width - 2
		if w < 20 || w > 100 {
			w = 100
		}
		b.WriteString(styles.BoxStyle.Width(w).Render(m.narrative))
		b.WriteString("\n")
	}
	if m.savedTo != "" {
		b.WriteString(styles.SuccessStyle.Render("Saved: " + m.savedTo))
		b.WriteString("\n")
	}
	return b.String()
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
