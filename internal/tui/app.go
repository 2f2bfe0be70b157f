// Package tui is the interactive terminal app: a tab bar over the
// plan views, a task form overlay, and a status bar.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tbickford/agplan/internal/ai"
	"github.com/tbickford/agplan/internal/config"
	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/report"
	"github.com/tbickford/agplan/internal/session"
	"github.com/tbickford/agplan/internal/tui/components"
	"github.com/tbickford/agplan/internal/tui/msgs"
	"github.com/tbickford/agplan/internal/tui/styles"
	"github.com/tbickford/agplan/internal/tui/views"
)

// Tab identifies one top-level view.
type Tab int

const (
	TabBaseline Tab = iota
	TabAdded
	TabCompleted
	TabRemoved
	TabProgress
	TabReport
	TabAdmin
	tabCount
)

var tabTitles = []string{"Baseline", "Added Tasks", "Completed", "Removed", "Progress", "Report", "Admin"}

// notificationTimeout is how long status bar notifications stay up.
const notificationTimeout = 3 * time.Second

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	dir     string
	session *session.Session
	history *plan.HistoryLogger

	active    Tab
	lists     [4]views.TaskListModel
	progress  views.ProgressModel
	reportTab views.ReportModel
	admin     views.AdminModel
	form      *views.FormModel

	rewordFunc views.RewordFunc

	statusBar components.StatusBar
	width     int
	height    int
}

// Run starts the TUI application over the given workspace directory.
// The workspace lock is held for the lifetime of the program.
func Run(dir string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	p, err := plan.LoadPlan(dir)
	if err != nil {
		return err
	}

	lock := plan.NewWorkspaceLock(dir)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	program := tea.NewProgram(
		NewModel(dir, session.New(cfg, p)),
		tea.WithAltScreen(),
	)
	_, err = program.Run()
	return err
}

// NewModel builds the app model around a session.
func NewModel(dir string, s *session.Session) Model {
	p := s.Plan()

	reword := func(ctx context.Context, comment string) ([]string, error) {
		gen, err := s.Generator()
		if err != nil {
			return nil, err
		}
		return ai.SuggestRewordings(ctx, gen, comment)
	}
	generateReport := func(ctx context.Context, p *plan.Plan, opts report.Options) (string, error) {
		gen, err := s.Generator()
		if err != nil {
			return "", err
		}
		return report.Generate(ctx, gen, p, opts)
	}
	generatePlan := func(ctx context.Context, termYear, chairperson string) (*plan.Plan, error) {
		gen, err := s.Generator()
		if err != nil {
			return nil, err
		}
		return ai.GeneratePlan(ctx, gen, termYear, chairperson)
	}
	export := func(p *plan.Plan) (string, error) {
		path := plan.ExportFileName(p)
		if err := plan.ExportPlan(p, path); err != nil {
			return "", err
		}
		return path, nil
	}

	m := Model{
		dir:     dir,
		session: s,
		history: plan.NewHistoryLogger(dir),
		lists: [4]views.TaskListModel{
			views.NewTaskListModel(views.ListBaseline, p),
			views.NewTaskListModel(views.ListAdded, p),
			views.NewTaskListModel(views.ListCompleted, p),
			views.NewTaskListModel(views.ListRemoved, p),
		},
		progress:  views.NewProgressModel(p),
		reportTab: views.NewReportModel(p, generateReport, report.WritePDF),
		admin:     views.NewAdminModel(s, generatePlan, export),
		statusBar: components.NewStatusBar(),
	}
	// The closure captures the session, so rewording follows the login
	// state without rebuilding the form.
	m.rewordFunc = reword
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.fanOut(msg)

	case msgs.SavePlanMsg:
		return m.handleSave(msg)

	case msgs.OpenFormMsg:
		form := views.NewFormModel(m.session.Plan(), msg, m.rewordFunc)
		m.form = &form
		return m, form.Init()

	case msgs.CloseFormMsg:
		m.form = nil
		return m, nil

	case msgs.NotificationMsg:
		m.statusBar.Notification = msg.Text
		return m, tea.Tick(notificationTimeout, func(time.Time) tea.Msg {
			return msgs.ClearNotificationMsg{}
		})

	case msgs.ClearNotificationMsg:
		m.statusBar.Notification = ""
		return m, nil

	case msgs.ReportDoneMsg:
		if msg.Err == nil {
			_ = m.history.ReportGenerated(m.session.Plan().TermYear, msg.Style)
		}
		return m.fanOut(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.fanOut(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		m.form = &form
		return m, cmd
	}

	switch msg.String() {
	case "q":
		// Admin tab has text inputs; quit there with ctrl+c.
		if m.active != TabAdmin {
			return m, tea.Quit
		}
	case "tab":
		m.active = (m.active + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.active = (m.active + tabCount - 1) % tabCount
		return m, nil
	}

	return m.updateActive(msg)
}

// handleSave persists a mutated snapshot, logs it, and fans the fresh
// plan out to every view.
func (m Model) handleSave(msg msgs.SavePlanMsg) (tea.Model, tea.Cmd) {
	if err := plan.SavePlan(m.dir, msg.Plan); err != nil {
		m.form = nil
		return m, func() tea.Msg { return msgs.NotificationMsg{Text: "Save failed: " + err.Error()} }
	}
	m.session.SetPlan(msg.Plan)
	m.logEvent(msg)
	m.form = nil

	model, cmd := m.fanOut(msgs.PlanReplacedMsg{Plan: msg.Plan})
	return model, tea.Batch(cmd, func() tea.Msg {
		return msgs.NotificationMsg{Text: saveNotification(msg)}
	})
}

func saveNotification(msg msgs.SavePlanMsg) string {
	switch msg.Event {
	case plan.EventTaskAdded:
		return "Task added: " + msg.Name
	case plan.EventTaskUpdated:
		return "Task updated"
	case plan.EventTaskRemoved:
		return "Task removed"
	case plan.EventTaskRestored:
		return "Task restored"
	case plan.EventPlanGenerated:
		return "New plan generated successfully!"
	}
	return "Plan saved"
}

func (m Model) logEvent(msg msgs.SavePlanMsg) {
	var err error
	switch msg.Event {
	case plan.EventTaskAdded:
		category := plan.CategoryGeneral
		if t, ok := msg.Plan.FindTask(msg.TaskID); ok && t.Source == plan.SourceUserAddedBaseline {
			category = plan.CategoryBaseline
		}
		err = m.history.TaskAdded(msg.TaskID, msg.Name, category)
	case plan.EventTaskUpdated:
		err = m.history.TaskUpdated(msg.TaskID)
	case plan.EventTaskRemoved:
		err = m.history.TaskRemoved(msg.TaskID)
	case plan.EventTaskRestored:
		err = m.history.TaskRestored(msg.TaskID)
	case plan.EventPlanGenerated:
		err = m.history.PlanGenerated(msg.Plan.TermYear, msg.Plan.Chairperson, len(msg.Plan.AllTasks()))
	}
	// History is an audit trail; a write failure should not block the
	// mutation itself.
	_ = err
}

// fanOut forwards a message to the form and every tab model.
func (m Model) fanOut(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.form != nil {
		form, c := m.form.Update(msg)
		m.form = &form
		cmds = append(cmds, c)
	}
	for i := range m.lists {
		m.lists[i], cmd = m.lists[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.progress, cmd = m.progress.Update(msg)
	cmds = append(cmds, cmd)
	m.reportTab, cmd = m.reportTab.Update(msg)
	cmds = append(cmds, cmd)
	m.admin, cmd = m.admin.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateActive routes a key to the active tab only.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case TabProgress:
		m.progress, cmd = m.progress.Update(msg)
	case TabReport:
		m.reportTab, cmd = m.reportTab.Update(msg)
	case TabAdmin:
		m.admin, cmd = m.admin.Update(msg)
	default:
		i := int(m.active)
		m.lists[i], cmd = m.lists[i].Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	header := m.renderTabs()
	var body string
	if m.form != nil {
		body = m.form.View()
	} else {
		switch m.active {
		case TabProgress:
			body = m.progress.View()
		case TabReport:
			body = m.reportTab.View()
		case TabAdmin:
			body = m.admin.View()
		default:
			body = m.lists[int(m.active)].View()
		}
	}

	bar := m.statusBar.Render(m.width, m.helpItems())
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, bar)
}

func (m Model) helpItems() []string {
	if m.form != nil {
		return m.form.HelpItems()
	}
	switch m.active {
	case TabProgress:
		return m.progress.HelpItems()
	case TabReport:
		return m.reportTab.HelpItems()
	case TabAdmin:
		return m.admin.HelpItems()
	default:
		return m.lists[int(m.active)].HelpItems()
	}
}

func (m Model) renderTabs() string {
	p := m.session.Plan()
	title := styles.TitleStyle.Render("AGMSC Program Committee Plan " + p.TermYear)

	var tabs []string
	for i, label := range tabTitles {
		if Tab(i) == m.active {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}
