package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/session"
	"github.com/tbickford/agplan/internal/tui/msgs"
	"github.com/tbickford/agplan/internal/tui/styles"
)

// GeneratePlanFunc builds a fresh plan with AI. Wired by the app;
// replaced in tests.
type GeneratePlanFunc func(ctx context.Context, termYear, chairperson string) (*plan.Plan, error)

// ExportFunc writes the plan to a JSON file and returns the path.
type ExportFunc func(p *plan.Plan) (string, error)

// Admin field indexes for the login form.
const (
	adminFieldPassword = iota
	adminFieldAPIKey
	adminLoginFieldCount
)

// Admin field indexes for the generate form.
const (
	genFieldTermYear = iota
	genFieldChairperson
	genFieldCount
)

// AdminModel is the admin tab: login, plan generation, and export.
type AdminModel struct {
	session  *session.Session
	generate GeneratePlanFunc
	export   ExportFunc

	login [2]textinput.Model // password, api key
	gen   [2]textinput.Model // term year, chairperson
	focus int

	generating bool
	spinner    spinner.Model
	errMsg     string

	width  int
	height int
}

// NewAdminModel creates the admin view.
func NewAdminModel(s *session.Session, generate GeneratePlanFunc, export ExportFunc) AdminModel {
	password := textinput.New()
	password.Placeholder = "Admin password"
	password.EchoMode = textinput.EchoPassword
	password.Width = 32
	password.Focus()

	apiKey := textinput.New()
	apiKey.Placeholder = "Gemini API key (blank to use configured key)"
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.Width = 48

	p := s.Plan()
	termYear := textinput.New()
	termYear.Placeholder = "Term start year"
	termYear.SetValue(strconv.Itoa(p.TermStartYear()))
	termYear.Width = 12

	chairperson := textinput.New()
	chairperson.Placeholder = "Chairperson"
	chairperson.SetValue(p.Chairperson)
	chairperson.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return AdminModel{
		session:  s,
		generate: generate,
		export:   export,
		login:    [2]textinput.Model{password, apiKey},
		gen:      [2]textinput.Model{termYear, chairperson},
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m AdminModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m AdminModel) Update(msg tea.Msg) (AdminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case msgs.GenerationDoneMsg:
		m.generating = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg {
			return msgs.SavePlanMsg{Plan: msg.Plan, Event: plan.EventPlanGenerated}
		}

	case tea.KeyMsg:
		if m.session.IsAdmin() {
			return m.updateAdmin(msg)
		}
		return m.updateLogin(msg)
	}
	return m, nil
}

func (m AdminModel) updateLogin(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	switch msg.String() {
	case "up", "down":
		// Tab is taken by view switching, so fields cycle on the arrows.
		m.focus = (m.focus + 1) % adminLoginFieldCount
		for i := range m.login {
			if i == m.focus {
				m.login[i].Focus()
			} else {
				m.login[i].Blur()
			}
		}
		return m, nil
	case "enter":
		err := m.session.Login(m.login[adminFieldPassword].Value(), m.login[adminFieldAPIKey].Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.login[adminFieldPassword].SetValue("")
		m.login[adminFieldAPIKey].SetValue("")
		return m, tea.Batch(
			func() tea.Msg { return msgs.AdminChangedMsg{IsAdmin: true} },
			func() tea.Msg { return msgs.NotificationMsg{Text: "Logged in as admin"} },
		)
	}

	var cmd tea.Cmd
	m.login[m.focus], cmd = m.login[m.focus].Update(msg)
	return m, cmd
}

func (m AdminModel) updateAdmin(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	switch msg.String() {
	case "up", "down":
		m.focus = (m.focus + 1) % genFieldCount
		for i := range m.gen {
			if i == m.focus {
				m.gen[i].Focus()
			} else {
				m.gen[i].Blur()
			}
		}
		return m, nil
	case "ctrl+l":
		m.session.Logout()
		m.focus = 0
		m.login[adminFieldPassword].Focus()
		return m, tea.Batch(
			func() tea.Msg { return msgs.AdminChangedMsg{IsAdmin: false} },
			func() tea.Msg { return msgs.NotificationMsg{Text: "Logged out"} },
		)
	case "ctrl+e":
		path, err := m.export(m.session.Plan())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return msgs.NotificationMsg{Text: "Plan exported to " + path} }
	case "ctrl+g":
		return m.startGenerate()
	}

	var cmd tea.Cmd
	m.gen[m.focus], cmd = m.gen[m.focus].Update(msg)
	return m, cmd
}

func (m AdminModel) startGenerate() (AdminModel, tea.Cmd) {
	if m.generating {
		return m, nil
	}

	startYear, err := strconv.Atoi(strings.TrimSpace(m.gen[genFieldTermYear].Value()))
	if err != nil {
		m.errMsg = "term start year must be a number"
		return m, nil
	}
	term := fmt.Sprintf("%d-%d", startYear, startYear+1)
	chairperson := strings.TrimSpace(m.gen[genFieldChairperson].Value())

	m.generating = true
	m.errMsg = ""
	generate := m.generate
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			p, err := generate(context.Background(), term, chairperson)
			return msgs.GenerationDoneMsg{Plan: p, Err: err}
		},
	)
}

// HelpItems returns the status bar entries for the admin view.
func (m AdminModel) HelpItems() []string {
	if !m.session.IsAdmin() {
		return []string{"↑/↓ next field", "enter log in", "tab switch view", "ctrl+c quit"}
	}
	return []string{"ctrl+g generate plan", "ctrl+e export", "ctrl+l log out", "ctrl+c quit"}
}

// View implements tea.Model.
func (m AdminModel) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Admin"))
	b.WriteString("\n")

	if !m.session.IsAdmin() {
		b.WriteString("Log in to edit tasks, generate plans, and build reports.\n\n")
		b.WriteString(styles.SubtleStyle.Render("Password  "))
		b.WriteString(m.login[adminFieldPassword].View())
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("API key   "))
		b.WriteString(m.login[adminFieldAPIKey].View())
		b.WriteString("\n")
	} else {
		b.WriteString(styles.SuccessStyle.Render("Logged in as admin."))
		b.WriteString("\n\n")
		b.WriteString(styles.TitleStyle.Render("Generate a new plan"))
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("This replaces the current plan for every view."))
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("Term year    "))
		b.WriteString(m.gen[genFieldTermYear].View())
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("Chairperson  "))
		b.WriteString(m.gen[genFieldChairperson].View())
		b.WriteString("\n")
	}

	if m.generating {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Generating plan...")
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}
