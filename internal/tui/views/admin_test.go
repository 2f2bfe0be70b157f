package views

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbickford/agplan/internal/config"
	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/session"
	"github.com/tbickford/agplan/internal/tui/msgs"
)

func testSession() *session.Session {
	return session.New(config.Default(), plan.DefaultPlan(2025))
}

func typeInto(m AdminModel, s string) AdminModel {
	for _, r := range s {
		m, _ = m.Update(runeKey(r))
	}
	return m
}

func TestAdminLoginSuccess(t *testing.T) {
	s := testSession()
	m := NewAdminModel(s, nil, nil)

	m = typeInto(m, config.DefaultAdminPassword)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = typeInto(m, "test-key")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.errMsg != "" {
		t.Fatalf("login failed: %s", m.errMsg)
	}
	if !s.IsAdmin() {
		t.Fatal("session should be admin after login")
	}
	if cmd == nil {
		t.Fatal("login should broadcast the admin change")
	}
	if got := m.login[adminFieldPassword].Value(); got != "" {
		t.Error("password input should be cleared after login")
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	s := testSession()
	m := NewAdminModel(s, nil, nil)

	m = typeInto(m, "wrong")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("failed login must not broadcast")
	}
	if m.errMsg == "" {
		t.Error("expected an error message")
	}
	if s.IsAdmin() {
		t.Error("session must not be admin")
	}
}

func loggedInModel(t *testing.T, generate GeneratePlanFunc, export ExportFunc) (AdminModel, *session.Session) {
	t.Helper()
	s := testSession()
	if err := s.Login(config.DefaultAdminPassword, "test-key"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return NewAdminModel(s, generate, export), s
}

func TestAdminLogout(t *testing.T) {
	m, s := loggedInModel(t, nil, nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if s.IsAdmin() {
		t.Error("session should be logged out")
	}
	if cmd == nil {
		t.Error("logout should broadcast the admin change")
	}
	_ = m
}

func TestAdminExport(t *testing.T) {
	var exported *plan.Plan
	export := func(p *plan.Plan) (string, error) {
		exported = p
		return "AGMSC-Plan-2025-2026.json", nil
	}
	m, s := loggedInModel(t, nil, export)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if cmd == nil {
		t.Fatal("export should notify")
	}
	note, ok := cmd().(msgs.NotificationMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want NotificationMsg", cmd())
	}
	if note.Text != "Plan exported to AGMSC-Plan-2025-2026.json" {
		t.Errorf("notification = %q", note.Text)
	}
	if exported != s.Plan() {
		t.Error("export should receive the session plan")
	}
}

func TestAdminGenerateValidatesYear(t *testing.T) {
	m, _ := loggedInModel(t, nil, nil)
	m.gen[genFieldTermYear].SetValue("not-a-year")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if cmd != nil {
		t.Fatal("generation must not start with a bad year")
	}
	if m.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestAdminGenerationDone(t *testing.T) {
	m, _ := loggedInModel(t, nil, nil)
	next := plan.DefaultPlan(2026)

	m, cmd := m.Update(msgs.GenerationDoneMsg{Plan: next})
	if m.generating {
		t.Error("generating flag should be cleared")
	}
	if cmd == nil {
		t.Fatal("a generated plan must be handed off for saving")
	}
	save, ok := cmd().(msgs.SavePlanMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want SavePlanMsg", cmd())
	}
	if save.Event != plan.EventPlanGenerated || save.Plan != next {
		t.Errorf("save = %+v", save)
	}
}

func TestAdminGenerationError(t *testing.T) {
	m, _ := loggedInModel(t, nil, nil)

	m, cmd := m.Update(msgs.GenerationDoneMsg{Err: errors.New("api unreachable")})
	if cmd != nil {
		t.Fatal("errors stay in the view")
	}
	if m.errMsg != "api unreachable" {
		t.Errorf("errMsg = %q", m.errMsg)
	}
}

func TestAdminGenerateStarts(t *testing.T) {
	gen := func(ctx context.Context, termYear, chairperson string) (*plan.Plan, error) {
		return plan.DefaultPlan(2026), nil
	}
	m, _ := loggedInModel(t, gen, nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if cmd == nil {
		t.Fatal("ctrl+g should start generation")
	}
	if !m.generating {
		t.Error("generating flag should be set")
	}
}
