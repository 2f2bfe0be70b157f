package cli

import (
	"fmt"
	"time"

	"github.com/tbickford/agplan/internal/ai"
	"github.com/tbickford/agplan/internal/config"
	"github.com/tbickford/agplan/internal/plan"
)

// workspace bundles everything a command needs from the .agplan
// directory.
type workspace struct {
	Dir     string
	Config  *config.Config
	Plan    *plan.Plan
	History *plan.HistoryLogger
}

// openWorkspace loads the plan and configuration from the workspace
// directory in the current working directory.
func openWorkspace() (*workspace, error) {
	dir := plan.DefaultWorkspace

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	p, err := plan.LoadPlan(dir)
	if err != nil {
		return nil, err
	}
	return &workspace{
		Dir:     dir,
		Config:  cfg,
		Plan:    p,
		History: plan.NewHistoryLogger(dir),
	}, nil
}

// save writes the plan back under the workspace lock.
func (w *workspace) save(p *plan.Plan) error {
	lock := plan.NewWorkspaceLock(w.Dir)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	if err := plan.SavePlan(w.Dir, p); err != nil {
		return err
	}
	w.Plan = p
	return nil
}

// requireAdmin checks the password against the workspace configuration.
func (w *workspace) requireAdmin(password string) error {
	if password == "" {
		return fmt.Errorf("admin password required. Pass it with --password")
	}
	if password != w.Config.AdminPassword {
		return fmt.Errorf("invalid admin password")
	}
	return nil
}

// generator builds the AI client from the configured API key.
func (w *workspace) generator() (ai.Generator, error) {
	if w.Config.APIKey == "" {
		return nil, fmt.Errorf("no API key configured. Set AGPLAN_API_KEY or api_key in %s/%s", w.Dir, config.FileName)
	}
	return ai.NewClient(w.Config.APIKey, ai.WithModel(w.Config.Model))
}

// currentTermStartYear derives the default term from the clock: a term
// runs August through July, so January-July belongs to the prior
// year's term.
func currentTermStartYear(now time.Time) int {
	if now.Month() < time.August {
		return now.Year() - 1
	}
	return now.Year()
}

// termLabel formats a start year as the YYYY-YYYY term label.
func termLabel(startYear int) string {
	return fmt.Sprintf("%d-%d", startYear, startYear+1)
}
