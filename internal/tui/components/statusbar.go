package components

import (
	"strings"

	"github.com/tbickford/agplan/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual help items.
// A transient notification takes the whole bar over until cleared.
type StatusBar struct {
	Notification string
}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if s.Notification != "" {
		return styles.SuccessStyle.Width(width).Render(s.Notification)
	}
	if len(items) == 0 {
		return styles.StatusBarStyle.Width(width).Render("")
	}

	content := strings.Join(items, " • ")

	return styles.StatusBarStyle.Width(width).Render(content)
}
