// Package tui is the interactive terminal frontend. It renders the
// project list and project detail as keyboard-driven views backed by
// the same service layer the CLI commands use.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"projectman/internal/app"
)

// Run starts the TUI and blocks until the user quits.
func Run(a *app.App) error {
	m := NewModel(a)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
