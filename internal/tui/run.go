package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunExplorer launches the interactive marketplace explorer and blocks
// until the user quits.
func RunExplorer(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
