package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skytab-app/market/internal/i18n"
)

// confirmOption represents one reset-confirmation choice
type confirmOption struct {
	Value bool
	Label string
}

// confirmResetModel is the modal confirming a filter reset
type confirmResetModel struct {
	options []confirmOption
	cursor  int
}

func newConfirmReset() confirmResetModel {
	return confirmResetModel{
		options: []confirmOption{
			{true, i18n.T("ResetConfirmYes", nil)},
			{false, i18n.T("ResetConfirmNo", nil)},
		},
	}
}

func (m Model) handleConfirmResetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		if m.hostStop != nil {
			m.hostStop()
		}
		return m, tea.Quit

	case "up", "k", "down", "j", "tab":
		m.confirm.cursor = 1 - m.confirm.cursor

	case "y", "Y":
		m.resetFilters()
		m.view = viewBrowse

	case "enter", " ":
		if m.confirm.options[m.confirm.cursor].Value {
			m.resetFilters()
		}
		m.view = viewBrowse

	case "n", "N", "esc", "q":
		m.view = viewBrowse
	}

	return m, nil
}

func (m *Model) resetFilters() {
	m.st.Reset()
	m.searchInput.SetValue("")
	m.suggestions = nil
	m.afterFieldChange(true)
}

func (c confirmResetModel) render() string {
	var b strings.Builder

	b.WriteString(modalTitleStyle.Render(i18n.T("ResetConfirmTitle", nil)))
	b.WriteString("\n\n")
	b.WriteString(normalStyle.Render(i18n.T("ResetConfirmBody", nil)))
	b.WriteString("\n\n")

	for i, opt := range c.options {
		cursor := "  "
		if i == c.cursor {
			cursor = "▸ "
		}

		if i == c.cursor {
			b.WriteString(modalSelectedStyle.Render(fmt.Sprintf("%s%s", cursor, opt.Label)))
		} else {
			b.WriteString(modalOptionStyle.Render(fmt.Sprintf("%s%s", cursor, opt.Label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ · enter · esc"))

	return modalStyle.Render(b.String())
}
