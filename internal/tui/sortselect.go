package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skytab-app/market/internal/explorer"
	"github.com/skytab-app/market/internal/i18n"
)

// sortOption represents one sort mode choice
type sortOption struct {
	Mode        explorer.SortMode
	Label       string
	Description string
}

// sortSelectModel is the modal for picking the sort mode
type sortSelectModel struct {
	options []sortOption
	cursor  int
}

func newSortSelect(current explorer.SortMode) sortSelectModel {
	options := []sortOption{
		{explorer.SortRecommended, i18n.T("SortRecommended", nil), i18n.T("SortRecommendedDesc", nil)},
		{explorer.SortTrending, i18n.T("SortTrending", nil), i18n.T("SortTrendingDesc", nil)},
		{explorer.SortMostDownloaded, i18n.T("SortMostDownloaded", nil), i18n.T("SortMostDownloadedDesc", nil)},
		{explorer.SortMostViewed, i18n.T("SortMostViewed", nil), i18n.T("SortMostViewedDesc", nil)},
		{explorer.SortHiddenGems, i18n.T("SortHiddenGems", nil), i18n.T("SortHiddenGemsDesc", nil)},
	}

	cursor := 0
	for i, opt := range options {
		if opt.Mode == current {
			cursor = i
			break
		}
	}

	return sortSelectModel{options: options, cursor: cursor}
}

func (m Model) handleSortSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		if m.hostStop != nil {
			m.hostStop()
		}
		return m, tea.Quit

	case "up", "k":
		if m.sortSel.cursor > 0 {
			m.sortSel.cursor--
		}

	case "down", "j":
		if m.sortSel.cursor < len(m.sortSel.options)-1 {
			m.sortSel.cursor++
		}

	case "enter", " ":
		m.st.SetSort(m.sortSel.options[m.sortSel.cursor].Mode)
		m.view = viewBrowse
		m.afterFieldChange(true)

	case "esc", "q":
		m.view = viewBrowse
	}

	return m, nil
}

func (s sortSelectModel) render() string {
	var b strings.Builder

	b.WriteString(modalTitleStyle.Render(i18n.T("SortTitle", nil)))
	b.WriteString("\n\n")

	for i, opt := range s.options {
		cursor := "  "
		if i == s.cursor {
			cursor = "▸ "
		}

		if i == s.cursor {
			b.WriteString(modalSelectedStyle.Render(fmt.Sprintf("%s%s", cursor, opt.Label)))
			b.WriteString("\n")
			b.WriteString(modalDescStyle.Render(opt.Description))
		} else {
			b.WriteString(modalOptionStyle.Render(fmt.Sprintf("%s%s", cursor, opt.Label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ · enter · esc"))

	return modalStyle.Render(b.String())
}
