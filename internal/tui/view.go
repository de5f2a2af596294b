package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skytab-app/market/internal/catalog"
	"github.com/skytab-app/market/internal/explorer"
	"github.com/skytab-app/market/internal/i18n"
)

// gridColumns is the card count per row in grid view.
const gridColumns = 3

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.loading {
		return "\n  " + m.spinner.View() + " " + i18n.T("LoadingCatalog", nil) + "\n"
	}

	if m.loadErr != nil && m.catalog == nil {
		return "\n  " + errorStyle.Render(i18n.T("FailedToLoad", nil)) + "\n"
	}

	switch m.view {
	case viewSortSelect:
		return m.sortSel.render()
	case viewConfirmReset:
		return m.confirm.render()
	case viewDetail:
		favorited := m.opts.Favorites.IsFavorite(m.detail.item.Type, m.detail.item.Name)
		return m.detail.render(m.width, favorited)
	default:
		return m.renderBrowse()
	}
}

func (m Model) renderBrowse() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")

	if len(m.result.Items) == 0 {
		b.WriteString("\n  " + statusStyle.Render(i18n.T("EmptyResults", nil)))
		b.WriteString("\n  " + helpStyle.Render(i18n.T("ClearFilters", nil)))
	} else if m.st.View == explorer.ViewList {
		b.WriteString(m.renderList())
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("HelpBrowse", nil)))

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Skytab Marketplace")

	var badges []string
	if m.st.TypeFilter != explorer.TypeAll {
		badges = append(badges, typeLabel(m.st.TypeFilter))
	}
	if m.st.Collection != "" {
		if c := m.catalog.FindCollection(m.st.Collection); c != nil {
			badges = append(badges, c.DisplayName)
		} else {
			badges = append(badges, m.st.Collection)
		}
	}
	if m.st.FavoritesOnly {
		badges = append(badges, favoriteStyle.Render("♥"))
	}
	badges = append(badges, sortLabel(m.st.SortBy))

	return title + "  " + badgeStyle.Render(strings.Join(badges, " · "))
}

func (m Model) renderSearchBar() string {
	if m.searching || m.st.Query != "" {
		bar := "> " + m.searchInput.View()
		if len(m.suggestions) > 0 && m.searching {
			var names []string
			for _, s := range m.suggestions {
				names = append(names, s.DisplayName)
			}
			bar += "\n  " + helpStyle.Render(strings.Join(names, " · "))
		}
		return bar
	}
	return helpStyle.Render("> …")
}

func (m Model) renderGrid() string {
	cardWidth := 28
	if m.width > 0 {
		cardWidth = max(20, m.width/gridColumns-4)
	}

	var rows []string
	for start := 0; start < len(m.result.Items); start += gridColumns {
		end := min(start+gridColumns, len(m.result.Items))

		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(i, m.result.Items[i], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderCard(idx int, it catalog.Item, width int) string {
	var b strings.Builder

	name := it.DisplayName
	if m.opts.Favorites.IsFavorite(it.Type, it.Name) {
		name += " " + favoriteStyle.Render("♥")
	}
	b.WriteString(name)
	b.WriteString("\n")
	b.WriteString(authorStyle.Render(typeLabel(it.Type)))
	if it.Author != "" {
		b.WriteString(authorStyle.Render(" · " + it.Author))
	}

	style := cardStyle
	if idx == m.cursor {
		style = cardSelectedStyle
	}
	return style.Width(width).Render(b.String())
}

func (m Model) renderList() string {
	var lines []string
	for i, it := range m.result.Items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		heart := " "
		if m.opts.Favorites.IsFavorite(it.Type, it.Name) {
			heart = favoriteStyle.Render("♥")
		}

		text := fmt.Sprintf("%s%s %-30s %-16s %6d↓", cursor, heart, it.DisplayName, typeLabel(it.Type), it.Downloads)
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render(text))
		} else {
			lines = append(lines, normalStyle.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusLine() string {
	var parts []string

	if strings.TrimSpace(m.st.Query) != "" {
		parts = append(parts, i18n.T("SearchResults",
			map[string]any{"Count": m.result.FilteredCount}, m.result.FilteredCount))
	} else {
		parts = append(parts, i18n.T("PageOf", map[string]any{
			"Page":  m.st.Page,
			"Total": m.result.TotalPages,
		}))
		parts = append(parts, m.pager.View())
	}

	if n := m.opts.Favorites.Count(); n > 0 {
		parts = append(parts, i18n.T("FavoritesCount", map[string]any{"Count": n}, n))
	}

	if m.deepLink != "" {
		parts = append(parts, linkStyle.Render("?"+m.deepLink))
	}

	return statusStyle.Render(strings.Join(parts, "  "))
}

func sortLabel(mode explorer.SortMode) string {
	switch mode {
	case explorer.SortTrending:
		return i18n.T("SortTrending", nil)
	case explorer.SortMostDownloaded:
		return i18n.T("SortMostDownloaded", nil)
	case explorer.SortMostViewed:
		return i18n.T("SortMostViewed", nil)
	case explorer.SortHiddenGems:
		return i18n.T("SortHiddenGems", nil)
	default:
		return i18n.T("SortRecommended", nil)
	}
}
