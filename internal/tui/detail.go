package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skytab-app/market/internal/catalog"
	"github.com/skytab-app/market/internal/embedhost"
	"github.com/skytab-app/market/internal/i18n"
)

func decodePayload(env embedhost.Envelope, v any) error {
	return json.Unmarshal(env.Payload, v)
}

// detailModel renders one item and owns its install-button tracker.
type detailModel struct {
	item       catalog.Item
	tracker    *embedhost.Tracker
	showPhotos bool
	opts       Options
}

func newDetail(it catalog.Item, opts Options) *detailModel {
	return &detailModel{
		item:    it,
		tracker: embedhost.NewTracker(it.Name, it.Type),
		opts:    opts,
	}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		if m.hostStop != nil {
			m.hostStop()
		}
		return m, tea.Quit

	case "esc", "backspace":
		m.closeDetail()
		return m, nil

	case "F":
		m.opts.Favorites.Toggle(m.detail.item.Type, m.detail.item.Name)
		return m, nil

	case "i":
		m.detail.toggleInstall()
		return m, nil

	case "o":
		m.detail.openPhotos()
		return m, nil
	}

	return m, nil
}

// toggleInstall performs the optimistic install/uninstall transition.
// Only meaningful while embedded; preview mode disables it.
func (d *detailModel) toggleInstall() {
	if d.opts.Host == nil || d.opts.State.Preview {
		return
	}

	env, ok := d.tracker.Toggle(embedhost.NewInstallPayload(&d.item))
	if !ok {
		return
	}
	_ = d.opts.Host.SendEnvelope(env)
}

// openPhotos delegates to the host lightbox when embedded; standalone
// it expands the photo listing inline.
func (d *detailModel) openPhotos() {
	if d.item.Type != catalog.TypePhotoPack {
		return
	}

	if d.opts.Host == nil {
		d.showPhotos = !d.showPhotos
		return
	}

	photo := embedhost.Photo{URL: d.item.IconURL, Alt: d.item.DisplayName}
	_ = d.opts.Host.Send(embedhost.TypeLightbox, embedhost.LightboxPayload{
		Action:     "open",
		Index:      0,
		Photo:      photo,
		Photos:     []embedhost.Photo{photo},
		TotalCount: 1,
	})
}

func (d *detailModel) renderInstallButton() string {
	if d.opts.Host == nil {
		return ""
	}
	if d.opts.State.Preview {
		return pendingStyle.Render(i18n.T("PreviewMode", nil))
	}

	switch d.tracker.State() {
	case embedhost.StateInstalled:
		return installedStyle.Render("[ " + i18n.T("Uninstall", nil) + " ]")
	case embedhost.StateNotInstalled:
		return notInstalledStyle.Render("[ " + i18n.T("Install", nil) + " ]")
	default:
		// No host report yet: neutral, effectively disabled.
		return pendingStyle.Render("[ " + i18n.T("InstallPending", nil) + " ]")
	}
}

func (d *detailModel) render(width int, favorited bool) string {
	var b strings.Builder

	title := d.item.DisplayName
	if favorited {
		title += " " + favoriteStyle.Render("♥")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(normalStyle.Render(typeLabel(d.item.Type)))
	b.WriteString("\n")

	if d.item.Author != "" {
		b.WriteString(authorStyle.Render(i18n.T("ByAuthor", map[string]any{"Author": d.item.Author})))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%d %s · %d %s\n",
		d.item.Views, i18n.T("Views", nil),
		d.item.Downloads, i18n.T("Downloads", nil)))

	if len(d.item.InCollections) > 0 {
		b.WriteString(badgeStyle.Render(i18n.T("Collections", nil) + ": " + strings.Join(d.item.InCollections, ", ")))
		b.WriteString("\n")
	}

	if button := d.renderInstallButton(); button != "" {
		b.WriteString("\n")
		b.WriteString(button)
		b.WriteString("\n")
	}

	if d.showPhotos && d.item.IconURL != "" {
		b.WriteString("\n")
		b.WriteString(linkStyle.Render(d.item.IconURL))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("HelpDetail", nil)))

	return previewStyle.Width(max(30, width-4)).Render(b.String())
}

func typeLabel(itemType string) string {
	switch itemType {
	case catalog.TypePhotoPack:
		return i18n.T("TypePhotoPack", nil)
	case catalog.TypeQuotePack:
		return i18n.T("TypeQuotePack", nil)
	case catalog.TypePresetSettings:
		return i18n.T("TypePresetSettings", nil)
	default:
		return i18n.T("TypeAll", nil)
	}
}
