package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skytab-app/market/internal/catalog"
	"github.com/skytab-app/market/internal/embedhost"
	"github.com/skytab-app/market/internal/events"
	"github.com/skytab-app/market/internal/explorer"
	"github.com/skytab-app/market/internal/favorites"
	"github.com/skytab-app/market/internal/i18n"
	"github.com/skytab-app/market/internal/prefs"
	"github.com/skytab-app/market/internal/querystring"
)

// viewState selects what the explorer currently renders
type viewState int

const (
	viewBrowse viewState = iota
	viewDetail
	viewSortSelect
	viewConfirmReset
)

// Options wires the explorer's collaborators together.
type Options struct {
	State     explorer.State
	Locale    string
	Catalog   *catalog.Client
	Favorites *favorites.Store
	Prefs     *prefs.Manager
	Seeds     *prefs.SeedStore
	Broker    *events.Broker
	Host      *embedhost.Conn // nil when running standalone
	Refresh   bool            // bypass the catalog cache
}

// Messages
type catalogMsg struct {
	catalog *catalog.Catalog
	err     error
}

type hostMsg struct {
	env embedhost.Envelope
}

type hostClosedMsg struct{}

// brokerMsg carries one event from the in-process broker
type brokerMsg struct {
	ev events.Event
}

// queryTickMsg carries the debounce sequence for free-text writes
type queryTickMsg struct {
	seq int
}

// Model is the bubbletea model for the marketplace explorer.
type Model struct {
	opts   Options
	engine *explorer.Engine
	st     explorer.State
	seed   int64

	catalog *catalog.Catalog
	result  explorer.Result
	loadErr error
	loading bool

	searchInput textinput.Model
	searching   bool
	suggestions []catalog.Item
	querySeq    int

	spinner spinner.Model
	pager   paginator.Model

	cursor   int
	view     viewState
	detail   *detailModel
	sortSel  sortSelectModel
	confirm  confirmResetModel
	deepLink string
	theme    string

	hostCh   chan embedhost.Envelope
	hostCtx  context.Context
	hostStop context.CancelFunc

	favCh   <-chan events.Event
	themeCh <-chan events.Event

	width    int
	height   int
	quitting bool
}

// NewModel creates the explorer model.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("HelpBrowse", nil)
	ti.CharLimit = 80
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("•")
	pg.InactiveDot = helpStyle.Render("·")

	m := Model{
		opts:        opts,
		engine:      explorer.New(opts.Locale),
		st:          opts.State,
		searchInput: ti,
		spinner:     sp,
		pager:       pg,
		loading:     true,
		sortSel:     newSortSelect(opts.State.SortBy),
		confirm:     newConfirmReset(),
	}
	m.searchInput.SetValue(opts.State.Query)
	m.deepLink = querystring.Encode(opts.State).Encode()

	if opts.Host != nil {
		m.hostCh = make(chan embedhost.Envelope, 8)
		m.hostCtx, m.hostStop = context.WithCancel(context.Background())
	}

	if opts.Broker != nil {
		m.favCh = opts.Broker.Subscribe(events.TopicFavoritesChanged)
		m.themeCh = opts.Broker.Subscribe(events.TopicThemeChanged)
	}

	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.loadCatalog()}

	if m.opts.Host != nil {
		// Signal the host it may push configuration, then start the
		// inbound listen loop.
		_ = m.opts.Host.Send(embedhost.TypeReady, nil)
		cmds = append(cmds, m.startHostListener(), m.waitForHost())
	}

	if m.opts.Broker != nil {
		cmds = append(cmds, waitForEvent(m.favCh), waitForEvent(m.themeCh))
	}

	return tea.Batch(cmds...)
}

func (m Model) loadCatalog() tea.Cmd {
	client := m.opts.Catalog
	refresh := m.opts.Refresh

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var (
			cat *catalog.Catalog
			err error
		)
		if refresh {
			cat, err = client.Refresh(ctx)
		} else {
			cat, err = client.Load(ctx)
		}
		return catalogMsg{catalog: cat, err: err}
	}
}

func (m Model) startHostListener() tea.Cmd {
	ctx := m.hostCtx
	conn := m.opts.Host
	ch := m.hostCh

	return func() tea.Msg {
		go func() {
			conn.Listen(ctx, func(env embedhost.Envelope) {
				ch <- env
			})
			close(ch)
		}()
		return nil
	}
}

func (m Model) waitForHost() tea.Cmd {
	ch := m.hostCh
	return func() tea.Msg {
		env, ok := <-ch
		if !ok {
			return hostClosedMsg{}
		}
		return hostMsg{env: env}
	}
}

func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return brokerMsg{ev: <-ch}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogMsg:
		m.loading = false
		m.loadErr = msg.err
		m.catalog = msg.catalog
		if m.catalog != nil {
			m.recompute()
		}
		return m, nil

	case hostMsg:
		m.handleHostMessage(msg.env)
		return m, m.waitForHost()

	case hostClosedMsg:
		// The host went away. Fire-and-forget semantics: keep running.
		return m, nil

	case brokerMsg:
		switch msg.ev.Topic {
		case events.TopicFavoritesChanged:
			m.recompute()
			return m, waitForEvent(m.favCh)
		case events.TopicThemeChanged:
			if theme, ok := msg.ev.Data.(string); ok {
				m.theme = theme
				setTheme(theme)
			}
			return m, waitForEvent(m.themeCh)
		}
		return m, nil

	case queryTickMsg:
		if msg.seq == m.querySeq {
			m.commitQuery()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewSortSelect:
		return m.handleSortSelectKey(msg)
	case viewConfirmReset:
		return m.handleConfirmResetKey(msg)
	case viewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		if m.hostStop != nil {
			m.hostStop()
		}
		return m, tea.Quit

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.result.Items)-1 {
			m.cursor++
		}

	case "left", "h", "pgup":
		if m.st.Page > 1 && m.st.Query == "" {
			m.st.Page--
			m.afterFieldChange(false)
		}

	case "right", "l", "pgdown":
		if m.st.Page < m.result.TotalPages && m.st.Query == "" {
			m.st.Page++
			m.afterFieldChange(false)
		}

	case "t":
		m.st.SetTypeFilter(nextType(m.st.TypeFilter))
		m.afterFieldChange(true)

	case "c":
		m.st.SetCollection(m.nextCollection())
		m.afterFieldChange(true)

	case "v":
		if m.st.View == explorer.ViewGrid {
			m.st.View = explorer.ViewList
		} else {
			m.st.View = explorer.ViewGrid
		}
		m.afterFieldChange(true)

	case "f":
		m.st.SetFavoritesOnly(!m.st.FavoritesOnly)
		m.afterFieldChange(true)

	case "F":
		// The toggle lands back as a favorites event, which recomputes.
		if it := m.itemAtCursor(); it != nil {
			m.opts.Favorites.Toggle(it.Type, it.Name)
		}

	case "s":
		m.sortSel = newSortSelect(m.st.SortBy)
		m.view = viewSortSelect

	case "r":
		m.confirm = newConfirmReset()
		m.view = viewConfirmReset

	case "enter":
		if it := m.itemAtCursor(); it != nil {
			m.openDetail(*it)
		}
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		if m.hostStop != nil {
			m.hostStop()
		}
		return m, tea.Quit

	case "esc":
		// Clear the query if there is one, otherwise leave search.
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			return m.applyQuery("")
		}
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	next, qcmd := m.applyQuery(m.searchInput.Value())
	return next, tea.Batch(cmd, qcmd)
}

// applyQuery updates the free-text query. The result set recomputes
// immediately; the deep-link write and the host search notification are
// debounced so a typing burst produces one update.
func (m Model) applyQuery(q string) (Model, tea.Cmd) {
	if m.st.Query == q {
		return m, nil
	}

	m.st.SetQuery(q)
	m.recompute()
	m.suggestions = m.engine.Suggest(m.catalogItems(), q)

	m.querySeq++
	seq := m.querySeq
	return m, tea.Tick(querystring.WriteDebounce, func(time.Time) tea.Msg {
		return queryTickMsg{seq: seq}
	})
}

// commitQuery runs after the debounce window: the deep link is
// rewritten and, when embedded, the host is told about the search.
func (m *Model) commitQuery() {
	m.deepLink = querystring.Encode(m.st).Encode()

	if m.opts.Host != nil && strings.TrimSpace(m.st.Query) != "" {
		_ = m.opts.Host.Send(embedhost.TypeSearch, embedhost.SearchPayload{
			Query:        m.st.Query,
			ResultsCount: m.result.FilteredCount,
		})
	}
}

// afterFieldChange recomputes and syncs after any non-query field
// change. Non-query fields write through immediately: the deep link is
// replaced and sticky preferences are persisted (unless the change was
// pushed by the embedding host, which never touches preferences).
func (m *Model) afterFieldChange(persist bool) {
	m.recompute()
	m.deepLink = querystring.Encode(m.st).Encode()

	if persist && m.opts.Prefs != nil {
		_ = m.opts.Prefs.Update(m.st)
	}
}

func (m *Model) recompute() {
	if m.catalog == nil {
		return
	}

	if m.seed == 0 && m.opts.Seeds != nil {
		m.seed = m.opts.Seeds.Seed(time.Now())
	}

	m.result = m.engine.Run(m.catalog.Items, m.st, m.opts.Favorites, m.seed)

	// Clamp down only: the engine reports the effective page.
	m.st.Page = m.result.Page
	m.pager.TotalPages = m.result.TotalPages
	m.pager.Page = m.result.Page - 1

	if m.cursor >= len(m.result.Items) {
		m.cursor = len(m.result.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) handleHostMessage(env embedhost.Envelope) {
	switch env.Type {
	case embedhost.TypeConfig:
		var cfg embedhost.EmbedConfig
		if err := decodePayload(env, &cfg); err != nil {
			return
		}
		m.applyEmbedConfig(cfg)

	case embedhost.TypeInstalled:
		var p embedhost.InstalledPayload
		if err := decodePayload(env, &p); err != nil {
			return
		}
		if m.detail != nil {
			m.detail.tracker.Apply(p)
		}
	}
}

func (m *Model) applyEmbedConfig(cfg embedhost.EmbedConfig) {
	if cfg.Theme != "" {
		// Delivered back through the theme subscription, which restyles.
		if m.opts.Broker != nil {
			m.opts.Broker.Publish(events.TopicThemeChanged, cfg.Theme)
		} else {
			m.theme = cfg.Theme
			setTheme(cfg.Theme)
		}
	}

	if cfg.Filters != nil {
		if cfg.Filters.Type != "" {
			m.st.SetTypeFilter(cfg.Filters.Type)
		}
		if cfg.Filters.Collection != "" {
			m.st.SetCollection(cfg.Filters.Collection)
		}
	}

	switch explorer.ViewMode(cfg.ViewMode) {
	case explorer.ViewGrid, explorer.ViewList:
		m.st.View = explorer.ViewMode(cfg.ViewMode)
	}

	// Host-pushed configuration never lands in sticky preferences.
	m.afterFieldChange(false)
}

func (m *Model) openDetail(it catalog.Item) {
	m.detail = newDetail(it, m.opts)
	m.view = viewDetail

	if m.opts.Host != nil {
		_ = m.opts.Host.Send(embedhost.TypeNavigation, embedhost.NavigationPayload{
			Path: fmt.Sprintf("/marketplace/%s/%s", it.Type, it.Name),
		})
		if env, err := m.detail.tracker.CheckMessage(); err == nil {
			_ = m.opts.Host.SendEnvelope(env)
		}
	}
}

func (m *Model) closeDetail() {
	m.detail = nil
	m.view = viewBrowse

	if m.opts.Host != nil {
		_ = m.opts.Host.Send(embedhost.TypeNavigation, embedhost.NavigationPayload{
			Path: "/marketplace",
		})
	}
}

func (m Model) itemAtCursor() *catalog.Item {
	if m.cursor < 0 || m.cursor >= len(m.result.Items) {
		return nil
	}
	it := m.result.Items[m.cursor]
	return &it
}

func (m Model) catalogItems() []catalog.Item {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.Items
}

// nextCollection cycles none -> each collection -> none.
func (m Model) nextCollection() string {
	if m.catalog == nil || len(m.catalog.Collections) == 0 {
		return ""
	}

	if m.st.Collection == "" {
		return m.catalog.Collections[0].Name
	}
	for i, c := range m.catalog.Collections {
		if c.Name == m.st.Collection {
			if i+1 < len(m.catalog.Collections) {
				return m.catalog.Collections[i+1].Name
			}
			return ""
		}
	}
	return ""
}

// nextType cycles all -> photo_pack -> quote_pack -> preset_settings -> all.
func nextType(current string) string {
	if current == explorer.TypeAll || current == "" {
		return catalog.ItemTypes[0]
	}
	for i, t := range catalog.ItemTypes {
		if t == current {
			if i+1 < len(catalog.ItemTypes) {
				return catalog.ItemTypes[i+1]
			}
			return explorer.TypeAll
		}
	}
	return explorer.TypeAll
}
