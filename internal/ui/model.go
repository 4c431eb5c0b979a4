package ui

import (
	"context"
	"regexp"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kevindowling/logcat-viewer/internal/config"
	"github.com/kevindowling/logcat-viewer/internal/filter"
	"github.com/kevindowling/logcat-viewer/internal/logcat"
	"github.com/kevindowling/logcat-viewer/internal/prefs"
	"github.com/kevindowling/logcat-viewer/internal/session"
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	sess      *session.Session
	capture   session.CaptureOptions
	cfg       config.Config
	prefsPath string

	keys     keyMap
	theme    Theme
	themeIdx int

	width  int
	height int
	ready  bool

	// Log view
	viewport viewport.Model
	follow   bool
	visible  []logcat.Record
	filtered int
	total    int
	dirty    bool
	flushing bool

	// Applied filters
	minPriority logcat.Priority
	tagExpr     string
	messageExpr string
	pidFilter   int

	// Search
	searchActive   bool
	searchInput    textinput.Model
	searchQuery    string
	searchRegex    *regexp.Regexp
	searchMatches  []int
	searchMatchIdx int

	// Filter modal
	showFilters     bool
	filterInputs    [3]textinput.Model // tag terms, message terms, pid
	filterFocusIdx  int

	showHelp  bool
	statusMsg string
}

func newModel(opts Options) *Model {
	m := &Model{
		ctx:         opts.Context,
		sess:        opts.Session,
		capture:     opts.Capture,
		cfg:         opts.Config,
		prefsPath:   opts.PrefsPath,
		keys:        DefaultKeyMap(),
		follow:      opts.Prefs.Follow,
		minPriority: logcat.PriorityUnknown,
		pidFilter:   -1,
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}

	for i, t := range Themes {
		if t.Name == opts.Prefs.Theme {
			m.themeIdx = i
		}
	}
	m.theme = Themes[m.themeIdx]

	search := textinput.New()
	search.Placeholder = "Search logs..."
	search.CharLimit = 100
	m.searchInput = search

	m.initFilterInputs()
	return m
}

// Init starts listening for session events.
func (m *Model) Init() tea.Cmd {
	return m.waitEvent()
}

// waitEvent delivers the next session event as a message.
func (m *Model) waitEvent() tea.Cmd {
	events := m.sess.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return sessionEventMsg{ev}
	}
}

type sessionEventMsg struct {
	event session.Event
}

type flushMsg struct{}

// scheduleFlush arms the debounce tick unless one is already pending.
func (m *Model) scheduleFlush() tea.Cmd {
	if m.flushing {
		return nil
	}
	m.flushing = true
	return tea.Tick(renderDebounce, func(time.Time) tea.Msg { return flushMsg{} })
}

// Update is the Bubble Tea message loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.contentHeight())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.contentHeight()
		}
		m.refreshView()
		return m, nil

	case sessionEventMsg:
		return m.handleSessionEvent(msg.event)

	case flushMsg:
		m.flushing = false
		if m.dirty {
			m.dirty = false
			m.refreshView()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleSessionEvent reacts to the closed session event variants.
func (m *Model) handleSessionEvent(ev session.Event) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch ev := ev.(type) {
	case session.Started:
		m.statusMsg = "capture started"
		m.dirty = true
		cmd = m.scheduleFlush()
	case session.Stopped:
		m.statusMsg = "capture stopped"
	case session.Chunk:
		m.dirty = true
		cmd = m.scheduleFlush()
	case session.Failed:
		m.statusMsg = "capture failed: " + ev.Message
	}
	return m, tea.Batch(cmd, m.waitEvent())
}

// handleKey routes keyboard input to the active surface.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always works outside text entry.
	if !m.searchActive && !m.showFilters && key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showFilters {
		return m.handleFiltersKey(msg)
	}
	if m.searchActive {
		return m.handleSearchInput(msg)
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		m.refreshView()

	case key.Matches(msg, m.keys.ToggleCapture):
		return m, m.toggleCapture()

	case key.Matches(msg, m.keys.ClearBuffer):
		m.sess.Clear()
		m.clearSearch()
		m.refreshView()

	case key.Matches(msg, m.keys.CycleLevel):
		m.cycleMinPriority()
		m.refreshView()

	case key.Matches(msg, m.keys.Filters):
		m.openFilters()

	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		m.searchInput.Focus()
		m.searchInput.SetValue("")

	case key.Matches(msg, m.keys.NextMatch):
		m.nextSearchMatch()

	case key.Matches(msg, m.keys.PrevMatch):
		m.previousSearchMatch()

	case key.Matches(msg, m.keys.Escape):
		if m.searchRegex != nil {
			m.clearSearch()
			m.refreshView()
		}

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		m.savePrefs()

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.follow = false

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.follow = true

	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
		m.follow = false

	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
		m.follow = false

	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
		m.follow = false

	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
		m.follow = false

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		m.follow = false

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		m.follow = false
	}

	return m, nil
}

// toggleCapture starts an idle session or stops a running/failed one.
func (m *Model) toggleCapture() tea.Cmd {
	switch m.sess.State() {
	case session.Idle:
		if err := m.sess.Start(m.ctx, m.capture); err != nil {
			m.statusMsg = "start failed: " + err.Error()
		}
	default:
		m.sess.Stop()
	}
	return nil
}

// cycleMinPriority advances the minimum level: everything, then V through S,
// then back to everything.
func (m *Model) cycleMinPriority() {
	if m.minPriority >= logcat.PrioritySilent {
		m.minPriority = logcat.PriorityUnknown
		return
	}
	m.minPriority++
}

func (m *Model) cycleTheme() {
	m.themeIdx = (m.themeIdx + 1) % len(Themes)
	m.theme = Themes[m.themeIdx]
	m.savePrefs()
}

// filterOptions assembles the session render options from the applied
// filters. Terms are recompiled on every pass; compilation is cheap and this
// keeps the view in lockstep with the expressions.
func (m *Model) filterOptions() session.FilterOptions {
	return session.FilterOptions{
		MinPriority:  m.minPriority,
		TagTerms:     filter.Compile(m.tagExpr),
		MessageTerms: filter.Compile(m.messageExpr),
		Limit:        m.cfg.RenderLimit,
	}
}

// refreshView re-derives the filtered records and repaints the viewport,
// honoring the auto-scroll policy.
func (m *Model) refreshView() {
	if !m.ready {
		return
	}

	res := m.sess.Buffer().Render(m.filterOptions())
	records := res.Records
	if m.pidFilter >= 0 {
		records = logcat.FilterByPid(records, m.pidFilter)
		res.Filtered = len(records)
	}
	m.visible = records
	m.filtered = res.Filtered
	m.total = res.Total

	m.findSearchMatches()

	// Preserve the reader's position by distance from the bottom when not
	// following; follow mode always lands on the newest record.
	fromBottom := m.viewport.TotalLineCount() - m.viewport.YOffset
	m.viewport.SetContent(m.renderContent())
	if m.follow {
		m.viewport.GotoBottom()
	} else {
		m.viewport.SetYOffset(m.viewport.TotalLineCount() - fromBottom)
	}
}

func (m *Model) contentHeight() int {
	h := m.height - 2 // header and status bar
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the full screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showFilters {
		return m.renderFilters()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderStatus()
}

// savePrefs persists theme and follow choices. Preference persistence is
// cosmetic; losing it is not worth an error surface mid-session.
func (m *Model) savePrefs() {
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Follow: m.follow})
}
