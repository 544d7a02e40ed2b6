package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pitch/internal/deck"
	"github.com/five82/pitch/internal/prefs"
	"github.com/five82/pitch/internal/render"
	"github.com/five82/pitch/internal/state"
	"github.com/five82/pitch/internal/switcher"
)

// Exporter starts a background export of a deck. It returns false when an
// export is already running. Progress is reported through the state store.
type Exporter interface {
	Start(ctx context.Context, d deck.Deck, st *render.UIState) bool
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Switcher  *switcher.Switcher
	Decks     []deck.Deck
	Renderer  *render.Renderer
	Exporter  Exporter
	Store     *state.Store
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	sw        *switcher.Switcher
	decks     []deck.Deck
	renderer  *render.Renderer
	exporter  Exporter
	store     *state.Store
	logger    *zap.Logger
	prefsPath string
	logPath   string
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Scroll surface: every slide is one surface height tall.
	surface   viewport.Model
	animating bool
	frameGen  int // frames from an older generation are dropped

	showHelp bool
	logo     string
	modal    Modal

	// Export state
	exporting  bool
	exportSnap state.Snapshot
	spinner    spinner.Model

	notice       string
	noticeDanger bool
	noticeAt     time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.New(render.DefaultOverlays())
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	surface := viewport.New(0, 0)
	surface.MouseWheelEnabled = true

	return Model{
		ctx:       ctx,
		sw:        opts.Switcher,
		decks:     opts.Decks,
		renderer:  renderer,
		exporter:  opts.Exporter,
		store:     opts.Store,
		logger:    logger,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		surface:   surface,
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showHelp || m.modal != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.surface, cmd = m.surface.Update(msg)
		m.syncFromSurface()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.Width = msg.Width
		m.surface.Height = m.slideHeight()
		m.sw.Nav().Resize(m.slideHeight())
		m.stopAnimation()
		m.ready = true
		m.refreshSurface()
		return m, nil

	case frameMsg:
		if !m.animating || msg.gen != m.frameGen {
			return m, nil
		}
		offset, running := m.sw.Nav().Step()
		m.surface.SetYOffset(offset)
		if running {
			return m, frameCmd(m.frameGen)
		}
		m.animating = false
		return m, nil

	case slideSelectedMsg:
		m.sw.Nav().Select(msg.index)
		return m, m.animate()

	case deckSelectedMsg:
		return m.selectDeck(msg.id, msg.slideKey)

	case statusMsg:
		return m.handleStatus(state.Snapshot(msg))

	case spinner.TickMsg:
		if !m.exporting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.surface.View())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	// The not-found notice lasts until the next key.
	if _, ok := m.sw.NotFound(); ok {
		m.sw.DismissNotFound()
		if key.Matches(msg, m.keys.Escape) {
			return m, nil
		}
	}

	nav := m.sw.Nav()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveLocation()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		if m.logo == "" {
			m.logo = createLogo(m.theme)
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.logo = ""
		name := m.theme.Name
		if err := prefs.Update(m.prefsPath, func(p *prefs.Prefs) { p.Theme = name }); err != nil {
			m.logger.Warn("save theme failed", zap.Error(err))
		}
		m.refreshSurface()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		nav.Advance()
		return m, m.animate()

	case key.Matches(msg, m.keys.Prev):
		nav.Retreat()
		return m, m.animate()

	case key.Matches(msg, m.keys.First):
		nav.First()
		return m, m.animate()

	case key.Matches(msg, m.keys.Last):
		nav.End()
		return m, m.animate()

	case key.Matches(msg, m.keys.Slides):
		cursor := nav.Active()
		if target, ok := nav.Target(); ok {
			cursor = target
		}
		m.modal = newSlideNavigator(m.sw.Active(), nav.Active(), cursor)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.surface.Height)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.surface.Height)
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.scrollBy(m.surface.Height / 2)
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.scrollBy(-m.surface.Height / 2)
		return m, nil

	case key.Matches(msg, m.keys.Decks):
		m.modal = newDeckPicker(m.decks, m.sw.Active().ID)
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m.startExport()

	case key.Matches(msg, m.keys.Logs):
		if m.logPath == "" {
			m.setNotice("Logging to a file is disabled", true)
			return m, nil
		}
		m.modal = newLogViewer(m.logPath)
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		m.setNotice("Link "+m.sw.Bookmark(), false)
		return m, nil
	}

	m.handleSlideKey(msg)
	return m, nil
}

// handleSlideKey applies the toggles of the slide on screen.
func (m *Model) handleSlideKey(msg tea.KeyMsg) {
	d := m.sw.Active()
	s, ok := m.activeSlide()
	if !ok {
		return
	}
	st := m.sw.State()
	ov, hasOverlay := m.renderer.Overlay(d.ID, s)
	critique := s.Template.Normalize() == deck.TemplateCritique

	changed := false
	switch {
	case key.Matches(msg, m.keys.TogglePositive) && critique:
		st.Toggle(s.Key, render.SectionPositive)
		changed = true
	case key.Matches(msg, m.keys.ToggleConstructive) && critique:
		st.Toggle(s.Key, render.SectionConstructive)
		changed = true
	case key.Matches(msg, m.keys.ToggleGaps) && critique:
		st.Toggle(s.Key, render.SectionGaps)
		changed = true
	case key.Matches(msg, m.keys.ToggleDetails) && len(s.Details) > 0:
		st.Toggle(s.Key, render.SectionDetails)
		changed = true
	case key.Matches(msg, m.keys.TogglePanel) && hasOverlay && ov.Kind == render.OverlayPanel:
		st.Toggle(s.Key, render.SectionPanel)
		changed = true
	case key.Matches(msg, m.keys.ToggleModal) && hasOverlay && ov.Kind == render.OverlayModal:
		st.Toggle(s.Key, render.SectionModal)
		changed = true
	case key.Matches(msg, m.keys.Escape) && st.Expanded(s.Key, render.SectionModal):
		st.Set(s.Key, render.SectionModal, false)
		changed = true
	case key.Matches(msg, m.keys.NextTab) && hasOverlay && ov.Kind == render.OverlayTabs && len(ov.Tabs) > 0:
		st.SetTab(s.Key, (st.Tab(s.Key)+1)%len(ov.Tabs))
		changed = true
	case key.Matches(msg, m.keys.PrevTab) && hasOverlay && ov.Kind == render.OverlayTabs && len(ov.Tabs) > 0:
		n := len(ov.Tabs)
		st.SetTab(s.Key, (st.Tab(s.Key)-1+n)%n)
		changed = true
	}
	if changed {
		m.refreshSurface()
	}
}

// selectDeck opens a deck and, when slideKey names one of its slides,
// jumps straight to that slide.
func (m Model) selectDeck(id, slideKey string) (tea.Model, tea.Cmd) {
	if err := m.sw.Select(id); err != nil {
		m.logger.Info("deck selection failed", zap.String("deck", id), zap.Error(err))
		return m, nil
	}
	nav := m.sw.Nav()
	nav.Resize(m.slideHeight())
	if slideKey != "" {
		if i := m.sw.Active().IndexOf(slideKey); i >= 0 {
			nav.Select(i)
			nav.Settle()
		}
	}
	m.stopAnimation()
	m.refreshSurface()
	m.setNotice("Opened "+m.sw.Active().Title, false)
	return m, nil
}

// animate starts the frame loop for an in-flight scroll unless one is
// already running.
func (m *Model) animate() tea.Cmd {
	if !m.sw.Nav().InFlight() {
		m.surface.SetYOffset(m.sw.Nav().Offset())
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	m.frameGen++
	return frameCmd(m.frameGen)
}

// stopAnimation ends the frame loop. Ticks already scheduled carry the old
// generation and are ignored when they arrive.
func (m *Model) stopAnimation() {
	m.animating = false
	m.frameGen++
}

// scrollBy scrolls the surface directly; the controller reads the result.
func (m *Model) scrollBy(rows int) {
	m.surface.SetYOffset(m.surface.YOffset + rows)
	m.syncFromSurface()
}

func (m *Model) syncFromSurface() {
	nav := m.sw.Nav()
	nav.Interrupt()
	nav.OnScroll(m.surface.YOffset)
}

func (m Model) activeSlide() (deck.Slide, bool) {
	d := m.sw.Active()
	i := m.sw.Nav().Active()
	if i < 0 || i >= len(d.Slides) {
		return deck.Slide{}, false
	}
	return d.Slides[i], true
}

func (m Model) slideHeight() int {
	return maxInt(m.height-chromeRows, 1)
}

// refreshSurface re-renders every slide of the active deck into the scroll
// surface and restores the controller's offset.
func (m *Model) refreshSurface() {
	if !m.ready {
		return
	}
	d := m.sw.Active()
	st := m.sw.State()
	height := m.slideHeight()

	blocks := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		f := m.renderer.Render(d, s, st)
		blocks[i] = paintSlide(m.theme, f, i, len(d.Slides), m.width, height)
	}
	m.surface.SetContent(strings.Join(blocks, "\n"))
	m.surface.SetYOffset(m.sw.Nav().Offset())
}

func (m *Model) setNotice(text string, danger bool) {
	m.notice = text
	m.noticeDanger = danger
	m.noticeAt = time.Now()
}

// activeNotice returns the current notice unless it has expired.
func (m Model) activeNotice() (string, bool) {
	if m.notice == "" || time.Since(m.noticeAt) > NoticeTTL {
		return "", false
	}
	return m.notice, m.noticeDanger
}

// saveLocation persists the deep link of the slide on screen.
func (m Model) saveLocation() {
	loc := m.sw.Bookmark()
	if err := prefs.Update(m.prefsPath, func(p *prefs.Prefs) { p.Location = loc }); err != nil {
		m.logger.Warn("save location failed", zap.String("location", loc), zap.Error(err))
	}
}

// Messages

type frameMsg struct {
	gen int
}

type statusMsg state.Snapshot

// Commands

func frameCmd(gen int) tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func statusCmd(store *state.Store, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusMsg(store.Snapshot())
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Switcher == nil {
		return fmt.Errorf("ui: no deck switcher")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
