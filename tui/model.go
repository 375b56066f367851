// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model hosting the page strip and the pager controller

// Package tui provides a horizontally paged terminal viewer. Pages are
// materialized lazily by the pager controller as the user navigates with
// keys or drags the strip with the mouse.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"playlist-pager/config"
	"playlist-pager/pager"
)

// Layout constants for UI dimensions
const (
	titleHeight     = 1 // Source name and page title
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line
	totalUIChrome   = titleHeight + statusBarHeight + helpHeight

	// Minimum strip dimensions to ensure usability
	minStripWidth  = 20
	minStripHeight = 5
)

// Interaction constants
const (
	statusMessageDuration = 5 * time.Second // How long to show transient status messages
	transitionLogSize     = 16              // Transitions kept for the status bar
	historySize           = 50              // Pages kept for back/forward
	wheelBodyLines        = 3               // Body lines scrolled per wheel notch
)

// frameMsg advances the strip animation of one generation
type frameMsg struct {
	gen int
}

// fileChangeMsg is sent when the source file changes on disk
type fileChangeMsg struct{}

// sourceLoadedMsg carries the result of a (re)load
type sourceLoadedMsg struct {
	source Source
	err    error
}

// model holds the TUI state
type model struct {
	// Dependencies
	loadSource SourceLoader
	debugf     func(string, ...interface{})
	cfg        config.PagerConfig

	// Paging
	sourcePath  string
	source      Source
	provider    *CardProvider
	strip       *PageStrip
	ctrl        *pager.Controller[*Card]
	transitions *pager.TransitionLog
	history     *History
	initialPage int
	configured  bool
	animate     bool

	// Mouse drag
	dragActive      bool    // Left button held on the strip
	settling        bool    // Snap animation after release, controller still dragging
	dragAnchorX     int     // Column where the drag started
	dragStartOffset float64 // Strip offset when the drag started

	// File watching
	watcher *fsnotify.Watcher

	// UI state
	width        int
	height       int
	quitting     bool
	help         help.Model
	statusMsg    string    // Temporary status message (e.g., "Reloaded")
	statusMsgAge time.Time // When status message was set
}

// Key bindings
type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	First   key.Binding
	Last    key.Binding
	Jump    key.Binding
	Back    key.Binding
	Forward key.Binding
	Up      key.Binding
	Down    key.Binding
	Animate key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "pgup"),
		key.WithHelp("←/h", "previous page"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l", "pgdown", " "),
		key.WithHelp("→/l", "next page"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first page"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last page"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to page"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "backspace"),
		key.WithHelp("b", "back"),
	),
	Forward: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "forward"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	Animate: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle animation"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.Jump, k.Back, k.Forward},
		{k.Up, k.Down, k.Animate, k.Reload, k.Help, k.Quit},
	}
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	failedCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("196"))

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	cardSubtitleStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("245"))

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	cardErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// Run starts the TUI mode with injected dependencies
func Run(opts Options, deps Dependencies) error {
	source, err := deps.LoadSource(opts.SourcePath)
	if err != nil {
		return err
	}

	m := initModel(source, opts, deps)

	if deps.Config.Watch && !opts.NoWatch {
		watcher, err := newSourceWatcher(opts.SourcePath)
		if err != nil {
			m.debugf("[TUI] Live reload disabled: %v", err)
		} else {
			m.watcher = watcher
			defer func() { _ = watcher.Close() }()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := finalModel.(model); ok && fm.configured && fm.ctrl.PageCount() > 0 {
		fmt.Printf("Stopped at page %d/%d of %s\n", fm.ctrl.CurrentPage()+1, fm.ctrl.PageCount(), opts.SourcePath)
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(source Source, opts Options, deps Dependencies) model {
	debugf := deps.Debugf
	if debugf == nil {
		debugf = func(string, ...interface{}) {}
	}

	provider := NewCardProvider(source, debugf)
	strip := NewPageStrip(deps.Config.AnimationFrames)

	transitions := pager.NewTransitionLog(transitionLogSize)
	transitions.Next = debugObserver{debugf: debugf}

	ctrl := pager.New(pager.Dependencies[*Card]{
		Provider: provider,
		Viewport: strip,
		Observer: transitions,
		Debugf:   debugf,
	})

	return model{
		loadSource: deps.LoadSource,
		debugf:     debugf,
		cfg:        deps.Config,

		sourcePath:  opts.SourcePath,
		source:      source,
		provider:    provider,
		strip:       strip,
		ctrl:        ctrl,
		transitions: transitions,
		history:     NewHistory(historySize),
		initialPage: opts.InitialPage,
		animate:     deps.Config.Animate && !opts.NoAnimate,

		help: help.New(),
	}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	return waitForFileChange(m.watcher, m.sourcePath, m.debugf)
}

// debugObserver logs page transitions
type debugObserver struct {
	debugf func(string, ...interface{})
}

func (o debugObserver) WillLeavePage(index int) {
	o.debugf("[TUI] Will leave page %d", index)
}

func (o debugObserver) DidArrivePage(index int) {
	o.debugf("[TUI] Did arrive at page %d", index)
}

// ========== Helper Methods ==========

// configure lays out the strip for the current window size and starts a
// fresh pager configuration at page
func (m *model) configure(page int) {
	stripWidth := max(minStripWidth, m.width)
	stripHeight := max(minStripHeight, m.height-totalUIChrome)

	m.provider.SetSize(stripWidth, stripHeight)
	m.strip.SetSize(stripWidth, stripHeight)

	m.resetDrag()
	m.ctrl.Configure(clampPage(page, m.provider.PageCount()))
	m.configured = true
}

// resetDrag abandons any drag or settle in progress
func (m *model) resetDrag() {
	if m.dragActive || m.settling || m.ctrl.Dragging() {
		m.ctrl.OnDragSettle()
	}

	m.dragActive = false
	m.settling = false
	m.strip.StopAnimation()
}

// clampPage limits page to [0, count), or 0 for an empty source
func clampPage(page, count int) int {
	if count == 0 {
		return 0
	}

	return max(0, min(page, count-1))
}

// setStatusMsg sets a transient status message with current timestamp
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// currentCard returns the card on the current page, if materialized
func (m *model) currentCard() (*Card, bool) {
	return m.ctrl.Handle(m.ctrl.CurrentPage())
}

// scheduleFrame returns a tick for a newly started strip animation
func (m *model) scheduleFrame() tea.Cmd {
	gen, ok := m.strip.TakeTickRequest()
	if !ok {
		return nil
	}

	return frameTick(gen, m.cfg.FrameInterval())
}

// frameTick returns a command delivering one animation frame
func frameTick(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// reloadSource loads the source in the background
func reloadSource(load SourceLoader, path string) tea.Cmd {
	return func() tea.Msg {
		source, err := load(path)
		return sourceLoadedMsg{source: source, err: err}
	}
}

// sourceName returns the display name of the source file
func (m *model) sourceName() string {
	return filepath.Base(m.sourcePath)
}
