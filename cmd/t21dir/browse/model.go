// Package browse is the interactive directory browser: a Bubble Tea program
// that loads the three collections once, then routes keys to store actions
// and redraws the page from each new snapshot.
package browse

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"t21dir/cmd/t21dir/ui"
	"t21dir/internal/directory"
	"t21dir/internal/state"
)

// Loader produces the collections. *loader.Loader satisfies it.
type Loader interface {
	Load(ctx context.Context) (*directory.Collections, error)
}

// Config wires the browser to its data and settings.
type Config struct {
	Loader    Loader
	PageSizes state.PageSizes
	Debounce  time.Duration
	// Timeout bounds the startup load. Zero means no limit beyond the
	// source's own.
	Timeout  time.Duration
	DarkMode *bool
	// DisableMarkdown renders detail text without glamour.
	DisableMarkdown bool

	Log      *zap.Logger
	StoreLog *zap.Logger
}

type loadedMsg struct {
	data    *directory.Collections
	elapsed time.Duration
}

type loadFailedMsg struct {
	err error
}

// Model is the browser's Bubble Tea model.
type Model struct {
	cfg    Config
	log    *zap.Logger
	keys   ui.KeyMap
	styles ui.Styles

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	search   ui.SearchBox
	markdown *glamour.TermRenderer
	cache    *ui.RenderCache

	store   *state.Store
	loading bool
	err     error

	width, height int
	ready         bool
	showHelp      bool

	// cursors holds the highlighted result per list.
	cursors        map[state.List]int
	sidebarFocused bool
	sidebarCursor  int
	lastPage       state.Page
}

// New builds a browser model. Nothing is fetched until Init runs.
func New(cfg Config) Model {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	styles := ui.NewStyles(ui.DetectTheme(cfg.DarkMode))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		cfg:      cfg,
		log:      log,
		keys:     ui.DefaultKeyMap(),
		styles:   styles,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		help:     help.New(),
		search:   ui.NewSearchBox("Search resources...", cfg.Debounce),
		cache:    ui.NewRenderCache(64),
		loading:  true,
		cursors:  make(map[state.List]int),
		lastPage: state.PageHome,
	}
}

// Init starts the spinner and the one startup load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		m.load(),
	)
}

func (m Model) load() tea.Cmd {
	l := m.cfg.Loader
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		start := time.Now()
		data, err := l.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{data: data, elapsed: time.Since(start)}
	}
}

// Store exposes the session store once loading finished; nil before.
func (m Model) Store() *state.Store { return m.store }

// Err is the load failure, if any.
func (m Model) Err() error { return m.err }

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
