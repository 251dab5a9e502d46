// Package ui provides the Bubble Tea terminal interface for foxtrot.
package ui

import (
	"context"
	"image"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foxtrot-tui/foxtrot/internal/assets"
	"github.com/foxtrot-tui/foxtrot/internal/diag"
	"github.com/foxtrot-tui/foxtrot/internal/foxapi"
	"github.com/foxtrot-tui/foxtrot/internal/prefs"
	"github.com/foxtrot-tui/foxtrot/internal/preview"
	"github.com/foxtrot-tui/foxtrot/internal/state"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Client       foxapi.FloofFetcher
	Store        *state.Store
	Diag         *diag.Logger
	ThemeName    string
	PrefsPath    string
	Preview      bool
	RefreshEvery time.Duration // zero disables timed refresh
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx          context.Context
	client       foxapi.FloofFetcher
	store        *state.Store
	diag         *diag.Logger
	prefsPath    string
	refreshEvery time.Duration

	// UI state
	theme     Theme
	keys      keyMap
	spin      spinner.Model
	width     int
	height    int
	ready     bool
	showHelp  bool
	previewOn bool

	// Data state
	snapshot state.Snapshot
	photo    image.Image // decoded photo backing the art, may be nil
	photoURL string      // image url the photo belongs to
	art      string      // cached ANSI rendering of photo
}

// New creates a new Bubble Tea model. The mount fetch is considered
// outstanding from the moment the model exists, so the first frame already
// shows the loading indicator over the bundled placeholder.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = state.New()
	}
	store.Begin()

	log := opts.Diag
	if log == nil {
		log = diag.Discard()
	}

	theme := GetTheme(opts.ThemeName)
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Styles().AccentText),
	)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:          ctx,
		client:       opts.Client,
		store:        store,
		diag:         log,
		prefsPath:    prefsPath,
		refreshEvery: opts.RefreshEvery,
		theme:        theme,
		keys:         DefaultKeyMap(),
		spin:         sp,
		previewOn:    opts.Preview,
		snapshot:     store.Snapshot(),
	}

	// The placeholder renders through the same preview path as real photos.
	if img, err := preview.Decode(assets.DefaultFox); err == nil {
		m.photo = img
		m.photoURL = state.DefaultImageURL
	}

	return m
}

// Init implements tea.Model. It issues the mount fetch exactly once.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, m.fetchCmd()}
	if m.refreshEvery > 0 {
		cmds = append(cmds, refreshTickCmd(m.refreshEvery))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.rebuildArt()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshTickMsg:
		if m.refreshEvery <= 0 {
			return m, nil
		}
		cmd := m.beginFetch()
		return m, tea.Batch(cmd, refreshTickCmd(m.refreshEvery))

	case floofMsg:
		m.snapshot = state.Snapshot(msg)
		if m.snapshot.LastError == nil && m.previewOn && m.snapshot.ImageURL != m.photoURL {
			return m, m.previewCmd(m.snapshot.ImageURL)
		}
		return m, nil

	case previewMsg:
		// Drop stale renders from overlapping fetches.
		if msg.url != m.snapshot.ImageURL {
			return m, nil
		}
		m.photo = msg.photo
		m.photoURL = msg.url
		m.rebuildArt()
		return m, nil
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
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		// Deliberately not gated on an outstanding request; when fetches
		// overlap the last response to land wins.
		return m, m.beginFetch()

	case key.Matches(msg, m.keys.TogglePreview):
		m.previewOn = !m.previewOn
		m.savePrefs()
		m.rebuildArt()
		if m.previewOn && m.photoURL != m.snapshot.ImageURL {
			return m, m.previewCmd(m.snapshot.ImageURL)
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = m.theme.Styles().AccentText
		m.savePrefs()
		return m, nil
	}

	return m, nil
}

// beginFetch marks a request outstanding and returns the fetch command.
func (m *Model) beginFetch() tea.Cmd {
	if m.store == nil {
		return nil
	}
	m.store.Begin()
	m.snapshot = m.store.Snapshot()
	return m.fetchCmd()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Preview: m.previewOn}); err != nil {
		m.diag.Printf("save prefs: %v", err)
	}
}

// rebuildArt refreshes the cached ANSI rendering for the current photo and
// terminal size.
func (m *Model) rebuildArt() {
	if !m.previewOn || m.photo == nil {
		m.art = ""
		return
	}
	cols, rows := m.artBounds()
	if cols <= 0 || rows <= 0 {
		m.art = ""
		return
	}
	m.art = preview.ANSI(m.photo, cols, rows)
}

// Messages

type floofMsg state.Snapshot

type previewMsg struct {
	url   string
	photo image.Image // nil when download or decode failed
}

type refreshTickMsg time.Time

// Commands

func refreshTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// fetchCmd performs one floof request. The request is never cancelled and
// carries no ordering guarantee; it reports whatever the store holds once it
// completes.
func (m Model) fetchCmd() tea.Cmd {
	ctx, client, store, log := m.ctx, m.client, m.store, m.diag
	if client == nil || store == nil {
		return nil
	}
	return func() tea.Msg {
		payload, err := client.FetchFloof(ctx)
		if err != nil {
			store.Complete("", "", err)
			log.Printf("floof fetch failed: %v", err)
			return floofMsg(store.Snapshot())
		}
		store.Complete(payload.Image, payload.Link, nil)
		return floofMsg(store.Snapshot())
	}
}

// previewCmd downloads and decodes the photo behind imageURL. Failures only
// reach the diagnostic log; the UI falls back to showing the URL alone.
func (m Model) previewCmd(imageURL string) tea.Cmd {
	ctx, client, log := m.ctx, m.client, m.diag
	if client == nil || imageURL == "" || imageURL == state.DefaultImageURL {
		return nil
	}
	return func() tea.Msg {
		data, err := client.FetchImage(ctx, imageURL)
		if err != nil {
			log.Printf("preview download failed: %v", err)
			return previewMsg{url: imageURL}
		}
		img, err := preview.Decode(data)
		if err != nil {
			log.Printf("preview decode failed: %v", err)
			return previewMsg{url: imageURL}
		}
		return previewMsg{url: imageURL, photo: img}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
