package app

import (
	"context"
	"fmt"
	"time"

	"github.com/foxtrot-tui/foxtrot/internal/config"
	"github.com/foxtrot-tui/foxtrot/internal/diag"
	"github.com/foxtrot-tui/foxtrot/internal/foxapi"
	"github.com/foxtrot-tui/foxtrot/internal/prefs"
	"github.com/foxtrot-tui/foxtrot/internal/state"
	"github.com/foxtrot-tui/foxtrot/internal/ui"
)

// Options configure the foxtrot application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/foxtrot/prefs.toml
	RefreshEvery int    // seconds; zero disables timed refresh
}

// Run boots the foxtrot TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	log, err := diag.Open(cfg.DiagLogPath())
	if err != nil {
		return fmt.Errorf("open diagnostic log: %w", err)
	}
	defer func() { _ = log.Close() }()

	client, err := foxapi.NewClient(cfg.Endpoint, time.Duration(cfg.TimeoutSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("init floof client: %w", err)
	}

	refreshSeconds := cfg.RefreshSeconds
	if opts.RefreshEvery > 0 {
		refreshSeconds = opts.RefreshEvery
	}

	uiOpts := ui.Options{
		Context:      ctx,
		Client:       client,
		Store:        state.New(),
		Diag:         log,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
		Preview:      userPrefs.Preview,
		RefreshEvery: time.Duration(refreshSeconds) * time.Second,
	}
	return ui.Run(uiOpts)
}
