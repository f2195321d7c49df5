package app

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeline/forgetop/internal/config"
	"github.com/forgeline/forgetop/internal/forgeline"
	"github.com/forgeline/forgetop/internal/logging"
	"github.com/forgeline/forgetop/internal/prefs"
	"github.com/forgeline/forgetop/internal/state"
	"github.com/forgeline/forgetop/internal/ui"
)

// Options configure the forgetop application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/forgetop/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
	Verbose    bool
}

// Run boots the forgetop TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load forgetop config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	log := logging.Setup(cfg.LogPath(), opts.Verbose)

	client, err := forgeline.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init forgeline client: %w", err)
	}

	store := state.NewStore()
	dispatcher := state.NewDispatcher(client, store, log)

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	StartPoller(ctx, dispatcher, store, interval, log)

	// Populate the header and the opening view before the UI starts.
	_ = dispatcher.RefreshStatus(ctx)
	_ = dispatcher.LoadBoms(ctx, forgeline.ListQuery{Page: 1, Limit: cfg.PageLimit})

	uiOpts := ui.Options{
		Context:    ctx,
		Dispatcher: dispatcher,
		Store:      store,
		Config:     &cfg,
		PollTick:   interval,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
