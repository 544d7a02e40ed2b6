package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/pitch/internal/assets"
	"github.com/five82/pitch/internal/config"
	"github.com/five82/pitch/internal/export"
	"github.com/five82/pitch/internal/logging"
	"github.com/five82/pitch/internal/prefs"
	"github.com/five82/pitch/internal/raster"
	"github.com/five82/pitch/internal/registry"
	"github.com/five82/pitch/internal/render"
	"github.com/five82/pitch/internal/state"
	"github.com/five82/pitch/internal/switcher"
	"github.com/five82/pitch/internal/ui"
)

// Options configure the pitch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pitch/prefs.toml
	Location   string // deep link to open; empty resumes the saved one
	Debug      bool
}

// Env holds the long-lived components shared by the presenter and the CLI.
type Env struct {
	Config   config.Config
	Prefs    prefs.Prefs
	Logger   *zap.Logger
	Registry *registry.Registry
	Renderer *render.Renderer
	Images   *assets.Loader
	Raster   *raster.Rasterizer
}

// Load reads configuration and builds every component. Close the returned
// Env to flush the log.
func Load(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Debug: opts.Debug})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	reg, err := registry.Load(registry.Options{
		DeckDir:     cfg.DeckDir,
		DefaultDeck: cfg.DefaultDeck,
		Logger:      logging.Component(logger, "registry"),
	})
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load decks: %w", err)
	}

	return &Env{
		Config:   cfg,
		Prefs:    userPrefs,
		Logger:   logger,
		Registry: reg,
		Renderer: render.New(render.DefaultOverlays()),
		Images: assets.NewLoader(assets.Options{
			Root:    cfg.AssetDir,
			Timeout: cfg.ImageTimeout,
			Logger:  logging.Component(logger, "assets"),
		}),
		Raster: raster.New(cfg.Scale),
	}, nil
}

// Close flushes buffered log entries.
func (e *Env) Close() {
	_ = e.Logger.Sync()
}

// Pipeline returns an export pipeline reporting progress to onPage.
func (e *Env) Pipeline(onPage func(export.Page)) *export.Pipeline {
	return export.New(export.Options{
		Renderer:    e.Renderer,
		Images:      e.Images,
		Rasterizer:  e.Raster,
		SettleDelay: e.Config.SettleDelay,
		Logger:      logging.Component(e.Logger, "export"),
		OnPage:      onPage,
	})
}

// Run boots the pitch presenter until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	env, err := Load(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	logger := env.Logger

	// Switching decks persists the deep link right away.
	sw := switcher.New(env.Registry, 0,
		switcher.WithLogger(logging.Component(logger, "switcher")),
		switcher.OnChange(func(location string) {
			if err := prefs.Update(prefsPath, func(p *prefs.Prefs) { p.Location = location }); err != nil {
				logger.Warn("save location failed", zap.String("location", location), zap.Error(err))
			}
		}),
	)

	location := opts.Location
	if location == "" {
		location = env.Prefs.Location
	}
	d := sw.Restore(location)
	logger.Info("presenter started",
		zap.String("deck", d.ID),
		zap.String("location", location),
		zap.Int("decks", len(env.Registry.IDs())),
	)

	store := &state.Store{}
	exporter := NewExporter(env, store, env.Config.ExportDir)

	return ui.Run(ui.Options{
		Context:   ctx,
		Switcher:  sw,
		Decks:     env.Registry.Decks(),
		Renderer:  env.Renderer,
		Exporter:  exporter,
		Store:     store,
		Logger:    logging.Component(logger, "ui"),
		ThemeName: env.Prefs.Theme,
		PrefsPath: prefsPath,
		LogPath:   env.Config.LogFile,
	})
}
