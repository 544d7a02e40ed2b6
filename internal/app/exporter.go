package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/five82/pitch/internal/deck"
	"github.com/five82/pitch/internal/export"
	"github.com/five82/pitch/internal/logging"
	"github.com/five82/pitch/internal/render"
	"github.com/five82/pitch/internal/state"
	"github.com/five82/pitch/internal/switcher"
)

// pipeline is the part of export.Pipeline the exporter drives.
type pipeline interface {
	Pages(d deck.Deck) int
	Export(ctx context.Context, d deck.Deck, st *render.UIState) ([]byte, error)
}

// Exporter runs one export at a time in the background and reports its
// progress to a state.Store.
type Exporter struct {
	pipeline pipeline
	store    *state.Store
	dir      string
	now      func() time.Time
	logger   *zap.Logger
}

// NewExporter returns an exporter writing PDFs into dir.
func NewExporter(env *Env, store *state.Store, dir string) *Exporter {
	e := &Exporter{
		store:  store,
		dir:    dir,
		now:    time.Now,
		logger: logging.Component(env.Logger, "exporter"),
	}
	e.pipeline = env.Pipeline(func(p export.Page) {
		store.Progress(p.Number, p.Total)
	})
	return e
}

// Start launches the export of d and returns immediately. It returns false
// when an export is already running. The exporter owns st from here on.
func (e *Exporter) Start(ctx context.Context, d deck.Deck, st *render.UIState) bool {
	if !e.store.Start(d.ID, e.pipeline.Pages(d)) {
		return false
	}
	go func() {
		path, err := e.run(ctx, d, st)
		e.store.Finish(path, err)
	}()
	return true
}

func (e *Exporter) run(ctx context.Context, d deck.Deck, st *render.UIState) (string, error) {
	path, err := exportTo(ctx, e.pipeline, d, st, e.dir, e.now())
	if err != nil {
		return "", err
	}
	e.logger.Info("export saved", zap.String("deck", d.ID), zap.String("path", path))
	return path, nil
}

// ExportDeck exports the deck named by location into dir and returns the
// written path. onPage may be nil.
func (e *Env) ExportDeck(ctx context.Context, location, dir string, onPage func(export.Page)) (string, error) {
	link := switcher.ParseLocation(location)
	d := e.Registry.Default()
	if link.DeckID != "" {
		found, ok := e.Registry.Lookup(link.DeckID)
		if !ok {
			return "", fmt.Errorf("%w: %q", switcher.ErrDeckNotFound, link.DeckID)
		}
		d = found
	}
	return exportTo(ctx, e.Pipeline(onPage), d, nil, dir, time.Now())
}

// exportTo runs the pipeline and writes the document atomically.
func exportTo(ctx context.Context, p pipeline, d deck.Deck, st *render.UIState, dir string, date time.Time) (string, error) {
	doc, err := p.Export(ctx, d, st)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, export.Filename(d, date))
	if err := export.Write(path, doc); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
