package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/five82/pitch/internal/assets"
	"github.com/five82/pitch/internal/deck"
	"github.com/five82/pitch/internal/render"
)

// ErrEmptyDeck is returned when a deck has no slides to export.
var ErrEmptyDeck = errors.New("deck has no slides")

// Rasterizer paints a frame into a bitmap.
type Rasterizer interface {
	Rasterize(f render.Frame, images map[string]assets.Result) (image.Image, error)
}

// Images waits for a set of images; failures resolve like successes.
type Images interface {
	WaitAll(ctx context.Context, paths []string) map[string]assets.Result
}

// Document accumulates pages of constant size and orientation.
type Document interface {
	AddPage(img image.Image) error
	Pages() int
	Bytes() ([]byte, error)
}

// Page describes one captured page, for progress reporting.
type Page struct {
	Number   int // 1-based
	Total    int
	SlideKey string
	Modal    bool
}

// Options configure a Pipeline.
type Options struct {
	Renderer    *render.Renderer
	Images      Images
	Rasterizer  Rasterizer
	NewDocument func() Document
	SettleDelay time.Duration
	Logger      *zap.Logger
	OnPage      func(Page)
}

// Pipeline captures every slide of a deck, one at a time, into a document.
type Pipeline struct {
	renderer    *render.Renderer
	images      Images
	rasterizer  Rasterizer
	newDocument func() Document
	settle      time.Duration
	logger      *zap.Logger
	onPage      func(Page)
}

// New returns a pipeline. Renderer, Images and Rasterizer are required;
// NewDocument defaults to a PDF.
func New(opts Options) *Pipeline {
	newDoc := opts.NewDocument
	if newDoc == nil {
		newDoc = func() Document { return NewPDF() }
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		renderer:    opts.Renderer,
		images:      opts.Images,
		rasterizer:  opts.Rasterizer,
		newDocument: newDoc,
		settle:      opts.SettleDelay,
		logger:      logger,
		onPage:      opts.OnPage,
	}
}

// Pages returns the number of pages an export of d produces: one per slide
// plus one for every slide that owns a modal.
func (p *Pipeline) Pages(d deck.Deck) int {
	n := len(d.Slides)
	for _, s := range d.Slides {
		if p.renderer.HasModal(d.ID, s) {
			n++
		}
	}
	return n
}

// Export captures d in declared order and returns the encoded document.
// st is the presentation's UI state; anything export forces open is put
// back before the next slide, and on failure. A nil st exports from a
// fresh state. Any failure aborts the export and no document is returned.
func (p *Pipeline) Export(ctx context.Context, d deck.Deck, st *render.UIState) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("export %s: %w", d.ID, ErrEmptyDeck)
	}
	if st == nil {
		st = render.NewUIState()
	}

	started := time.Now()
	doc := p.newDocument()
	total := p.Pages(d)
	log := p.logger.With(zap.String("deck", d.ID))
	log.Info("export started", zap.Int("slides", len(d.Slides)), zap.Int("pages", total))

	for _, s := range d.Slides {
		if err := p.slide(ctx, doc, d, s, st, total); err != nil {
			log.Error("export failed", zap.String("slide", s.Key), zap.Error(err))
			return nil, fmt.Errorf("export %s: %w", d.ID, err)
		}
	}

	out, err := doc.Bytes()
	if err != nil {
		log.Error("export failed", zap.Error(err))
		return nil, fmt.Errorf("export %s: encode document: %w", d.ID, err)
	}
	log.Info("export finished",
		zap.Int("pages", doc.Pages()),
		zap.Int("bytes", len(out)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return out, nil
}

func (p *Pipeline) slide(ctx context.Context, doc Document, d deck.Deck, s deck.Slide, st *render.UIState, total int) error {
	snap := st.Snapshot()
	defer st.Restore(snap)

	st.Expand(s.Key, p.renderer.ToggleSections(d.ID, s)...)
	st.Set(s.Key, render.SectionModal, false)
	if err := p.capture(ctx, doc, p.renderer.Render(d, s, st), total, false); err != nil {
		return fmt.Errorf("slide %s: %w", s.Key, err)
	}

	if !p.renderer.HasModal(d.ID, s) {
		return nil
	}
	st.Set(s.Key, render.SectionModal, true)
	if err := p.capture(ctx, doc, p.renderer.Render(d, s, st), total, true); err != nil {
		return fmt.Errorf("slide %s modal: %w", s.Key, err)
	}
	st.Set(s.Key, render.SectionModal, false)
	return nil
}

func (p *Pipeline) capture(ctx context.Context, doc Document, f render.Frame, total int, modal bool) error {
	images := p.images.WaitAll(ctx, f.Images())
	for path, res := range images {
		if !res.OK() {
			p.logger.Warn("exporting with placeholder", zap.String("slide", f.SlideKey), zap.String("image", path), zap.Error(res.Err))
		}
	}

	if err := sleep(ctx, p.settle); err != nil {
		return err
	}

	img, err := p.rasterizer.Rasterize(f, images)
	if err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	if err := doc.AddPage(img); err != nil {
		return fmt.Errorf("add page: %w", err)
	}

	if p.onPage != nil {
		p.onPage(Page{Number: doc.Pages(), Total: total, SlideKey: f.SlideKey, Modal: modal})
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
