package export

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/pitch/internal/assets"
	"github.com/five82/pitch/internal/deck"
	"github.com/five82/pitch/internal/render"
)

type fakeImages struct {
	failing map[string]bool
	calls   [][]string
}

func (f *fakeImages) WaitAll(_ context.Context, paths []string) map[string]assets.Result {
	f.calls = append(f.calls, paths)
	out := make(map[string]assets.Result, len(paths))
	for _, p := range paths {
		if f.failing[p] {
			out[p] = assets.Result{Path: p, Err: errors.New("missing")}
			continue
		}
		out[p] = assets.Result{Path: p, Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	}
	return out
}

// fakeRaster records the frames it was asked to paint.
type fakeRaster struct {
	frames []render.Frame
	failOn string
}

func (f *fakeRaster) Rasterize(fr render.Frame, _ map[string]assets.Result) (image.Image, error) {
	if fr.SlideKey == f.failOn {
		return nil, errors.New("boom")
	}
	f.frames = append(f.frames, fr)
	return image.NewRGBA(image.Rect(0, 0, 16, 9)), nil
}

type fakeDoc struct {
	pages int
}

func (d *fakeDoc) AddPage(image.Image) error { d.pages++; return nil }
func (d *fakeDoc) Pages() int                { return d.pages }
func (d *fakeDoc) Bytes() ([]byte, error)    { return []byte("doc"), nil }

func testDeck() deck.Deck {
	return deck.Deck{
		ID:    "acme",
		Title: "Acme Robotics",
		Images: map[string]string{
			"title": "acme/cover.png",
		},
		Slides: []deck.Slide{
			{Key: "cover", Category: "title", Headline: "Acme"},
			{Key: "review", Template: deck.TemplateCritique, Critique: deck.Critique{Positive: []string{"a"}, Gaps: []string{"b"}}},
			{Key: "team", Headline: "Team", Details: []string{"hidden"}},
			{Key: "close", Headline: "Thanks"},
		},
	}
}

func newPipeline(ov render.Overlays, imgs *fakeImages, r *fakeRaster) *Pipeline {
	return New(Options{
		Renderer:    render.New(ov),
		Images:      imgs,
		Rasterizer:  r,
		NewDocument: func() Document { return &fakeDoc{} },
	})
}

func TestExport_OnePagePerSlide(t *testing.T) {
	r := &fakeRaster{}
	var pages []Page
	p := New(Options{
		Renderer:    render.New(nil),
		Images:      &fakeImages{},
		Rasterizer:  r,
		NewDocument: func() Document { return &fakeDoc{} },
		OnPage:      func(pg Page) { pages = append(pages, pg) },
	})

	d := testDeck()
	if _, err := p.Export(context.Background(), d, nil); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(r.frames) != len(d.Slides) {
		t.Fatalf("pages = %d, want %d", len(r.frames), len(d.Slides))
	}
	for i, f := range r.frames {
		if f.SlideKey != d.Slides[i].Key {
			t.Fatalf("page %d = %q, want %q", i, f.SlideKey, d.Slides[i].Key)
		}
	}
	if len(pages) != 4 || pages[3].Number != 4 || pages[3].Total != 4 {
		t.Fatalf("progress = %+v", pages)
	}
}

func TestExport_ModalAddsPageAfterOwner(t *testing.T) {
	ov := render.Overlays{}
	ov.Register("acme", "team", func(deck.Slide) render.Overlay {
		return render.Overlay{Kind: render.OverlayModal, Title: "Advisors", Image: "acme/advisors.png"}
	})
	r := &fakeRaster{}
	p := newPipeline(ov, &fakeImages{}, r)

	d := testDeck()
	if got := p.Pages(d); got != len(d.Slides)+1 {
		t.Fatalf("Pages = %d, want %d", got, len(d.Slides)+1)
	}
	if _, err := p.Export(context.Background(), d, nil); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	want := []struct {
		key   string
		modal bool
	}{{"cover", false}, {"review", false}, {"team", false}, {"team", true}, {"close", false}}
	if len(r.frames) != len(want) {
		t.Fatalf("pages = %d, want %d", len(r.frames), len(want))
	}
	for i, w := range want {
		f := r.frames[i]
		if f.SlideKey != w.key || f.ModalOpen() != w.modal {
			t.Fatalf("page %d = %q modal=%v, want %q modal=%v", i, f.SlideKey, f.ModalOpen(), w.key, w.modal)
		}
	}
}

func TestExport_ForcesSectionsOpenAndRestores(t *testing.T) {
	r := &fakeRaster{}
	p := newPipeline(nil, &fakeImages{}, r)
	st := render.NewUIState()
	st.Set("review", render.SectionGaps, true)

	if _, err := p.Export(context.Background(), testDeck(), st); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	review := r.frames[1]
	for _, col := range review.Columns {
		if !col.Expanded {
			t.Fatalf("column %s was not forced open", col.Section)
		}
	}
	team := r.frames[2]
	if len(team.Details) != 1 || team.HiddenDetails != 0 {
		t.Fatalf("details not forced visible: %+v", team)
	}

	if st.Len() != 1 || !st.Expanded("review", render.SectionGaps) {
		t.Fatalf("UI state not restored, len %d", st.Len())
	}
	if st.Expanded("review", render.SectionPositive) || st.Expanded("team", render.SectionDetails) {
		t.Fatalf("forced sections leaked into UI state")
	}
}

func TestExport_MissingImageStillProducesPage(t *testing.T) {
	imgs := &fakeImages{failing: map[string]bool{"acme/cover.png": true}}
	r := &fakeRaster{}
	p := newPipeline(nil, imgs, r)

	d := testDeck()
	if _, err := p.Export(context.Background(), d, nil); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(r.frames) != len(d.Slides) {
		t.Fatalf("pages = %d, want %d", len(r.frames), len(d.Slides))
	}
	if len(imgs.calls[0]) != 1 || imgs.calls[0][0] != "acme/cover.png" {
		t.Fatalf("first wait = %v, want the cover image", imgs.calls[0])
	}
}

func TestExport_FailureAborts(t *testing.T) {
	r := &fakeRaster{failOn: "review"}
	p := newPipeline(nil, &fakeImages{}, r)
	st := render.NewUIState()

	doc, err := p.Export(context.Background(), testDeck(), st)
	if err == nil {
		t.Fatalf("Export returned nil error")
	}
	if doc != nil {
		t.Fatalf("partial document returned")
	}
	if len(r.frames) != 1 {
		t.Fatalf("export continued after failure: %d pages", len(r.frames))
	}
	if st.Len() != 0 {
		t.Fatalf("forced state not restored after failure")
	}
}

func TestExport_EmptyDeck(t *testing.T) {
	p := newPipeline(nil, &fakeImages{}, &fakeRaster{})
	if _, err := p.Export(context.Background(), deck.Deck{ID: "x"}, nil); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("Export error = %v, want ErrEmptyDeck", err)
	}
}

func TestExport_SettleDelayHonoursContext(t *testing.T) {
	p := New(Options{
		Renderer:    render.New(nil),
		Images:      &fakeImages{},
		Rasterizer:  &fakeRaster{},
		NewDocument: func() Document { return &fakeDoc{} },
		SettleDelay: time.Hour,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := p.Export(ctx, testDeck(), nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Export error = %v, want context.DeadlineExceeded", err)
	}
}

func TestFilename(t *testing.T) {
	date := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		d    deck.Deck
		want string
	}{
		{deck.Deck{ID: "nw", Title: "Northwind Freight"}, "northwind-freight-2026-03-07.pdf"},
		{deck.Deck{ID: "nw", Title: "  Series A: 2026!  "}, "series-a-2026-2026-03-07.pdf"},
		{deck.Deck{ID: "lumen", Title: "***"}, "lumen-2026-03-07.pdf"},
		{deck.Deck{}, "deck-2026-03-07.pdf"},
	}
	for _, tc := range cases {
		if got := Filename(tc.d, date); got != tc.want {
			t.Fatalf("Filename(%q) = %q, want %q", tc.d.Title, got, tc.want)
		}
	}
}

func TestWrite_Atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "deck.pdf")

	if err := Write(path, []byte("%PDF-1.4")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "%PDF-1.4" {
		t.Fatalf("content = %q", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("leftover files: %v", entries)
	}
}

func TestPDF_Pages(t *testing.T) {
	doc := NewPDF()
	for i := 0; i < 2; i++ {
		if err := doc.AddPage(image.NewRGBA(image.Rect(0, 0, 32, 18))); err != nil {
			t.Fatalf("AddPage returned error: %v", err)
		}
	}
	if doc.Pages() != 2 {
		t.Fatalf("Pages() = %d, want 2", doc.Pages())
	}
	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes returned error: %v", err)
	}
	if len(out) < 4 || string(out[:4]) != "%PDF" {
		t.Fatalf("output is not a PDF")
	}
}
