package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pitch/internal/registry"
	"github.com/five82/pitch/internal/render"
)

func TestPaintSlideExactHeight(t *testing.T) {
	reg, err := registry.Load(registry.Options{})
	if err != nil {
		t.Fatalf("registry.Load: %v", err)
	}
	r := render.New(render.DefaultOverlays())
	theme := GetTheme("Nightfox")

	for _, width := range []int{60, 140} {
		for _, d := range reg.Decks() {
			st := render.NewUIState()
			for i, s := range d.Slides {
				f := r.Render(d, s, st)
				out := paintSlide(theme, f, i, d.Len(), width, 24)
				if got := lipgloss.Height(out); got != 24 {
					t.Fatalf("%s/%s at width %d: height %d, want 24", d.ID, s.Key, width, got)
				}
			}
		}
	}
}

func TestPaintSlideCritiqueCollapsed(t *testing.T) {
	f := render.Frame{
		Layout:   render.LayoutCritique,
		Headline: "What investors told us",
		Columns: []render.Column{
			{Section: render.SectionPositive, Title: "What works", Items: []string{"Clear wedge"}},
			{Section: render.SectionConstructive, Title: "Constructive", Items: []string{"Pricing unclear"}, Expanded: true},
			{Section: render.SectionGaps, Title: "Gaps", Items: []string{"No churn data", "Thin moat"}},
		},
	}
	out := paintSlide(GetTheme("Slate"), f, 0, 1, 140, 30)

	if !strings.Contains(out, "Pricing unclear") {
		t.Fatal("expanded column should list its items")
	}
	if strings.Contains(out, "Clear wedge") {
		t.Fatal("collapsed column should hide its items")
	}
}

func TestPaintSlideModalReplacesSlide(t *testing.T) {
	f := render.Frame{
		Layout:   render.LayoutTitle,
		Headline: "Team",
		Overlay: &render.Overlay{
			Kind:  render.OverlayModal,
			Title: "Advisors",
			Body:  []string{"Marta Lind"},
			Open:  true,
		},
	}
	out := paintSlide(GetTheme("Nightfox"), f, 0, 1, 100, 24)
	if !strings.Contains(out, "Marta Lind") {
		t.Fatal("open modal should show its body")
	}
}

func TestFitLines(t *testing.T) {
	if got := fitLines("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("fitLines cut = %q", got)
	}
	if got := fitLines("a", 3); strings.Count(got, "\n") != 2 {
		t.Fatalf("fitLines pad = %q", got)
	}
}
