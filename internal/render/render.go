package render

import (
	"github.com/five82/pitch/internal/deck"
)

// FlowSlideKey is the one research slide drawn as a fixed horizontal flow.
const FlowSlideKey = "research-flow"

// FlowNodes is the number of nodes in the horizontal research flow.
const FlowNodes = 4

// strategy renders the base template of a slide into f.
type strategy func(f *Frame, s deck.Slide, st *UIState)

// Renderer turns slides into frames.
type Renderer struct {
	overlays   Overlays
	strategies map[deck.Template]strategy
}

// New returns a renderer using the given special elements. A nil table
// disables overlays.
func New(overlays Overlays) *Renderer {
	if overlays == nil {
		overlays = Overlays{}
	}
	return &Renderer{
		overlays: overlays,
		strategies: map[deck.Template]strategy{
			deck.TemplateTitle:    renderTitle,
			deck.TemplateCritique: renderCritique,
			deck.TemplateResearch: renderResearch,
		},
	}
}

// Render produces the frame for a slide of d. Unknown, absent and
// premium-default templates use the title strategy. Special elements are
// resolved once per slide and only ever add to the base frame.
func (r *Renderer) Render(d deck.Deck, s deck.Slide, st *UIState) Frame {
	f := Frame{
		DeckID:     d.ID,
		SlideKey:   s.Key,
		Background: d.ImageFor(s),
		Subtext:    s.Subtext,
	}

	draw, ok := r.strategies[s.Template.Normalize()]
	if !ok {
		draw = renderTitle
	}
	draw(&f, s, st)

	if len(s.Details) > 0 {
		if st.Expanded(s.Key, SectionDetails) {
			f.Details = s.Details
		} else {
			f.HiddenDetails = len(s.Details)
		}
	}

	if ov, ok := r.overlay(d.ID, s, st); ok {
		f.Overlay = &ov
	}
	return f
}

// Overlay returns the static overlay for a slide without applying state.
func (r *Renderer) Overlay(deckID string, s deck.Slide) (Overlay, bool) {
	b, ok := r.overlays.Resolve(deckID, s.Key)
	if !ok {
		return Overlay{}, false
	}
	return b(s), true
}

// HasModal reports whether the slide owns a modal overlay.
func (r *Renderer) HasModal(deckID string, s deck.Slide) bool {
	ov, ok := r.Overlay(deckID, s)
	return ok && ov.Kind == OverlayModal
}

// ToggleSections lists the sections export forces open for a slide, modal
// excluded.
func (r *Renderer) ToggleSections(deckID string, s deck.Slide) []Section {
	var out []Section
	if len(s.Details) > 0 {
		out = append(out, SectionDetails)
	}
	if s.Template.Normalize() == deck.TemplateCritique {
		out = append(out, CritiqueSections...)
	}
	if ov, ok := r.Overlay(deckID, s); ok && ov.Kind == OverlayPanel {
		out = append(out, SectionPanel)
	}
	return out
}

func (r *Renderer) overlay(deckID string, s deck.Slide, st *UIState) (Overlay, bool) {
	ov, ok := r.Overlay(deckID, s)
	if !ok {
		return Overlay{}, false
	}
	switch ov.Kind {
	case OverlayModal:
		ov.Open = st.Expanded(s.Key, SectionModal)
	case OverlayPanel:
		ov.Open = st.Expanded(s.Key, SectionPanel)
	case OverlayTabs:
		ov.Open = true
		ov.ActiveTab = clampTab(st.Tab(s.Key), len(ov.Tabs))
	}
	return ov, true
}

func renderTitle(f *Frame, s deck.Slide, _ *UIState) {
	f.Layout = LayoutTitle
	f.Header = s.Header
	f.Headline = s.Headline
	f.Subtitle = s.Subtitle
	f.Footer = s.Footer
	f.Bullets = s.Bullets
}

func renderCritique(f *Frame, s deck.Slide, st *UIState) {
	f.Layout = LayoutCritique
	f.Header = s.Header
	items := [][]string{s.Critique.Positive, s.Critique.Constructive, s.Critique.Gaps}
	titles := []string{"What works", "Constructive", "Gaps"}
	f.Columns = make([]Column, len(CritiqueSections))
	for i, section := range CritiqueSections {
		f.Columns[i] = Column{
			Section:  section,
			Title:    titles[i],
			Items:    items[i],
			Expanded: st.Expanded(s.Key, section),
		}
	}
}

func renderResearch(f *Frame, s deck.Slide, _ *UIState) {
	f.Header = s.Header
	if s.Key == FlowSlideKey {
		f.Layout = LayoutResearchFlow
		f.Flow = make([]string, FlowNodes)
		for i := 0; i < FlowNodes && i < len(s.Steps); i++ {
			f.Flow[i] = s.Steps[i].Title
		}
		return
	}
	f.Layout = LayoutResearchSteps
	f.Steps = s.Steps
}

func clampTab(tab, n int) int {
	if n == 0 || tab < 0 {
		return 0
	}
	if tab >= n {
		return n - 1
	}
	return tab
}
