package render

import (
	"reflect"
	"testing"

	"github.com/five82/pitch/internal/deck"
)

func testDeck() deck.Deck {
	return deck.Deck{
		ID:     "acme",
		Images: map[string]string{"cover": "acme/cover.png"},
		Slides: []deck.Slide{
			{Key: "cover", Category: "cover", Header: "ACME", Headline: "Rockets", Subtitle: "for all", Footer: "2026"},
			{Key: "feedback", Template: deck.TemplateCritique, Header: "Feedback", Critique: deck.Critique{
				Positive: []string{"a"}, Constructive: []string{"b", "c"}, Gaps: []string{"d"},
			}},
			{Key: FlowSlideKey, Template: deck.TemplateResearch, Steps: []deck.Step{{Title: "one"}, {Title: "two"}}},
			{Key: "steps", Template: deck.TemplateResearch, Steps: []deck.Step{{Title: "x"}, {Title: "y"}, {Title: "z"}}},
			{Key: "market", Headline: "Big", Details: []string{"detail one", "detail two"}},
		},
	}
}

func TestRender_TitleBands(t *testing.T) {
	d := testDeck()
	f := New(nil).Render(d, d.Slides[0], NewUIState())
	if f.Layout != LayoutTitle {
		t.Fatalf("Layout = %v, want title", f.Layout)
	}
	if f.Header != "ACME" || f.Headline != "Rockets" || f.Subtitle != "for all" || f.Footer != "2026" {
		t.Fatalf("bands = %q/%q/%q/%q", f.Header, f.Headline, f.Subtitle, f.Footer)
	}
	if f.Background != "acme/cover.png" {
		t.Fatalf("Background = %q, want acme/cover.png", f.Background)
	}
}

func TestRender_UnknownTemplateMatchesTitle(t *testing.T) {
	d := testDeck()
	r := New(nil)
	base := d.Slides[0]
	want := r.Render(d, base, NewUIState())

	for _, tmpl := range []deck.Template{"", "hologram", deck.TemplatePremiumDefault, "  TITLE "} {
		s := base
		s.Template = tmpl
		got := r.Render(d, s, NewUIState())
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Render(template %q) = %+v, want %+v", tmpl, got, want)
		}
	}
}

func TestRender_CritiqueColumnsDefaultCollapsed(t *testing.T) {
	d := testDeck()
	f := New(nil).Render(d, d.Slides[1], NewUIState())
	if f.Layout != LayoutCritique {
		t.Fatalf("Layout = %v, want critique", f.Layout)
	}
	if len(f.Columns) != 3 {
		t.Fatalf("len(Columns) = %d, want 3", len(f.Columns))
	}
	for i, col := range f.Columns {
		if col.Section != CritiqueSections[i] {
			t.Fatalf("Columns[%d].Section = %q, want %q", i, col.Section, CritiqueSections[i])
		}
		if col.Expanded {
			t.Fatalf("Columns[%d] expanded by default", i)
		}
	}
	if len(f.Columns[1].Items) != 2 {
		t.Fatalf("constructive items = %v, want 2", f.Columns[1].Items)
	}
}

func TestToggle_AffectsOnlyOneColumnOfOneSlide(t *testing.T) {
	d := testDeck()
	other := d.Slides[1]
	other.Key = "feedback-2"
	d.Slides = append(d.Slides, other)

	st := NewUIState()
	if !st.Toggle("feedback", SectionConstructive) {
		t.Fatalf("Toggle returned false, want true")
	}

	r := New(nil)
	f := r.Render(d, d.Slides[1], st)
	for _, col := range f.Columns {
		want := col.Section == SectionConstructive
		if col.Expanded != want {
			t.Fatalf("column %q Expanded = %v, want %v", col.Section, col.Expanded, want)
		}
	}
	f2 := r.Render(d, d.Slides[len(d.Slides)-1], st)
	for _, col := range f2.Columns {
		if col.Expanded {
			t.Fatalf("other slide column %q expanded", col.Section)
		}
	}

	if st.Toggle("feedback", SectionConstructive) {
		t.Fatalf("second Toggle returned true, want false")
	}
	if st.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after toggling back", st.Len())
	}
}

func TestRender_ResearchFlowIsFourNodes(t *testing.T) {
	d := testDeck()
	f := New(nil).Render(d, d.Slides[2], NewUIState())
	if f.Layout != LayoutResearchFlow {
		t.Fatalf("Layout = %v, want research-flow", f.Layout)
	}
	want := []string{"one", "two", "", ""}
	if !reflect.DeepEqual(f.Flow, want) {
		t.Fatalf("Flow = %q, want %q", f.Flow, want)
	}
}

func TestRender_ResearchStepsForOtherKeys(t *testing.T) {
	d := testDeck()
	f := New(nil).Render(d, d.Slides[3], NewUIState())
	if f.Layout != LayoutResearchSteps {
		t.Fatalf("Layout = %v, want research-steps", f.Layout)
	}
	if len(f.Steps) != 3 || f.Flow != nil {
		t.Fatalf("Steps = %v Flow = %v", f.Steps, f.Flow)
	}
}

func TestRender_DetailsHiddenUntilToggled(t *testing.T) {
	d := testDeck()
	st := NewUIState()
	r := New(nil)

	f := r.Render(d, d.Slides[4], st)
	if f.Details != nil || f.HiddenDetails != 2 {
		t.Fatalf("collapsed Details = %v HiddenDetails = %d", f.Details, f.HiddenDetails)
	}
	st.Toggle("market", SectionDetails)
	f = r.Render(d, d.Slides[4], st)
	if len(f.Details) != 2 || f.HiddenDetails != 0 {
		t.Fatalf("expanded Details = %v HiddenDetails = %d", f.Details, f.HiddenDetails)
	}
}

func TestRender_OverlayIsAdditive(t *testing.T) {
	d := testDeck()
	plain := New(nil)
	overlays := Overlays{}
	overlays.Register("acme", "cover", func(deck.Slide) Overlay {
		return Overlay{Kind: OverlayModal, Title: "More", Image: "acme/more.png"}
	})
	withOverlay := New(overlays)

	st := NewUIState()
	base := plain.Render(d, d.Slides[0], st)
	decorated := withOverlay.Render(d, d.Slides[0], st)
	if decorated.Overlay == nil {
		t.Fatalf("expected overlay")
	}
	decorated.Overlay = nil
	if !reflect.DeepEqual(base, decorated) {
		t.Fatalf("overlay changed the base frame: %+v vs %+v", base, decorated)
	}

	if !withOverlay.HasModal("acme", d.Slides[0]) || withOverlay.HasModal("other", d.Slides[0]) {
		t.Fatalf("HasModal resolved the wrong slides")
	}
}

func TestRender_ModalImagesOnlyWhenOpen(t *testing.T) {
	d := testDeck()
	overlays := Overlays{}
	overlays.Register("acme", "cover", func(deck.Slide) Overlay {
		return Overlay{Kind: OverlayModal, Image: "acme/more.png"}
	})
	r := New(overlays)
	st := NewUIState()

	f := r.Render(d, d.Slides[0], st)
	if got := f.Images(); !reflect.DeepEqual(got, []string{"acme/cover.png"}) {
		t.Fatalf("closed Images() = %v", got)
	}
	st.Set("cover", SectionModal, true)
	f = r.Render(d, d.Slides[0], st)
	if !f.ModalOpen() {
		t.Fatalf("ModalOpen() = false after opening")
	}
	if got := f.Images(); !reflect.DeepEqual(got, []string{"acme/cover.png", "acme/more.png"}) {
		t.Fatalf("open Images() = %v", got)
	}
}

func TestRender_TabsClampActive(t *testing.T) {
	d := testDeck()
	overlays := Overlays{}
	overlays.Register("acme", "cover", func(deck.Slide) Overlay {
		return Overlay{Kind: OverlayTabs, Tabs: []Tab{{Name: "a"}, {Name: "b"}}}
	})
	st := NewUIState()
	st.SetTab("cover", 9)
	f := New(overlays).Render(d, d.Slides[0], st)
	if f.Overlay.ActiveTab != 1 {
		t.Fatalf("ActiveTab = %d, want 1", f.Overlay.ActiveTab)
	}
}

func TestDefaultOverlays_ResolveKnownSlides(t *testing.T) {
	o := DefaultOverlays()
	for _, tc := range []struct{ deck, slide string }{
		{"northwind", "market"},
		{"northwind", "team"},
		{"lumen", "product"},
		{"lumen", "pricing"},
	} {
		if _, ok := o.Resolve(tc.deck, tc.slide); !ok {
			t.Fatalf("Resolve(%q, %q) not found", tc.deck, tc.slide)
		}
	}
	if _, ok := o.Resolve("northwind", "cover"); ok {
		t.Fatalf("Resolve(northwind, cover) found an overlay")
	}
}

func TestToggleSections(t *testing.T) {
	d := testDeck()
	r := New(nil)
	got := r.ToggleSections(d.ID, d.Slides[1])
	if !reflect.DeepEqual(got, CritiqueSections) {
		t.Fatalf("ToggleSections(critique) = %v", got)
	}
	got = r.ToggleSections(d.ID, d.Slides[4])
	if !reflect.DeepEqual(got, []Section{SectionDetails}) {
		t.Fatalf("ToggleSections(details) = %v", got)
	}
}

func TestUIState_SnapshotRestoreAndReset(t *testing.T) {
	st := NewUIState()
	st.Set("a", SectionGaps, true)
	st.SetTab("b", 2)
	snap := st.Snapshot()

	st.Expand("c", SectionDetails, SectionPanel)
	st.SetTab("b", 0)
	st.Restore(snap)

	if !st.Expanded("a", SectionGaps) || st.Expanded("c", SectionDetails) || st.Tab("b") != 2 {
		t.Fatalf("Restore did not reproduce the snapshot")
	}

	st.Reset()
	if st.Len() != 0 || st.Tab("b") != 0 {
		t.Fatalf("Reset left state behind")
	}
}
