package switcher

import (
	"errors"
	"testing"

	"github.com/five82/pitch/internal/registry"
	"github.com/five82/pitch/internal/render"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.Load(registry.Options{})
	if err != nil {
		t.Fatalf("registry.Load returned error: %v", err)
	}
	return r
}

func TestNew_StartsOnDefault(t *testing.T) {
	reg := newRegistry(t)
	s := New(reg, 20)
	if s.Active().ID != reg.DefaultID() {
		t.Fatalf("Active().ID = %q, want %q", s.Active().ID, reg.DefaultID())
	}
	if s.Location() != "#"+reg.DefaultID() {
		t.Fatalf("Location() = %q", s.Location())
	}
}

func TestSelect_ResetsNavigationAndState(t *testing.T) {
	reg := newRegistry(t)
	var saved []string
	s := New(reg, 20, OnChange(func(loc string) { saved = append(saved, loc) }))

	s.Nav().Select(3)
	s.Nav().Settle()
	s.State().Toggle("feedback", render.SectionGaps)

	if err := s.Select("lumen"); err != nil {
		t.Fatalf("Select(lumen) returned error: %v", err)
	}
	if s.Active().ID != "lumen" {
		t.Fatalf("Active().ID = %q, want lumen", s.Active().ID)
	}
	if s.Nav().Active() != 0 || s.Nav().Len() != s.Active().Len() {
		t.Fatalf("navigation not reset: active %d len %d", s.Nav().Active(), s.Nav().Len())
	}
	if s.State().Len() != 0 {
		t.Fatalf("UI state not reset")
	}
	if s.Location() != "#lumen" {
		t.Fatalf("Location() = %q, want #lumen", s.Location())
	}
	if len(saved) != 1 || saved[0] != "#lumen" {
		t.Fatalf("OnChange calls = %v, want [#lumen]", saved)
	}
}

func TestSelect_UnknownLeavesStateUnchanged(t *testing.T) {
	reg := newRegistry(t)
	s := New(reg, 20)
	s.Nav().Select(2)
	s.Nav().Settle()
	s.State().Toggle("feedback", render.SectionPositive)
	before := s.Active().ID
	loc := s.Location()

	err := s.Select("nope")
	if !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("Select(nope) error = %v, want ErrDeckNotFound", err)
	}
	if s.Active().ID != before || s.Location() != loc {
		t.Fatalf("active deck changed to %q (%q)", s.Active().ID, s.Location())
	}
	if s.Nav().Active() != 2 {
		t.Fatalf("Nav().Active() = %d, want 2", s.Nav().Active())
	}
	if !s.State().Expanded("feedback", render.SectionPositive) {
		t.Fatalf("UI state was cleared")
	}
	if id, ok := s.NotFound(); !ok || id != "nope" {
		t.Fatalf("NotFound() = %q/%v, want nope/true", id, ok)
	}

	if err := s.Select("harbor"); err != nil {
		t.Fatalf("Select(harbor) returned error: %v", err)
	}
	if _, ok := s.NotFound(); ok {
		t.Fatalf("NotFound() still set after a successful selection")
	}
}

func TestRestore_RoundTripsEveryDeck(t *testing.T) {
	reg := newRegistry(t)
	for _, id := range reg.IDs() {
		s := New(reg, 20)
		got := s.Restore(Location(id, ""))
		if got.ID != id {
			t.Fatalf("Restore(Location(%q)) = %q", id, got.ID)
		}
	}
}

func TestRestore_InvalidFallsBackToDefault(t *testing.T) {
	reg := newRegistry(t)
	for _, loc := range []string{"", "#", "#missing", "%zz", "pitch:///#missing/cover"} {
		s := New(reg, 20)
		s.Select("harbor")
		if got := s.Restore(loc); got.ID != reg.DefaultID() {
			t.Fatalf("Restore(%q) = %q, want default %q", loc, got.ID, reg.DefaultID())
		}
	}
}

func TestRestore_WithSlideKey(t *testing.T) {
	reg := newRegistry(t)
	s := New(reg, 20)
	s.Restore("pitch:///#northwind/feedback")

	want := s.Active().IndexOf("feedback")
	if want < 0 {
		t.Fatalf("northwind has no feedback slide")
	}
	if s.Nav().Active() != want {
		t.Fatalf("Nav().Active() = %d, want %d", s.Nav().Active(), want)
	}
	if s.Bookmark() != "#northwind/feedback" {
		t.Fatalf("Bookmark() = %q", s.Bookmark())
	}

	s.Restore("#northwind/unknown-slide")
	if s.Nav().Active() != 0 {
		t.Fatalf("unknown slide key should land on slide 0, got %d", s.Nav().Active())
	}
}

func TestParseLocation(t *testing.T) {
	cases := []struct {
		in   string
		want Link
	}{
		{"", Link{}},
		{"#acme", Link{DeckID: "acme"}},
		{" acme ", Link{DeckID: "acme"}},
		{"#acme/market", Link{DeckID: "acme", SlideKey: "market"}},
		{"pitch:///#lumen", Link{DeckID: "lumen"}},
		{"https://decks.example/view#a%20b/c", Link{DeckID: "a b", SlideKey: "c"}},
		{"#%zz", Link{}},
	}
	for _, tc := range cases {
		if got := ParseLocation(tc.in); got != tc.want {
			t.Fatalf("ParseLocation(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestLocation(t *testing.T) {
	if got := Location("a b", ""); got != "#a%20b" {
		t.Fatalf("Location = %q, want #a%%20b", got)
	}
	if got := Location("acme", "market"); got != "#acme/market" {
		t.Fatalf("Location = %q, want #acme/market", got)
	}
	if got := Location(" ", "x"); got != "" {
		t.Fatalf("Location(blank) = %q, want empty", got)
	}
	if got := ParseLocation(Location("a/b", "")); got.DeckID != "a/b" {
		t.Fatalf("round trip of id with slash = %+v", got)
	}
}
