package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func openNavigator(t *testing.T, m Model) (Model, *slideNavigator) {
	t.Helper()
	m, _ = press(t, m, "s")
	n, ok := m.modal.(*slideNavigator)
	if !ok {
		t.Fatal("s did not open the slide navigator")
	}
	return m, n
}

func TestSlideNavigatorJumpsInOneSelection(t *testing.T) {
	m, _ := newTestModel(t)
	want := m.sw.Active().IndexOf("validation")
	if want < 2 {
		t.Fatalf("validation slide at %d, want a slide well past the first", want)
	}

	m, n := openNavigator(t, m)
	if n.cursor != 0 {
		t.Fatalf("cursor = %d, want the active slide 0", n.cursor)
	}
	for i := 0; i < want; i++ {
		m, _ = press(t, m, "j")
	}
	if n.cursor != want {
		t.Fatalf("cursor = %d, want %d", n.cursor, want)
	}

	m, cmd := press(t, m, "enter")
	if m.modal != nil || cmd == nil {
		t.Fatal("enter should close the navigator and emit a selection")
	}
	m = update(t, m, cmd())
	if target, ok := m.sw.Nav().Target(); !ok || target != want {
		t.Fatalf("target = %d (in flight %v), want %d", target, ok, want)
	}
	if !m.animating {
		t.Fatal("selection should scroll smoothly")
	}

	m = settle(t, m)
	if got := m.sw.Nav().Active(); got != want {
		t.Fatalf("active = %d, want %d", got, want)
	}
	if got := m.surface.YOffset; got != want*m.slideHeight() {
		t.Fatalf("surface offset = %d, want %d", got, want*m.slideHeight())
	}
	if got := m.sw.Bookmark(); got != "#northwind/validation" {
		t.Fatalf("Bookmark() = %q", got)
	}
}

func TestSlideNavigatorDigitJumps(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = openNavigator(t, m)

	m, cmd := press(t, m, "5")
	if m.modal != nil || cmd == nil {
		t.Fatal("digit should close the navigator and emit a selection")
	}
	m = settle(t, update(t, m, cmd()))
	if got := m.sw.Nav().Active(); got != 4 {
		t.Fatalf("active = %d, want 4", got)
	}
}

func TestSlideNavigatorIgnoresDigitPastEnd(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, deckSelectedMsg{id: "harbor"})
	m, _ = openNavigator(t, m)

	m, cmd := press(t, m, "9")
	if m.modal == nil || cmd != nil {
		t.Fatal("digit past the last slide should be ignored")
	}
}

func TestSlideNavigatorStartsOnScrollTarget(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "j")

	m, n := openNavigator(t, m)
	if n.cursor != 2 {
		t.Fatalf("cursor = %d, want the in-flight target 2", n.cursor)
	}
	if n.active != 0 {
		t.Fatalf("active marker = %d, want the slide on screen 0", n.active)
	}

	view := m.View()
	if !strings.Contains(view, "validation") || !strings.Contains(view, "Slides") {
		t.Fatalf("navigator view lacks the slide list:\n%s", view)
	}

	m, _ = press(t, m, "esc")
	if m.modal != nil {
		t.Fatal("esc did not close the navigator")
	}
}

func TestMouseIgnoredWhileNavigatorOpen(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = openNavigator(t, m)

	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := m.surface.YOffset; got != 0 {
		t.Fatalf("wheel scrolled the slides under the navigator to %d", got)
	}
}
