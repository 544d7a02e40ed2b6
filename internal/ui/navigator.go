package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pitch/internal/deck"
)

// slideSelectedMsg asks the model to scroll to a slide of the active deck.
type slideSelectedMsg struct {
	index int
}

// slideNavigator lists the slides of the active deck by key. Enter scrolls
// to the highlighted slide; digits 1-9 pick a slide by position.
type slideNavigator struct {
	title  string
	slides []deck.Slide
	cursor int
	active int
}

// newSlideNavigator marks the slide on screen and starts the cursor on
// cursor, which is the target of a scroll still in flight.
func newSlideNavigator(d deck.Deck, active, cursor int) *slideNavigator {
	n := &slideNavigator{title: d.Title, slides: d.Slides, active: active}
	if cursor >= 0 && cursor < len(d.Slides) {
		n.cursor = cursor
	}
	return n
}

func (n *slideNavigator) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return n, nil, false
	}
	if i, ok := slideDigit(km, len(n.slides)); ok {
		return n, selectSlideCmd(i), true
	}

	switch {
	case key.Matches(km, keys.Escape), key.Matches(km, keys.Slides), key.Matches(km, keys.Quit):
		return n, nil, true
	case key.Matches(km, keys.Up):
		if n.cursor > 0 {
			n.cursor--
		}
	case key.Matches(km, keys.Down):
		if n.cursor < len(n.slides)-1 {
			n.cursor++
		}
	case key.Matches(km, keys.First):
		n.cursor = 0
	case key.Matches(km, keys.Last):
		n.cursor = maxInt(len(n.slides)-1, 0)
	case key.Matches(km, keys.Confirm):
		if len(n.slides) == 0 {
			return n, nil, true
		}
		return n, selectSlideCmd(n.cursor), true
	}
	return n, nil, false
}

// slideDigit maps a single digit key to a zero-based slide index.
func slideDigit(km tea.KeyMsg, count int) (int, bool) {
	if km.Type != tea.KeyRunes || len(km.Runes) != 1 {
		return 0, false
	}
	r := km.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	i := int(r - '1')
	return i, i < count
}

func (n *slideNavigator) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Slides"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(truncate(n.title, pickerWidth-16)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	rows := maxInt(height-12, 3)
	start := 0
	if n.cursor >= rows {
		start = n.cursor - rows + 1
	}
	end := start + rows
	if end > len(n.slides) {
		end = len(n.slides)
	}

	keyWidth := 0
	for _, s := range n.slides {
		keyWidth = maxInt(keyWidth, len(s.Key))
	}

	for i := start; i < end; i++ {
		s := n.slides[i]
		marker := "  "
		if i == n.active {
			marker = "● "
		}
		line := fmt.Sprintf("%s%2d  %-*s  %s", marker, i+1, keyWidth, s.Key,
			truncate(slideLabel(s), pickerWidth-keyWidth-14))
		if i == n.cursor {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("j/k: Move  •  Enter: Go  •  1-9: Jump  •  Esc: Close"))

	return placeModal(theme, b.String(), pickerWidth, width, height)
}

// slideLabel is the most descriptive heading a slide has.
func slideLabel(s deck.Slide) string {
	switch {
	case s.Headline != "":
		return s.Headline
	case s.Header != "":
		return s.Header
	}
	return s.Category
}

func selectSlideCmd(i int) tea.Cmd {
	return func() tea.Msg {
		return slideSelectedMsg{index: i}
	}
}
