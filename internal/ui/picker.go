package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/five82/pitch/internal/deck"
	"github.com/five82/pitch/internal/switcher"
)

const pickerWidth = 64

// deckSelectedMsg asks the model to switch to a deck id, known or not, and
// optionally to one of its slides.
type deckSelectedMsg struct {
	id       string
	slideKey string
}

// deckPicker lists the registered decks. "/" switches to free text so a
// deck id or a deep link such as "#northwind/market" can be typed.
type deckPicker struct {
	decks    []deck.Deck
	cursor   int
	about    []string // rendered descriptions, parallel to decks
	typing   bool
	input    textinput.Model
	activeID string
}

func newDeckPicker(decks []deck.Deck, activeID string) *deckPicker {
	ti := textinput.New()
	ti.Placeholder = "deck or deck/slide"
	ti.CharLimit = 128
	ti.Prompt = "#"

	p := &deckPicker{
		decks:    decks,
		about:    describeDecks(decks, pickerWidth-6),
		input:    ti,
		activeID: activeID,
	}
	for i, d := range decks {
		if d.ID == activeID {
			p.cursor = i
		}
	}
	return p
}

// describeDecks renders each deck description as markdown. A description
// glamour cannot render is shown as plain text.
func describeDecks(decks []deck.Deck, width int) []string {
	out := make([]string, len(decks))
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	for i, d := range decks {
		if strings.TrimSpace(d.Description) == "" {
			continue
		}
		if err != nil {
			out[i] = d.Description
			continue
		}
		rendered, rerr := r.Render(d.Description)
		if rerr != nil {
			out[i] = d.Description
			continue
		}
		out[i] = strings.Trim(rendered, "\n")
	}
	return out
}

func (p *deckPicker) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil, false
	}

	if p.typing {
		switch {
		case key.Matches(km, keys.Escape):
			p.typing = false
			p.input.Blur()
			p.input.SetValue("")
			return p, nil, false
		case key.Matches(km, keys.Confirm):
			text := strings.TrimSpace(p.input.Value())
			if text == "" {
				return p, nil, false
			}
			link := switcher.ParseLocation(text)
			if link.DeckID == "" {
				return p, selectDeckCmd(text, ""), true
			}
			return p, selectDeckCmd(link.DeckID, link.SlideKey), true
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(km)
		return p, cmd, false
	}

	switch {
	case key.Matches(km, keys.Escape), key.Matches(km, keys.Decks), key.Matches(km, keys.Quit):
		return p, nil, true
	case key.Matches(km, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(km, keys.Down):
		if p.cursor < len(p.decks)-1 {
			p.cursor++
		}
	case key.Matches(km, keys.Search):
		p.typing = true
		return p, p.input.Focus(), false
	case key.Matches(km, keys.Confirm):
		if len(p.decks) == 0 {
			return p, nil, true
		}
		return p, selectDeckCmd(p.decks[p.cursor].ID, ""), true
	}
	return p, nil, false
}

func (p *deckPicker) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Decks"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, d := range p.decks {
		marker := "  "
		if d.ID == p.activeID {
			marker = "● "
		}
		line := marker + d.Title + "  " + "#" + d.ID
		if i == p.cursor {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	if len(p.decks) > 0 && p.about[p.cursor] != "" {
		b.WriteString("\n")
		b.WriteString(p.about[p.cursor])
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if p.typing {
		b.WriteString(p.input.View())
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("Enter: Open  •  Esc: Back"))
	} else {
		b.WriteString(styles.FaintText.Render("j/k: Move  •  Enter: Open  •  /: Type link  •  Esc: Close"))
	}

	return placeModal(theme, b.String(), pickerWidth, width, height)
}

func selectDeckCmd(id, slideKey string) tea.Cmd {
	return func() tea.Msg {
		return deckSelectedMsg{id: id, slideKey: slideKey}
	}
}
