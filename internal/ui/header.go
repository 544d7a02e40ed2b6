package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pitch/internal/deck"
	"github.com/five82/pitch/internal/render"
)

// renderHeader renders the status bar: deck, slide position and notices.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	d := m.sw.Active()
	nav := m.sw.Nav()

	parts := []string{
		bg.Render("pitch", styles.Logo),
		bg.Render(truncate(d.Title, 40), styles.Text.Bold(true)),
	}

	pos := strconv.Itoa(nav.Active()+1) + "/" + strconv.Itoa(d.Len())
	if s, ok := m.activeSlide(); ok {
		pos += " " + s.Key
	}
	parts = append(parts, bg.Render(pos, styles.MutedText))

	if id, ok := m.sw.NotFound(); ok {
		parts = append(parts, bg.Render("Deck \""+truncate(id, 30)+"\" not found", styles.DangerText))
	}

	if m.exporting {
		parts = append(parts, bg.Render(m.exportLabel(), styles.WarningText))
	} else if text, danger := m.activeNotice(); text != "" {
		style := styles.SuccessText
		if danger {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(truncate(text, 60), style))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderCommandBar renders key hints for the slide on screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{{"j/k", "Move"}, {"s", "Slides"}}

	if s, ok := m.activeSlide(); ok {
		if s.Template.Normalize() == deck.TemplateCritique {
			commands = append(commands, cmd{"1/2/3", "Columns"})
		}
		if len(s.Details) > 0 {
			commands = append(commands, cmd{"d", "Details"})
		}
		if ov, ok := m.renderer.Overlay(m.sw.Active().ID, s); ok {
			switch ov.Kind {
			case render.OverlayPanel:
				commands = append(commands, cmd{"p", "Panel"})
			case render.OverlayModal:
				commands = append(commands, cmd{"o", "Open"})
			case render.OverlayTabs:
				commands = append(commands, cmd{"tab", "Tabs"})
			}
		}
	}

	commands = append(commands,
		cmd{"D", "Decks"},
		cmd{"x", "Export"},
		cmd{"y", "Link"},
		cmd{"?", "More"},
	)

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
