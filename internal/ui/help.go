package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay from the key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{title: "Navigation", group: 0},
		{title: "Scrolling", group: 1},
		{title: "Slide", group: 2},
		{title: "Overlays", group: 3},
		{title: "Decks", group: 4},
		{title: "General", group: 5},
	}
	groups := m.keys.FullHelp()

	var b strings.Builder
	if m.logo != "" {
		b.WriteString(m.logo)
		b.WriteString("\n\n")
	}
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, binding := range groups[section.group] {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return placeModal(m.theme, b.String(), 40, m.width, m.height)
}

type helpSection struct {
	title string
	group int
}
