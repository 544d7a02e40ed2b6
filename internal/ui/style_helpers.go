package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle paints bar segments on one background color. Each word is styled
// on its own and the gaps between words get the background too, since a
// styled run ends with an ANSI reset that would otherwise expose the
// terminal default.
type BgStyle struct {
	base lipgloss.Style
	gap  string
}

// NewBgStyle creates a background helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	base := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	return BgStyle{base: base, gap: base.Render(" ")}
}

// Render draws text in style on the bar background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	on := style.Background(b.base.GetBackground())

	var out strings.Builder
	for i, word := range strings.Split(text, " ") {
		if i > 0 {
			out.WriteString(b.gap)
		}
		if word != "" {
			out.WriteString(on.Render(word))
		}
	}
	return out.String()
}

// Spaces returns n background-colored spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.base.Render(strings.Repeat(" ", n))
}

// Sep returns sep on the bar background.
func (b BgStyle) Sep(sep string) string {
	return b.base.Render(sep)
}

// Join joins parts with a background-colored separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}
