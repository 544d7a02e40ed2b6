package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pitch/internal/logtail"
)

const logTailLimit = 500

// Level filters, cycled with "f".
var logLevels = []string{"", "WARN", "ERROR"}

// logViewer shows the tail of the pitch log file.
type logViewer struct {
	path    string
	entries []logtail.Entry
	err     error
	level   int
	follow  bool
	view    viewport.Model
}

var (
	logRefreshKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reload"))
	logFilterKey  = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "Level"))
	logFollowKey  = key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "Follow"))
)

func newLogViewer(path string) *logViewer {
	v := &logViewer{path: path, follow: true, view: viewport.New(0, 0)}
	v.reload()
	return v
}

func (v *logViewer) reload() {
	v.entries, v.err = logtail.Tail(v.path, logTailLimit)
}

// visible returns the entries passing the level filter.
func (v *logViewer) visible() []logtail.Entry {
	want := logLevels[v.level]
	if want == "" {
		return v.entries
	}
	var out []logtail.Entry
	for _, e := range v.entries {
		if levelRank(e.Level) >= levelRank(want) {
			out = append(out, e)
		}
	}
	return out
}

func levelRank(level string) int {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return 0
	case "INFO":
		return 1
	case "WARN":
		return 2
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return 3
	}
	return 1
}

func (v *logViewer) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil, false
	}
	switch {
	case key.Matches(km, keys.Escape), key.Matches(km, keys.Logs), key.Matches(km, keys.Quit):
		return v, nil, true
	case key.Matches(km, logRefreshKey):
		v.reload()
	case key.Matches(km, logFilterKey):
		v.level = (v.level + 1) % len(logLevels)
	case key.Matches(km, logFollowKey):
		v.follow = !v.follow
	default:
		v.follow = false
		var cmd tea.Cmd
		v.view, cmd = v.view.Update(km)
		return v, cmd, false
	}
	return v, nil, false
}

func (v *logViewer) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	boxWidth := maxInt(width-8, 20)
	v.view.Width = boxWidth - 4
	v.view.Height = maxInt(height-10, 3)

	v.view.SetContent(v.renderEntries(theme))
	if v.follow {
		v.view.GotoBottom()
	}

	title := "Log"
	if want := logLevels[v.level]; want != "" {
		title += " (" + want + "+)"
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(truncate(v.path, boxWidth-len(title)-8)))
	b.WriteString("\n\n")
	b.WriteString(v.view.View())
	b.WriteString("\n\n")

	follow := "off"
	if v.follow {
		follow = "on"
	}
	status := fmt.Sprintf("%d lines  auto-tail %s", len(v.visible()), follow)
	b.WriteString(styles.FaintText.Render(status + "  •  r: Reload  •  f: Level  •  F: Follow  •  Esc: Close"))

	return placeModal(theme, b.String(), boxWidth, width, height)
}

func (v *logViewer) renderEntries(theme Theme) string {
	styles := theme.Styles()
	if v.err != nil {
		return styles.DangerText.Render(v.err.Error())
	}
	entries := v.visible()
	if len(entries) == 0 {
		return styles.FaintText.Render("No log entries")
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = logLineStyle(styles, e.Level).Render(truncate(e.String(), v.view.Width))
	}
	return strings.Join(lines, "\n")
}

func logLineStyle(styles Styles, level string) lipgloss.Style {
	switch levelRank(level) {
	case 0:
		return styles.FaintText
	case 2:
		return styles.WarningText
	case 3:
		return styles.DangerText
	}
	return styles.Text
}
