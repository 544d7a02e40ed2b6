package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pitch/internal/render"
)

// columnKeys are the toggle keys shown on critique column titles.
var columnKeys = []string{"1", "2", "3"}

// paintSlide draws one frame into a block of exactly height lines. index and
// total only feed the page counter; the frame itself carries everything else.
func paintSlide(theme Theme, f render.Frame, index, total, width, height int) string {
	styles := theme.Styles()
	inner := maxInt(width-2*SlidePadding, 10)

	if f.ModalOpen() {
		return fitLines(paintModal(theme, *f.Overlay, width, height), height)
	}

	var sections []string
	sections = append(sections, paintTopLine(styles, f, index, total, inner))

	var body string
	switch f.Layout {
	case render.LayoutCritique:
		body = paintCritique(styles, f, inner)
	case render.LayoutResearchFlow:
		body = paintFlow(styles, f, inner)
	case render.LayoutResearchSteps:
		body = paintSteps(styles, f, inner)
	default:
		body = paintTitle(styles, f, inner)
	}

	if ov := f.Overlay; ov != nil && ov.Kind == render.OverlayPanel && ov.Open {
		panel := paintPanel(styles, *ov)
		bodyWidth := maxInt(inner-lipgloss.Width(panel)-2, 10)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(bodyWidth).Render(body),
			"  ",
			panel,
		)
	}
	sections = append(sections, "", body)

	if ov := f.Overlay; ov != nil && ov.Kind == render.OverlayTabs {
		sections = append(sections, "", paintTabs(styles, *ov))
	}
	if aux := paintAuxiliary(styles, f); aux != "" {
		sections = append(sections, "", aux)
	}
	if f.Footer != "" {
		sections = append(sections, "", styles.MutedText.Render(f.Footer))
	}

	content := lipgloss.NewStyle().
		Padding(1, SlidePadding).
		Render(strings.Join(sections, "\n"))
	return fitLines(content, height)
}

func paintTopLine(styles Styles, f render.Frame, index, total, width int) string {
	left := styles.AccentText.Bold(true).Render(f.Header)

	var right []string
	if f.Background != "" {
		right = append(right, styles.FaintText.Render("▣ "+f.Background))
	}
	if hint := overlayHint(f.Overlay); hint != "" {
		right = append(right, styles.WarningText.Render(hint))
	}
	right = append(right, styles.FaintText.Render(strconv.Itoa(index+1)+"/"+strconv.Itoa(total)))
	r := strings.Join(right, "  ")

	gap := maxInt(width-lipgloss.Width(left)-lipgloss.Width(r), 1)
	return left + strings.Repeat(" ", gap) + r
}

func overlayHint(ov *render.Overlay) string {
	if ov == nil {
		return ""
	}
	switch ov.Kind {
	case render.OverlayModal:
		return "o: " + ov.Label
	case render.OverlayPanel:
		return "p: " + ov.Label
	case render.OverlayTabs:
		return "tab: " + ov.Label
	}
	return ""
}

func paintTitle(styles Styles, f render.Frame, width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var lines []string
	if f.Headline != "" {
		lines = append(lines, center.Render(styles.Headline.Render(f.Headline)))
	}
	if f.Subtitle != "" {
		lines = append(lines, "", center.Render(styles.MutedText.Render(f.Subtitle)))
	}
	if len(f.Bullets) > 0 {
		lines = append(lines, "")
		for _, b := range f.Bullets {
			lines = append(lines, styles.Text.Render("  • "+b))
		}
	}
	return strings.Join(lines, "\n")
}

func paintCritique(styles Styles, f render.Frame, width int) string {
	if len(f.Columns) == 0 {
		return ""
	}
	const gap = 2
	stacked := width < LayoutCompactWidth
	colWidth := (width - gap*(len(f.Columns)-1)) / len(f.Columns)
	if stacked {
		colWidth = width
	}

	cards := make([]string, 0, len(f.Columns))
	for i, col := range f.Columns {
		keyHint := ""
		if i < len(columnKeys) {
			keyHint = styles.FaintText.Render(" [" + columnKeys[i] + "]")
		}
		lines := []string{styles.WarningText.Bold(true).Render(col.Title) + keyHint}

		card := styles.Card
		if col.Expanded {
			card = styles.OpenCard
			for _, item := range col.Items {
				lines = append(lines, styles.Text.Render("• "+item))
			}
			if len(col.Items) == 0 {
				lines = append(lines, styles.FaintText.Render("nothing noted"))
			}
		} else {
			lines = append(lines, styles.FaintText.Render("▸ "+plural(len(col.Items), "item")))
		}
		// Card width excludes the border.
		cards = append(cards, card.Width(maxInt(colWidth-2, 8)).Render(strings.Join(lines, "\n")))
	}

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	joined := make([]string, 0, 2*len(cards)-1)
	for i, c := range cards {
		if i > 0 {
			joined = append(joined, strings.Repeat(" ", gap))
		}
		joined = append(joined, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

func paintFlow(styles Styles, f render.Frame, width int) string {
	if len(f.Flow) == 0 {
		return ""
	}
	const arrow = " ──▶ "
	arrowWidth := lipgloss.Width(arrow)
	nodeWidth := (width - arrowWidth*(len(f.Flow)-1)) / len(f.Flow)

	parts := make([]string, 0, 2*len(f.Flow)-1)
	for i, node := range f.Flow {
		if i > 0 {
			parts = append(parts, "\n"+styles.AccentText.Render(arrow))
		}
		parts = append(parts, styles.Card.
			Width(maxInt(nodeWidth-2, 6)).
			Align(lipgloss.Center).
			Render(styles.Text.Render(node)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func paintSteps(styles Styles, f render.Frame, width int) string {
	var lines []string
	for i, step := range f.Steps {
		if i > 0 {
			lines = append(lines, styles.AccentText.Render("   ↓"))
		}
		title := styles.WarningText.Bold(true).Render(strconv.Itoa(i+1) + ". " + step.Title)
		if step.Detail != "" {
			title += styles.MutedText.Render("  " + truncate(step.Detail, maxInt(width-lipgloss.Width(title)-2, 10)))
		}
		lines = append(lines, title)
	}
	return strings.Join(lines, "\n")
}

func paintPanel(styles Styles, ov render.Overlay) string {
	lines := []string{styles.WarningText.Bold(true).Render(ov.Title), ""}
	for _, line := range ov.Body {
		lines = append(lines, styles.Text.Render(line))
	}
	return styles.OpenCard.Width(PanelWidth).Render(strings.Join(lines, "\n"))
}

func paintTabs(styles Styles, ov render.Overlay) string {
	if len(ov.Tabs) == 0 {
		return ""
	}
	names := make([]string, len(ov.Tabs))
	for i, tab := range ov.Tabs {
		if i == ov.ActiveTab {
			names[i] = styles.Selected.Bold(true).Render(" " + tab.Name + " ")
			continue
		}
		names[i] = styles.MutedText.Render(" " + tab.Name + " ")
	}
	lines := []string{strings.Join(names, " ")}
	for _, line := range ov.Tabs[ov.ActiveTab].Body {
		lines = append(lines, styles.Text.Render("  "+line))
	}
	return strings.Join(lines, "\n")
}

func paintAuxiliary(styles Styles, f render.Frame) string {
	var lines []string
	for _, d := range f.Details {
		lines = append(lines, styles.MutedText.Render(d))
	}
	if f.HiddenDetails > 0 {
		lines = append(lines, styles.FaintText.Render("d: show "+plural(f.HiddenDetails, "detail")))
	}
	for _, s := range f.Subtext {
		lines = append(lines, styles.FaintText.Italic(true).Render(s))
	}
	return strings.Join(lines, "\n")
}

func paintModal(theme Theme, ov render.Overlay, width, height int) string {
	styles := theme.Styles()
	lines := []string{styles.Text.Bold(true).Render(ov.Title)}
	lines = append(lines, styles.FaintText.Render(strings.Repeat("─", 30)), "")
	for _, line := range ov.Body {
		lines = append(lines, styles.Text.Render(line))
	}
	if ov.Image != "" {
		lines = append(lines, "", styles.FaintText.Render("▣ "+ov.Image))
	}
	lines = append(lines, "", styles.FaintText.Render("o/esc: close"))
	boxWidth := ModalWidth
	if boxWidth > width-4 {
		boxWidth = maxInt(width-4, 10)
	}
	return placeModal(theme, strings.Join(lines, "\n"), boxWidth, width, height)
}
