package render

import "github.com/five82/pitch/internal/deck"

// Layout identifies the structure of a rendered frame.
type Layout int

const (
	LayoutTitle Layout = iota
	LayoutCritique
	LayoutResearchFlow
	LayoutResearchSteps
)

func (l Layout) String() string {
	switch l {
	case LayoutCritique:
		return "critique"
	case LayoutResearchFlow:
		return "research-flow"
	case LayoutResearchSteps:
		return "research-steps"
	default:
		return "title"
	}
}

// Frame is the capture-ready representation of one slide. The terminal
// painter and the rasteriser both draw from it, so neither depends on the
// other's structure.
type Frame struct {
	DeckID   string
	SlideKey string
	Layout   Layout

	Background string

	Header   string
	Headline string
	Subtitle string
	Footer   string
	Bullets  []string

	Columns []Column
	Flow    []string
	Steps   []deck.Step

	Subtext []string
	// Details holds the detail lines when expanded; HiddenDetails counts
	// lines that exist but are collapsed.
	Details       []string
	HiddenDetails int

	Overlay *Overlay
}

// Column is one critique column.
type Column struct {
	Section  Section
	Title    string
	Items    []string
	Expanded bool
}

// Images lists every image the frame draws, background first.
func (f Frame) Images() []string {
	var out []string
	if f.Background != "" {
		out = append(out, f.Background)
	}
	if f.Overlay != nil && f.Overlay.Kind == OverlayModal && f.Overlay.Open && f.Overlay.Image != "" {
		out = append(out, f.Overlay.Image)
	}
	return out
}

// ModalOpen reports whether the frame shows an open modal overlay.
func (f Frame) ModalOpen() bool {
	return f.Overlay != nil && f.Overlay.Kind == OverlayModal && f.Overlay.Open
}
