package render

import "github.com/five82/pitch/internal/deck"

// OverlayKind is the type of special element layered on a slide.
type OverlayKind int

const (
	OverlayModal OverlayKind = iota
	OverlayTabs
	OverlayPanel
)

// Overlay is an additive, deck-and-slide-specific interactive element.
type Overlay struct {
	Kind  OverlayKind
	Label string // trigger hint shown on the slide
	Title string
	Body  []string
	Image string
	Tabs  []Tab

	// Filled in from UIState at render time.
	Open      bool
	ActiveTab int
}

// Tab is one pane of a tab switcher overlay.
type Tab struct {
	Name string
	Body []string
}

// OverlayBuilder produces the static part of an overlay for a slide.
type OverlayBuilder func(s deck.Slide) Overlay

type overlayKey struct {
	deckID   string
	slideKey string
}

// Overlays maps (deck id, slide key) to an overlay builder.
type Overlays map[overlayKey]OverlayBuilder

// Register adds or replaces the builder for a slide.
func (o Overlays) Register(deckID, slideKey string, b OverlayBuilder) {
	o[overlayKey{deckID, slideKey}] = b
}

// Resolve returns the builder for a slide, if any.
func (o Overlays) Resolve(deckID, slideKey string) (OverlayBuilder, bool) {
	b, ok := o[overlayKey{deckID, slideKey}]
	return b, ok && b != nil
}

// DefaultOverlays returns the special elements of the built-in decks.
func DefaultOverlays() Overlays {
	o := Overlays{}

	o.Register("northwind", "market", func(s deck.Slide) Overlay {
		return Overlay{
			Kind:  OverlayPanel,
			Label: "Sizing method",
			Title: "How we sized the market",
			Body: []string{
				"Shipper counts from national freight registries",
				"Spend from 38 carrier invoices, median per shipper",
				"Corridors limited to lanes with >40 daily departures",
			},
		}
	})

	o.Register("northwind", "team", func(s deck.Slide) Overlay {
		return Overlay{
			Kind:  OverlayModal,
			Label: "Advisors",
			Title: "Advisors",
			Body: []string{
				"Marta Lind: former COO, a top-5 European 3PL",
				"Jonas Weber: partner at a logistics-focused fund",
			},
			Image: "northwind/advisors.png",
		}
	})

	o.Register("lumen", "product", func(s deck.Slide) Overlay {
		return Overlay{
			Kind:  OverlayTabs,
			Label: "Who uses it",
			Tabs: []Tab{
				{Name: "Patients", Body: []string{"Wear the patch for 14 days", "Check in from the app twice a day"}},
				{Name: "Nurses", Body: []string{"One triage queue across wards", "Escalate to surgeon in one tap"}},
				{Name: "Surgeons", Body: []string{"Daily recovery summary", "Complication alerts with trend charts"}},
			},
		}
	})

	o.Register("lumen", "pricing", func(s deck.Slide) Overlay {
		return Overlay{
			Kind:  OverlayModal,
			Label: "Unit economics",
			Title: "Unit economics per recovery",
			Body: []string{
				"Price: $340",
				"Patch and logistics: $61",
				"Nurse triage time: $38",
				"Contribution: $241",
			},
			Image: "lumen/unit-economics.png",
		}
	})

	return o
}
