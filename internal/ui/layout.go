package ui

import "time"

// Chrome rows above the slide surface: header and command bar.
const chromeRows = 2

// Slide layout limits.
const (
	// LayoutCompactWidth is the threshold below which critique columns stack.
	LayoutCompactWidth = 100

	// SlidePadding is the horizontal padding inside a slide.
	SlidePadding = 4

	// PanelWidth is the width of an open side panel.
	PanelWidth = 40

	// ModalWidth is the width of an open modal overlay.
	ModalWidth = 60
)

// Timing constants.
const (
	// FrameInterval paces smooth-scroll animation frames.
	FrameInterval = 16 * time.Millisecond

	// StatusInterval is how often the export status is polled.
	StatusInterval = 250 * time.Millisecond

	// NoticeTTL is how long a transient notice stays in the header.
	NoticeTTL = 4 * time.Second
)
