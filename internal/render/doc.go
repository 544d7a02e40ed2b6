// Package render turns slides into Frames.
//
// A slide's template selects a strategy: title (header, headline and
// footer bands), critique (three collapsible feedback columns) or research
// (a fixed four-node flow for the research-flow slide, numbered steps for
// the rest). premium-default, absent and unknown templates fall back to the
// title strategy without error.
//
// Special elements are looked up by (deck id, slide key) in an Overlays
// table and layered on top of the base frame. UIState holds every toggle,
// keyed by (slide key, section), so its lifetime is explicit: the caller
// creates it per presentation session and resets it on deck switch.
package render
