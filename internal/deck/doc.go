// Package deck defines the typed description of a pitch deck: its
// metadata, its background image mapping keyed by category, and its ordered
// slides.
//
// Decks are decoded from TOML once at startup and treated as immutable.
// Slide order is the declaration order and is never re-sorted; slide keys
// are unique within a deck because navigation labels, special elements and
// per-slide UI state are all keyed by them.
//
// A slide's Template selects one of the rendering strategies in package
// render. An empty template means "title"; unknown names are kept verbatim
// so the renderer can fall back without losing what the author wrote.
package deck
