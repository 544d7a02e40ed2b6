// Package ui provides the terminal presenter for pitch.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model is a value type; Update handles a
// message and returns the next model plus a command, and View renders the
// whole screen as a string. lipgloss does the styling and bubbles supplies
// the viewport, key bindings, spinner and text input.
//
// # Package Structure
//
//   - app.go: Model, Update loop, scroll surface and Run
//   - slide.go: paints one render.Frame into a block exactly one surface tall
//   - header.go: status line and context-dependent command bar
//   - picker.go: deck picker modal, with glamour-rendered descriptions
//   - navigator.go: slide navigator modal for jumping to a slide by key
//   - logs.go: log viewer modal over the tail of the pitch log file
//   - export.go: starting a background export and polling its status
//   - help.go, logo.go: keyboard help overlay
//   - keys.go: key bindings
//   - theme.go, style_helpers.go: palettes and background-aware rendering
//   - layout.go: layout and timing constants
//
// # Scroll Surface
//
// Every slide of the active deck is painted into one viewport, each block
// exactly the surface height, so slide i starts at offset i*height. The
// navigation controller owns the scroll offset. Keyboard navigation asks
// the controller for a target and a frame ticker eases the viewport toward
// it; wheel and page keys scroll the viewport directly and the controller
// recomputes the active slide from the new offset. Each frame loop has a
// generation, and ticks from a loop that was stopped are dropped.
//
// # Slide State
//
// Column, detail, panel, modal and tab toggles live in the switcher's
// render.UIState, keyed by slide. They only apply while their slide is on
// screen and are cleared when the deck changes.
//
// # Export
//
// Pressing "x" hands the active deck and a copy of the UI state to the
// Exporter, which runs in the background and reports into a state.Store.
// The model polls the store every StatusInterval while an export runs and
// shows progress in the header.
package ui
