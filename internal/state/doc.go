// Package state holds the export status shared between the export
// goroutine and the UI.
//
// # Overview
//
// Export runs off the Bubble Tea event loop. It reports each captured page
// to a Store; the UI reads a Snapshot on every tick and draws the progress
// line from it. The Store is the only value both sides touch.
//
//	Export goroutine:            UI:
//	store.Start(deck, pages)     tick
//	store.Progress(page, pages)    -> store.Snapshot()
//	store.Finish(path, err)        -> status line
//
// # Semantics
//
//   - Start refuses a second export while one is running.
//   - Progress only moves the page counter.
//   - Finish with an error keeps the partial page count and records the
//     error; success clears it and stores the written path.
//
// Snapshots are copies; the error is wrapped again so callers never share
// the stored instance. The zero Store is ready to use.
package state
