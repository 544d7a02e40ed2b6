// Package app is the composition root of pitch.
//
// # Overview
//
// Load reads the configuration and builds the components shared by the
// presenter and the command line: logger, deck registry, slide renderer,
// image loader and rasteriser. Run adds the deck switcher, the export
// status store and the background exporter, then hands control to the
// TUI until the user quits or the context is cancelled.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read ~/.config/pitch/config.toml
//	       ├─────> logging.New()      JSON log file (rotated)
//	       ├─────> registry.Load()    Built-in and user decks
//	       ├─────> switcher.Restore() Open the deep link or saved location
//	       ├─────> state.Store{}      Export status shared with the UI
//	       └─────> ui.Run()           Start TUI (blocks)
//
//	Background export:
//	┌─────────────────────────────────────────┐
//	│ Exporter.Start() goroutine              │
//	│  ├─> store.Start()                      │
//	│  ├─> Pipeline.Export()                  │
//	│  │    └─> OnPage -> store.Progress()    │
//	│  ├─> export.Write()  (atomic)           │
//	│  └─> store.Finish()                     │
//	│      └─> UI polls store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// Only one export runs at a time. The exporter works on a copy of the
// presentation's UI state, so slides on screen never change under it.
//
// # Error Handling
//
// Fatal errors (returned from Load and Run):
//   - Malformed configuration file
//   - Log directory cannot be created
//   - No valid deck could be loaded
//
// Everything else degrades: unreadable preferences fall back to defaults,
// missing images become placeholders, and export failures are reported in
// the status line without stopping the presenter.
package app
