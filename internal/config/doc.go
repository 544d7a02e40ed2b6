// Package config loads pitch's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pitch/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/pitch/config.toml
//   - Deck directory: ~/.config/pitch/decks (extra *.toml decks, optional)
//   - Asset directory: ~/.local/share/pitch/assets (slide images)
//   - Export directory: current working directory
//   - Log file: ~/.local/state/pitch/pitch.log
//   - Export scale: 2 (capped at 4)
//   - Settle delay: 300ms; image timeout: 5s
//
// # TOML Format
//
//	deck_dir = "~/pitch/decks"
//	asset_dir = "~/pitch/assets"
//	export_dir = "~/Documents"
//	default_deck = "northwind"
//	log_file = "~/.local/state/pitch/pitch.log"
//	scale = 2
//	settle_delay_ms = 300
//	image_timeout_ms = 5000
//
// Every field is optional. Tilde expansion is performed for all paths.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
