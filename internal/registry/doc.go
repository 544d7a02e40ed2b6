// Package registry holds the fixed collection of decks pitch can present.
//
// Built-in decks are embedded from decks/*.toml. Additional decks are read
// from the configured deck directory (recursively, any *.toml file) when it
// exists. Invalid files are skipped with a warning rather than failing
// startup. Once built, the registry is read-only: Lookup and Decks hand out
// deep copies.
package registry
