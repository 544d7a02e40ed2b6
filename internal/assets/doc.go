// Package assets loads slide images from the asset directory.
//
// Paths are slash-separated and relative to the asset root, as written in
// deck files. PNG, JPEG, GIF and WebP are decoded. Results are cached for
// the life of the process; failures are cached for a short while so a
// missing image does not hit the disk on every frame. Nothing here blocks
// forever: every load is bounded by a timeout and a failed image is a
// Result with Err set, for the caller to draw as a placeholder.
package assets
