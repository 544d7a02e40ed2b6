// Package switcher selects the active deck and encodes it as a deep link.
//
// A deep link is a fragment, "#<deck>" or "#<deck>/<slide>". Restore never
// fails: unknown or malformed links show the default deck. Select reports
// ErrDeckNotFound for unknown ids and leaves the active deck, navigation
// and UI state exactly as they were.
package switcher
