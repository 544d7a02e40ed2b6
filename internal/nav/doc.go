// Package nav tracks which slide is active on a vertically scrolling
// presentation surface where every slide is exactly one viewport tall.
//
// Three input channels feed the Controller:
//
//   - Scroll: OnScroll(offset) is a pure read of the position. The active
//     index is round(offset / height), clamped to the deck.
//   - Keyboard: Advance and Retreat request index+1 and index-1.
//   - Selection: Select(i) requests slide i directly.
//
// Keyboard and selection never change the active index themselves. They
// return a ScrollRequest and start a smooth scroll; Step advances it one
// frame at a time through OnScroll, so the active index transiently passes
// through intermediate slides and lands on the target once the animation
// settles. Out-of-range requests are clamped, never rejected.
//
// While a smooth scroll is in flight, new keyboard requests are relative to
// the pending target and replace it (latest wins). Pressing "next" twice in
// quick succession from slide 0 therefore ends on slide 2.
package nav
