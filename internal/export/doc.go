// Package export turns a deck into a multi-page PDF.
//
// Slides are captured strictly in order. For each slide, collapsed
// sections are forced open, images are awaited, a settle delay passes, and
// the frame is rasterised onto one landscape page. Slides that own a modal
// get a second page with the modal open. Forced state is restored before
// the next slide. A failure anywhere aborts the whole export.
package export
