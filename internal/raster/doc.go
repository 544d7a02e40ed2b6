// Package raster paints rendered frames into bitmaps for export.
//
// Frames are laid out on a 1280x720 logical canvas and drawn at an integer
// oversampling factor, so a scale of 2 yields 2560x1440 pixels. Missing
// images become labelled placeholder boxes; rasterising never fails because
// of an asset.
package raster
