package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face7x13 metrics; text sizes are integer magnifications of it.
const (
	glyphWidth  = 7
	glyphHeight = 13
	glyphAscent = 11
)

var face font.Face = basicfont.Face7x13

func textWidth(s string, size int) int {
	return font.MeasureString(face, s).Ceil() * size
}

func lineHeight(size int) int {
	return (glyphHeight + 3) * size
}

// text draws s with its top-left corner at logical (x, y). Glyphs are drawn
// once at native size then enlarged by size times the oversampling factor,
// which keeps the bitmap font crisp at any scale.
func (p *painter) text(x, y int, s string, c color.Color, size int) {
	if s == "" || size < 1 {
		return
	}
	w := font.MeasureString(face, s).Ceil()
	if w <= 0 {
		return
	}
	glyphs := image.NewRGBA(image.Rect(0, 0, w, glyphHeight))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, glyphAscent),
	}
	d.DrawString(s)

	dst := p.rect(x, y, x+w*size, y+glyphHeight*size)
	draw.NearestNeighbor.Scale(p.img, dst, glyphs, glyphs.Bounds(), draw.Over, nil)
}
