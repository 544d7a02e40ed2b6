package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	xdraw "golang.org/x/image/draw"

	"github.com/five82/pitch/internal/assets"
	"github.com/five82/pitch/internal/render"
)

// Logical canvas size; the output is this times the oversampling factor.
const (
	CanvasWidth  = 1280
	CanvasHeight = 720

	margin = 64
)

// ErrInvalidScale is returned for oversampling factors below 1.
var ErrInvalidScale = errors.New("invalid raster scale")

var (
	colorBackground = color.RGBA{R: 0x13, G: 0x1a, B: 0x24, A: 0xff}
	colorScrim      = color.RGBA{A: 0x99}
	colorText       = color.RGBA{R: 0xcd, G: 0xce, B: 0xcf, A: 0xff}
	colorMuted      = color.RGBA{R: 0x73, G: 0x80, B: 0x91, A: 0xff}
	colorAccent     = color.RGBA{R: 0x71, G: 0x9c, B: 0xd6, A: 0xff}
	colorWarning    = color.RGBA{R: 0xdb, G: 0xc0, B: 0x74, A: 0xff}
	colorSurface    = color.RGBA{R: 0x21, G: 0x2e, B: 0x3f, A: 0xff}
	colorBorder     = color.RGBA{R: 0x39, G: 0x50, B: 0x6d, A: 0xff}
	colorPlacehold  = color.RGBA{R: 0x2b, G: 0x3b, B: 0x51, A: 0xff}
)

// Rasterizer paints frames into bitmaps.
type Rasterizer struct {
	Scale int
}

// New returns a rasterizer with the given oversampling factor.
func New(scale int) *Rasterizer {
	return &Rasterizer{Scale: scale}
}

// Rasterize paints f at the configured scale. images holds the load results
// for f.Images(); a missing or failed entry is drawn as a placeholder box.
func (r *Rasterizer) Rasterize(f render.Frame, images map[string]assets.Result) (image.Image, error) {
	if r.Scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, r.Scale)
	}
	p := newPainter(r.Scale)
	p.background(f.Background, images)

	switch f.Layout {
	case render.LayoutCritique:
		p.critique(f)
	case render.LayoutResearchFlow:
		p.flow(f)
	case render.LayoutResearchSteps:
		p.steps(f)
	default:
		p.title(f)
	}

	p.auxiliary(f)
	if f.Overlay != nil {
		p.overlay(*f.Overlay, images)
	}
	return p.img, nil
}

type painter struct {
	img   *image.RGBA
	scale int
}

func newPainter(scale int) *painter {
	return &painter{
		img:   image.NewRGBA(image.Rect(0, 0, CanvasWidth*scale, CanvasHeight*scale)),
		scale: scale,
	}
}

// rect converts logical coordinates to output pixels.
func (p *painter) rect(x0, y0, x1, y1 int) image.Rectangle {
	s := p.scale
	return image.Rect(x0*s, y0*s, x1*s, y1*s)
}

func (p *painter) fill(r image.Rectangle, c color.Color) {
	xdraw.Draw(p.img, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}

func (p *painter) box(x0, y0, x1, y1 int, bg, border color.Color) {
	p.fill(p.rect(x0, y0, x1, y1), border)
	p.fill(p.rect(x0+2, y0+2, x1-2, y1-2), bg)
}

func (p *painter) background(path string, images map[string]assets.Result) {
	p.fill(p.img.Bounds(), colorBackground)
	if path == "" {
		return
	}
	res, ok := images[path]
	if !ok || !res.OK() {
		p.placeholder(0, 0, CanvasWidth, CanvasHeight, path)
		return
	}
	xdraw.ApproxBiLinear.Scale(p.img, p.img.Bounds(), res.Image, res.Image.Bounds(), xdraw.Src, nil)
	p.fill(p.img.Bounds(), colorScrim)
}

func (p *painter) placeholder(x0, y0, x1, y1 int, path string) {
	p.box(x0, y0, x1, y1, colorPlacehold, colorBorder)
	label := "image unavailable"
	if path != "" {
		label += ": " + path
	}
	p.text(x0+16, y1-32, label, colorMuted, 1)
}

func (p *painter) title(f render.Frame) {
	if f.Header != "" {
		p.text(margin, 48, f.Header, colorAccent, 2)
	}

	y := 240
	if f.Headline != "" {
		y = p.centered(y, f.Headline, colorText, 5)
	}
	if f.Subtitle != "" {
		y = p.centered(y+16, f.Subtitle, colorMuted, 3)
	}
	if len(f.Bullets) > 0 {
		y += 24
		for _, b := range f.Bullets {
			y = p.paragraph(margin*2, y, CanvasWidth-margin*4, "- "+b, colorText, 2) + 8
		}
	}
	if f.Footer != "" {
		p.text(margin, CanvasHeight-56, f.Footer, colorMuted, 2)
	}
}

func (p *painter) critique(f render.Frame) {
	if f.Header != "" {
		p.text(margin, 48, f.Header, colorAccent, 3)
	}
	const gap = 32
	top, bottom := 140, CanvasHeight-120
	width := (CanvasWidth - 2*margin - 2*gap) / 3
	for i, col := range f.Columns {
		x := margin + i*(width+gap)
		p.box(x, top, x+width, bottom, colorSurface, colorBorder)
		p.text(x+16, top+16, col.Title, colorWarning, 2)
		y := top + 56
		if !col.Expanded {
			p.text(x+16, y, strconv.Itoa(len(col.Items))+" items", colorMuted, 2)
			continue
		}
		for _, item := range col.Items {
			y = p.paragraph(x+16, y, width-32, "- "+item, colorText, 2) + 8
		}
	}
}

func (p *painter) flow(f render.Frame) {
	if f.Header != "" {
		p.text(margin, 48, f.Header, colorAccent, 3)
	}
	n := len(f.Flow)
	if n == 0 {
		return
	}
	const arrow = 48
	width := (CanvasWidth - 2*margin - (n-1)*arrow) / n
	top, bottom := 300, 420
	for i, node := range f.Flow {
		x := margin + i*(width+arrow)
		p.box(x, top, x+width, bottom, colorSurface, colorAccent)
		p.paragraph(x+12, top+40, width-24, node, colorText, 2)
		if i < n-1 {
			mid := (top + bottom) / 2
			p.fill(p.rect(x+width+8, mid-2, x+width+arrow-8, mid+2), colorAccent)
			p.fill(p.rect(x+width+arrow-16, mid-8, x+width+arrow-8, mid+8), colorAccent)
		}
	}
}

func (p *painter) steps(f render.Frame) {
	if f.Header != "" {
		p.text(margin, 48, f.Header, colorAccent, 3)
	}
	n := len(f.Steps)
	if n == 0 {
		return
	}
	top := 130
	avail := CanvasHeight - top - 100
	const arrow = 24
	height := (avail - (n-1)*arrow) / n
	if height > 96 {
		height = 96
	}
	x0, x1 := margin*2, CanvasWidth-margin*2
	y := top
	for i, step := range f.Steps {
		p.box(x0, y, x1, y+height, colorSurface, colorBorder)
		label := strconv.Itoa(i+1) + ". " + step.Title
		p.text(x0+16, y+12, label, colorWarning, 2)
		if step.Detail != "" && height >= 56 {
			p.text(x0+16, y+12+32, step.Detail, colorText, 1)
		}
		y += height
		if i < n-1 {
			mid := (x0 + x1) / 2
			p.fill(p.rect(mid-2, y+4, mid+2, y+arrow-4), colorAccent)
			y += arrow
		}
	}
}

// auxiliary draws subtext and expanded details near the bottom edge.
func (p *painter) auxiliary(f render.Frame) {
	lines := append([]string{}, f.Details...)
	lines = append(lines, f.Subtext...)
	if len(lines) == 0 {
		return
	}
	y := CanvasHeight - 96 - (len(lines)-1)*18
	for _, line := range lines {
		p.text(margin, y, line, colorMuted, 1)
		y += 18
	}
}

func (p *painter) overlay(ov render.Overlay, images map[string]assets.Result) {
	switch ov.Kind {
	case render.OverlayPanel:
		if !ov.Open {
			return
		}
		x0, x1 := CanvasWidth-margin-420, CanvasWidth-margin
		p.box(x0, 120, x1, 560, colorSurface, colorAccent)
		p.text(x0+16, 136, ov.Title, colorWarning, 2)
		y := 180
		for _, line := range ov.Body {
			y = p.paragraph(x0+16, y, x1-x0-32, line, colorText, 1) + 8
		}
	case render.OverlayTabs:
		if len(ov.Tabs) == 0 {
			return
		}
		x := margin
		y := CanvasHeight - 200
		for i, tab := range ov.Tabs {
			c := colorMuted
			if i == ov.ActiveTab {
				c = colorAccent
			}
			p.text(x, y, "["+tab.Name+"]", c, 2)
			x += (len(tab.Name)+3)*14 + 16
		}
		y += 36
		for _, line := range ov.Tabs[ov.ActiveTab].Body {
			p.text(margin, y, line, colorText, 1)
			y += 18
		}
	case render.OverlayModal:
		if !ov.Open {
			return
		}
		p.fill(p.img.Bounds(), colorScrim)
		x0, y0, x1, y1 := 200, 100, CanvasWidth-200, CanvasHeight-100
		p.box(x0, y0, x1, y1, colorSurface, colorAccent)
		p.text(x0+24, y0+24, ov.Title, colorWarning, 3)
		y := y0 + 80
		for _, line := range ov.Body {
			y = p.paragraph(x0+24, y, (x1-x0)/2-32, line, colorText, 2) + 8
		}
		if ov.Image != "" {
			ix0, iy0, ix1, iy1 := (x0+x1)/2, y0+80, x1-24, y1-24
			res, ok := images[ov.Image]
			if !ok || !res.OK() {
				p.placeholder(ix0, iy0, ix1, iy1, ov.Image)
				return
			}
			xdraw.ApproxBiLinear.Scale(p.img, p.rect(ix0, iy0, ix1, iy1), res.Image, res.Image.Bounds(), xdraw.Over, nil)
		}
	}
}

// centered draws wrapped text centered horizontally and returns the y
// below the last line.
func (p *painter) centered(y int, s string, c color.Color, size int) int {
	width := CanvasWidth - 2*margin
	for _, line := range wrap(s, width, size) {
		w := textWidth(line, size)
		p.text((CanvasWidth-w)/2, y, line, c, size)
		y += lineHeight(size)
	}
	return y
}

// paragraph draws wrapped, left-aligned text and returns the y below it.
func (p *painter) paragraph(x, y, width int, s string, c color.Color, size int) int {
	for _, line := range wrap(s, width, size) {
		p.text(x, y, line, c, size)
		y += lineHeight(size)
	}
	return y
}

func wrap(s string, width, size int) []string {
	cols := width / (glyphWidth * size)
	if cols < 1 {
		cols = 1
	}
	return strings.Split(wordwrap.String(s, cols), "\n")
}
