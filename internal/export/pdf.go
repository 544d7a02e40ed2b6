package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/signintech/gopdf"
)

// Page size in points: 16:9 landscape, the same for every page.
const (
	PageWidth  = 960.0
	PageHeight = 540.0
)

// PDF is a Document backed by gopdf. Every page is one full-bleed image.
type PDF struct {
	pdf   gopdf.GoPdf
	pages int
}

// NewPDF starts an empty landscape document.
func NewPDF() *PDF {
	d := &PDF{}
	d.pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: PageWidth, H: PageHeight}})
	return d
}

// AddPage appends img scaled to the full page.
func (d *PDF) AddPage(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode page image: %w", err)
	}
	holder, err := gopdf.ImageHolderByBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("load page image: %w", err)
	}

	d.pdf.AddPage()
	if err := d.pdf.ImageByHolder(holder, 0, 0, &gopdf.Rect{W: PageWidth, H: PageHeight}); err != nil {
		return fmt.Errorf("place page image: %w", err)
	}
	d.pages++
	return nil
}

// Pages returns the number of pages added so far.
func (d *PDF) Pages() int {
	return d.pages
}

// Bytes encodes the document.
func (d *PDF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
