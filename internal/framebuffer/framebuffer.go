// Package framebuffer is a CPU pixel buffer of 8-bit palette indices. It
// implements the renderer's Surface and expands to RGBA for presentation.
package framebuffer

import (
	"image"
	"image/color"

	"portalview/internal/palette"
)

// Framebuffer stores one palette index per pixel, row major.
type Framebuffer struct {
	Width, Height int
	Pix           []uint8

	color uint8
	rgba  []byte
}

// New allocates a cleared Framebuffer.
func New(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
		rgba:   make([]byte, width*height*4),
	}
}

// SetColor selects the index used by the drawing methods.
func (f *Framebuffer) SetColor(c uint8) { f.color = c }

// Color returns the current drawing index.
func (f *Framebuffer) Color() uint8 { return f.color }

// FillRect fills a w by h rectangle at x, y. Parts outside the buffer are
// dropped.
func (f *Framebuffer) FillRect(x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.Width), min(y+h, f.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for row := y0; row < y1; row++ {
		line := f.Pix[row*f.Width+x0 : row*f.Width+x1]
		for i := range line {
			line[i] = f.color
		}
	}
}

// VertLine draws length pixels downward from x, y.
func (f *Framebuffer) VertLine(x, y, length int) {
	if x < 0 || x >= f.Width {
		return
	}
	y0, y1 := max(y, 0), min(y+length, f.Height)
	for row := y0; row < y1; row++ {
		f.Pix[row*f.Width+x] = f.color
	}
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c uint8) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// FillSplit paints the upper half with top and the lower half with bottom,
// the backdrop walls are drawn over.
func (f *Framebuffer) FillSplit(top, bottom uint8) {
	half := f.Height / 2 * f.Width
	for i := range f.Pix[:half] {
		f.Pix[i] = top
	}
	for i := half; i < len(f.Pix); i++ {
		f.Pix[i] = bottom
	}
}

// Set writes c at x, y if it lies inside the buffer.
func (f *Framebuffer) Set(x, y int, c uint8) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = c
}

// At returns the index at x, y, or 0 outside the buffer.
func (f *Framebuffer) At(x, y int) uint8 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Width+x]
}

// RGBA expands the buffer into 8-bit RGBA bytes suitable for
// ebiten.Image.WritePixels. The returned slice is reused by the next call.
func (f *Framebuffer) RGBA() []byte {
	for i, c := range f.Pix {
		rgba := palette.RGBA[c]
		base := i * 4
		f.rgba[base] = rgba.R
		f.rgba[base+1] = rgba.G
		f.rgba[base+2] = rgba.B
		f.rgba[base+3] = rgba.A
	}
	return f.rgba
}

var imagePalette = func() color.Palette {
	p := make(color.Palette, len(palette.RGBA))
	for i, c := range palette.RGBA {
		p[i] = c
	}
	return p
}()

// Image returns a paletted view sharing the buffer's pixels.
func (f *Framebuffer) Image() *image.Paletted {
	return &image.Paletted{
		Pix:     f.Pix,
		Stride:  f.Width,
		Rect:    image.Rect(0, 0, f.Width, f.Height),
		Palette: imagePalette,
	}
}

// Blit copies src onto f with its top-left corner at x, y.
func (f *Framebuffer) Blit(src *Framebuffer, x, y int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+src.Width, f.Width), min(y+src.Height, f.Height)
	if x0 >= x1 {
		return
	}
	for row := y0; row < y1; row++ {
		srow := (row-y)*src.Width + (x0 - x)
		copy(f.Pix[row*f.Width+x0:row*f.Width+x1], src.Pix[srow:srow+x1-x0])
	}
}
