package palettizer

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a row-major buffer of non-premultiplied RGBA pixels,
// four bytes per pixel. Alpha 0 means fully transparent.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a transparent w×h image.
func NewImage(w, h int) *Image {
	return &Image{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

func (m *Image) validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if m.Width < 0 || m.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidImage, m.Width, m.Height)
	}
	if len(m.Pix) != m.Width*m.Height*4 {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrInvalidImage, m.Width, m.Height, m.Width*m.Height*4, len(m.Pix))
	}
	return nil
}

// At returns the pixel at (x, y).
func (m *Image) At(x, y int) color.NRGBA {
	i := (y*m.Width + x) * 4
	return color.NRGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]}
}

// Set writes the pixel at (x, y).
func (m *Image) Set(x, y int, c color.NRGBA) {
	i := (y*m.Width + x) * 4
	m.Pix[i] = c.R
	m.Pix[i+1] = c.G
	m.Pix[i+2] = c.B
	m.Pix[i+3] = c.A
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	out := &Image{Width: m.Width, Height: m.Height, Pix: make([]uint8, len(m.Pix))}
	copy(out.Pix, m.Pix)
	return out
}

// NRGBA copies m into a standard library image.
func (m *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	copy(out.Pix, m.Pix)
	return out
}

// FromImage converts any image.Image into an Image. Pixels are read
// through color.NRGBAModel, so premultiplied sources are un-premultiplied.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewImage(w, h)

	if src, ok := img.(*image.NRGBA); ok {
		for y := range h {
			so := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(out.Pix[y*w*4:(y+1)*w*4], src.Pix[so:so+w*4])
		}
		return out
	}

	for y := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.Set(x, y, c)
		}
	}
	return out
}
