package palettizer

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
	red   = RGB{255, 0, 0}
	green = RGB{0, 255, 0}
	blue  = RGB{0, 0, 255}
)

func solid(w, h int, c color.NRGBA) *Image {
	img := NewImage(w, h)
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func grays(rows [][]uint8) *Image {
	img := NewImage(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func noise(w, h int, seed uint64) *Image {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	img := NewImage(w, h)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(rng.IntN(256))
		img.Pix[i+1] = uint8(rng.IntN(256))
		img.Pix[i+2] = uint8(rng.IntN(256))
		img.Pix[i+3] = 255
	}
	return img
}

func mustNew(t *testing.T, opt Options) *Quantizer {
	t.Helper()
	q, err := New(opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return q
}

func fixed(colors ...RGB) Options {
	opt := DefaultOptions()
	opt.Palette = colors
	opt.Colors = len(colors)
	return opt
}

func samePixels(t *testing.T, got, want *Image) {
	t.Helper()
	if got.Width != want.Width || got.Height != want.Height {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width, got.Height, want.Width, want.Height)
	}
	for i := range got.Pix {
		if got.Pix[i] != want.Pix[i] {
			p := i / 4
			t.Fatalf("pixel (%d,%d) = %v, want %v", p%got.Width, p/got.Width,
				got.At(p%got.Width, p/got.Width), want.At(p%want.Width, p/want.Width))
		}
	}
}
