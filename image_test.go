package palettizer

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestFromImage(t *testing.T) {
	t.Run("nrgba sub image", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		src.SetNRGBA(2, 3, color.NRGBA{1, 2, 3, 4})
		sub := src.SubImage(image.Rect(1, 2, 4, 4))

		img := FromImage(sub)
		if img.Width != 3 || img.Height != 2 {
			t.Fatalf("size = %dx%d", img.Width, img.Height)
		}
		if got := img.At(1, 1); got != (color.NRGBA{1, 2, 3, 4}) {
			t.Errorf("At(1,1) = %v", got)
		}
	})
	t.Run("premultiplied", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 1, 1))
		src.SetRGBA(0, 0, color.RGBA{128, 0, 0, 128})
		if got := FromImage(src).At(0, 0); got != (color.NRGBA{255, 0, 0, 128}) {
			t.Errorf("At(0,0) = %v", got)
		}
	})
	t.Run("gray", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 1, 1))
		src.SetGray(0, 0, color.Gray{77})
		if got := FromImage(src).At(0, 0); got != (color.NRGBA{77, 77, 77, 255}) {
			t.Errorf("At(0,0) = %v", got)
		}
	})
}

func TestImageValidate(t *testing.T) {
	tests := []struct {
		name string
		img  *Image
		ok   bool
	}{
		{"nil", nil, false},
		{"negative", &Image{Width: -1, Height: 1}, false},
		{"short", &Image{Width: 2, Height: 1, Pix: make([]uint8, 7)}, false},
		{"empty", &Image{}, true},
		{"ok", NewImage(3, 2), true},
	}
	for _, tt := range tests {
		err := tt.img.validate()
		if tt.ok && err != nil {
			t.Errorf("%s: %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidImage) {
			t.Errorf("%s: err = %v, want ErrInvalidImage", tt.name, err)
		}
	}
}

func TestImageCopies(t *testing.T) {
	img := noise(3, 3, 1)
	c := img.Clone()
	c.Pix[0]++
	if c.Pix[0] == img.Pix[0] {
		t.Error("Clone shares pixels")
	}

	n := img.NRGBA()
	if got := n.NRGBAAt(2, 1); got != img.At(2, 1) {
		t.Errorf("NRGBA pixel = %v, want %v", got, img.At(2, 1))
	}
}
