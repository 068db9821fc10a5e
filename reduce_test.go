package palettizer

import (
	"bytes"
	"errors"
	"image/color"
	"slices"
	"testing"
)

func alphaImage() *Image {
	img := NewImage(3, 1)
	img.Set(0, 0, color.NRGBA{250, 250, 250, 128})
	img.Set(1, 0, color.NRGBA{10, 10, 10, 0})
	img.Set(2, 0, color.NRGBA{20, 20, 20, 255})
	return img
}

func TestReducePlain(t *testing.T) {
	q := mustNew(t, fixed(black, white))
	out, err := q.Reduce(alphaImage())
	if err != nil {
		t.Fatal(err)
	}
	want := []color.NRGBA{
		{255, 255, 255, 128},
		{0, 0, 0, 0},
		{0, 0, 0, 255},
	}
	for x, c := range want {
		if got := out.At(x, 0); got != c {
			t.Errorf("pixel %d = %v, want %v", x, got, c)
		}
	}
}

func TestReduceAlphaPreserved(t *testing.T) {
	for _, k := range append([]Kernel{""}, Kernels()...) {
		t.Run(string(k), func(t *testing.T) {
			q := mustNew(t, fixed(black, white))
			src := alphaImage()
			out, err := q.ReduceWith(src, k, true)
			if err != nil {
				t.Fatal(err)
			}
			for x := range src.Width {
				if got, want := out.At(x, 0).A, src.At(x, 0).A; got != want {
					t.Errorf("alpha %d = %d, want %d", x, got, want)
				}
			}
			if got := out.At(1, 0); got != (color.NRGBA{}) {
				t.Errorf("transparent pixel = %v", got)
			}
		})
	}
}

func TestReduceToIndex(t *testing.T) {
	q := mustNew(t, fixed(black, white))
	idx, err := q.ReduceToIndex(alphaImage())
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, Transparent, 0}; !slices.Equal(idx, want) {
		t.Errorf("indices = %v, want %v", idx, want)
	}
}

func TestReduceUsesConfiguredKernel(t *testing.T) {
	img := grays([][]uint8{{100, 100, 100, 100}})

	opt := fixed(black, white)
	opt.Kernel = FloydSteinberg
	q := mustNew(t, opt)
	idx, err := q.ReduceToIndex(img)
	if err != nil {
		t.Fatal(err)
	}
	// working values 100, 143.75, 51.3, 122.5
	if want := []int{0, 1, 0, 0}; !slices.Equal(idx, want) {
		t.Errorf("indices = %v, want %v", idx, want)
	}
}

func TestReduceEmptyPalette(t *testing.T) {
	q := mustNew(t, DefaultOptions())
	_, err := q.Reduce(alphaImage())
	if !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("err = %v, want ErrEmptyPalette", err)
	}
	if !errors.Is(err, ErrEmptyHistogram) {
		t.Errorf("err = %v, want cause ErrEmptyHistogram", err)
	}
	if _, err := q.ReduceToIndex(alphaImage()); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("ReduceToIndex err = %v", err)
	}
}

func TestReduceInvalidInput(t *testing.T) {
	q := mustNew(t, fixed(black, white))
	bad := &Image{Width: 2, Height: 2, Pix: make([]uint8, 4)}
	if _, err := q.Reduce(bad); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("short buffer err = %v", err)
	}
	if _, err := q.Reduce(nil); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("nil image err = %v", err)
	}
	if _, err := q.ReduceWith(alphaImage(), "Halftone", false); !errors.Is(err, ErrUnknownKernel) {
		t.Errorf("unknown kernel err = %v", err)
	}
}

func TestReduceEmptyImage(t *testing.T) {
	q := mustNew(t, fixed(black, white))
	for _, k := range []Kernel{"", FloydSteinberg, Ordered8} {
		out, err := q.ReduceWith(NewImage(0, 0), k, false)
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if len(out.Pix) != 0 {
			t.Errorf("%s: %d bytes", k, len(out.Pix))
		}
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	q := mustNew(t, fixed(black, white, red))
	src := noise(9, 7, 3)
	orig := bytes.Clone(src.Pix)
	for _, k := range []Kernel{"", Atkinson, Ordered3} {
		if _, err := q.ReduceWith(src, k, true); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(src.Pix, orig) {
		t.Error("input pixels changed")
	}
}

func TestReduceWorkers(t *testing.T) {
	pal := []RGB{black, white, red, green, blue, {128, 128, 0}, {0, 128, 128}, {90, 40, 200}}
	src := noise(37, 23, 11)

	run := func(workers int, k Kernel) *Image {
		opt := fixed(pal...)
		opt.Workers = workers
		q := mustNew(t, opt)
		out, err := q.ReduceWith(src, k, false)
		if err != nil {
			t.Fatal(err)
		}
		return out
	}

	for _, k := range []Kernel{"", Ordered4, Ordered8} {
		t.Run(string(k), func(t *testing.T) {
			samePixels(t, run(4, k), run(1, k))
			samePixels(t, run(64, k), run(1, k))
		})
	}
}
