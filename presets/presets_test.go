package presets

import (
	"errors"
	"image/color"
	"slices"
	"testing"

	"github.com/setanarut/palettizer"
)

var (
	black = palettizer.RGB{}
	white = palettizer.RGB{R: 255, G: 255, B: 255}
)

func TestFixedPalettes(t *testing.T) {
	tests := []struct {
		name        string
		pal         []palettizer.RGB
		n           int
		first, last palettizer.RGB
	}{
		{"web", WebSafe(), 216, white, black},
		{"mac", MacSystem(), 256, white, black},
		{"win16", Win16(), 16, black, white},
		{"win256", Win256(), 256, black, white},
		{"uni8", UniformCube(8), 8, white, black},
		{"uni125", UniformCube(125), 125, white, black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.pal) != tt.n {
				t.Fatalf("len = %d, want %d", len(tt.pal), tt.n)
			}
			if tt.pal[0] != tt.first || tt.pal[tt.n-1] != tt.last {
				t.Errorf("ends = %v, %v", tt.pal[0], tt.pal[tt.n-1])
			}
		})
	}

	mac := MacSystem()
	if mac[215] != (palettizer.RGB{R: 238}) || mac[254] != (palettizer.RGB{R: 17, G: 17, B: 17}) {
		t.Errorf("mac ramps = %v, %v", mac[215], mac[254])
	}
}

func TestUniformCube(t *testing.T) {
	p := UniformCube(10)
	if len(p) != 10 {
		t.Fatalf("len = %d", len(p))
	}
	if p[0] != black || p[7] != white || p[8] != black || p[9] != white {
		t.Errorf("cube(10) = %v", p)
	}
	if p := UniformCube(20); len(p) != 20 {
		t.Errorf("cube(20) has %d colors", len(p))
	}
	if p := UniformCube(2); !slices.Equal(p, BlackWhite()) {
		t.Errorf("cube(2) = %v", p)
	}
}

func TestLimit(t *testing.T) {
	p := []palettizer.RGB{{R: 0}, {R: 1}, {R: 2}, {R: 3}, {R: 4}}
	tests := []struct {
		n    int
		want []uint8
	}{
		{3, []uint8{0, 2, 4}},
		{2, []uint8{0, 4}},
		{4, []uint8{0, 1, 3, 4}},
		{5, []uint8{0, 1, 2, 3, 4}},
		{9, []uint8{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		got := Limit(p, tt.n)
		reds := make([]uint8, len(got))
		for i, c := range got {
			reds[i] = c.R
		}
		if !slices.Equal(reds, tt.want) {
			t.Errorf("Limit(%d) = %v, want %v", tt.n, reds, tt.want)
		}
	}
}

func threeColors() *palettizer.Image {
	img := palettizer.NewImage(4, 2)
	cols := []color.NRGBA{
		{10, 20, 30, 255}, {10, 20, 30, 255}, {200, 0, 0, 255}, {0, 0, 0, 0},
		{5, 5, 5, 255}, {200, 0, 0, 255}, {10, 20, 30, 255}, {5, 5, 5, 255},
	}
	for i, c := range cols {
		img.Set(i%4, i/4, c)
	}
	return img
}

func TestUniqueColors(t *testing.T) {
	got, ok := UniqueColors(threeColors(), 3)
	want := []palettizer.RGB{{R: 10, G: 20, B: 30}, {R: 200}, {R: 5, G: 5, B: 5}}
	if !ok || !slices.Equal(got, want) {
		t.Errorf("UniqueColors = %v, %v", got, ok)
	}
	if _, ok := UniqueColors(threeColors(), 2); ok {
		t.Error("fit reported for limit 2")
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name       string
		colors     int
		wantColors int
		fixed      bool
	}{
		{Adaptive, 64, 64, false},
		{"", 300, 256, false},
		{Bitmap, 16, 2, true},
		{Uniform, 27, 27, true},
		{Mac, 32, 32, true},
		{Web, 16, 16, true},
		{Windows, 8, 8, true},
		{Windows, 64, 64, true},
		{Exact, 1, 2, false},
		{Exact, 8, 3, true},
	}
	for _, tt := range tests {
		opt, err := Options(threeColors(), tt.name, tt.colors)
		if err != nil {
			t.Fatalf("%s/%d: %v", tt.name, tt.colors, err)
		}
		if err := opt.Validate(); err != nil {
			t.Errorf("%s/%d: %v", tt.name, tt.colors, err)
		}
		if opt.Colors != tt.wantColors {
			t.Errorf("%s/%d: colors = %d, want %d", tt.name, tt.colors, opt.Colors, tt.wantColors)
		}
		if (opt.Palette != nil) != tt.fixed {
			t.Errorf("%s/%d: palette = %v", tt.name, tt.colors, opt.Palette)
		}
		if opt.BoxSize.X != 40 || opt.BoxPixels != 3 || opt.ReIndex {
			t.Errorf("%s: sampling options %+v", tt.name, opt)
		}
	}

	if _, err := Options(nil, "octree", 16); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
	if _, err := Options(nil, Exact, 16); !errors.Is(err, palettizer.ErrInvalidImage) {
		t.Errorf("err = %v, want ErrInvalidImage", err)
	}
}

func TestExactIsLossless(t *testing.T) {
	src := threeColors()
	opt, err := Options(src, Exact, 256)
	if err != nil {
		t.Fatal(err)
	}
	q, err := palettizer.New(opt)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Sample(src); err != nil {
		t.Fatal(err)
	}
	out, err := q.Reduce(src)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(out.Pix, src.Pix) {
		t.Errorf("reduced %v, want %v", out.Pix, src.Pix)
	}
}
