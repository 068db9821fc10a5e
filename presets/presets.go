// Package presets provides fixed palettes and named option sets for the
// palettizer engine.
package presets

import (
	"errors"
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/setanarut/palettizer"
)

var ErrUnknownPreset = errors.New("presets: unknown preset")

// Preset names accepted by Options.
const (
	Adaptive = "ada"
	Exact    = "exa"
	Uniform  = "uni"
	Mac      = "mac"
	Web      = "web"
	Windows  = "win"
	Bitmap   = "bitmap"
)

func Names() []string {
	return []string{Adaptive, Exact, Uniform, Mac, Web, Windows, Bitmap}
}

// cube returns every combination of levels, red varying slowest.
func cube(levels ...uint8) []palettizer.RGB {
	out := make([]palettizer.RGB, 0, len(levels)*len(levels)*len(levels))
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				out = append(out, palettizer.RGB{R: r, G: g, B: b})
			}
		}
	}
	return out
}

var uniformCubes = map[int][]uint8{
	8:   {255, 0},
	27:  {255, 127, 0},
	64:  {255, 170, 85, 0},
	125: {255, 191, 127, 64, 0},
	216: {255, 204, 153, 102, 51, 0},
}

// WebSafe returns the 216 web-safe colors, brightest first.
func WebSafe() []palettizer.RGB {
	return cube(uniformCubes[216]...)
}

// MacSystem returns the classic 256-color Macintosh palette: the web-safe
// cube without black, ramps of red, green, blue and gray, then black.
func MacSystem() []palettizer.RGB {
	pal := WebSafe()
	pal = pal[:len(pal)-1]
	ramp := []uint8{238, 221, 187, 170, 136, 119, 85, 68, 34, 17}
	for ch := range 4 {
		for _, v := range ramp {
			switch ch {
			case 0:
				pal = append(pal, palettizer.RGB{R: v})
			case 1:
				pal = append(pal, palettizer.RGB{G: v})
			case 2:
				pal = append(pal, palettizer.RGB{B: v})
			default:
				pal = append(pal, palettizer.RGB{R: v, G: v, B: v})
			}
		}
	}
	return append(pal, palettizer.RGB{})
}

func Win16() []palettizer.RGB  { return slices.Clone(win16) }
func Win256() []palettizer.RGB { return slices.Clone(win256) }

func BlackWhite() []palettizer.RGB {
	return []palettizer.RGB{{}, {R: 255, G: 255, B: 255}}
}

// UniformCube returns an evenly spaced RGB cube of about n colors. Sizes
// that are not perfect cubes are trimmed with Limit or padded with grays.
func UniformCube(n int) []palettizer.RGB {
	if levels, ok := uniformCubes[n]; ok {
		return cube(levels...)
	}
	if n <= 2 {
		return BlackWhite()
	}

	steps := max(int(math.Round(math.Cbrt(float64(n)))), 2)
	levels := make([]uint8, steps)
	for i := range steps {
		levels[i] = uint8(math.Round(255 * float64(i) / float64(steps-1)))
	}
	pal := cube(levels...)
	if len(pal) > n {
		return Limit(pal, n)
	}
	missing := n - len(pal)
	for i := range missing {
		v := uint8(math.Round(255 * float64(i) / float64(max(1, missing-1))))
		pal = append(pal, palettizer.RGB{R: v, G: v, B: v})
	}
	return pal
}

// Limit keeps n evenly strided entries of p, including both ends.
func Limit(p []palettizer.RGB, n int) []palettizer.RGB {
	if len(p) <= n {
		return slices.Clone(p)
	}
	if n <= 1 {
		return nil
	}
	step := float64(len(p)-1) / float64(n-1)
	out := make([]palettizer.RGB, n)
	for i := range n {
		out[i] = p[int(math.Round(float64(i)*step))]
	}
	return out
}

// UniqueColors returns the distinct opaque colors of img in scan order.
// It stops once more than limit colors were found and reports whether
// the image fits in limit.
func UniqueColors(img *palettizer.Image, limit int) ([]palettizer.RGB, bool) {
	seen := make(map[palettizer.ColorKey]struct{})
	var out []palettizer.RGB
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			continue
		}
		c := palettizer.RGB{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
		if _, ok := seen[c.Key()]; ok {
			continue
		}
		seen[c.Key()] = struct{}{}
		out = append(out, c)
		if len(out) > limit {
			return out, false
		}
	}
	return out, true
}

// Options returns engine options for the named preset. Colors is clamped
// to [2, 256]. All presets sample with 40×40 boxes and keep fixed palettes
// in their original order.
func Options(img *palettizer.Image, name string, colors int) (palettizer.Options, error) {
	colors = min(max(colors, 2), 256)
	opt := palettizer.DefaultOptions()
	opt.Method = palettizer.MethodSpatialBox
	opt.BoxSize = image.Pt(40, 40)
	opt.BoxPixels = 3
	opt.Colors = colors

	var pal []palettizer.RGB
	switch name {
	case Adaptive, "":
		return opt, nil
	case Exact:
		if img == nil {
			return opt, fmt.Errorf("presets: %s needs an image: %w", name, palettizer.ErrInvalidImage)
		}
		if p, ok := UniqueColors(img, colors); ok && len(p) > 0 {
			pal = p
		}
	case Bitmap:
		pal = BlackWhite()
	case Uniform:
		pal = UniformCube(colors)
	case Mac:
		pal = Limit(MacSystem(), colors)
	case Web:
		pal = Limit(WebSafe(), colors)
	case Windows:
		if colors <= 16 {
			pal = Limit(win16, colors)
		} else {
			pal = Limit(win256, colors)
		}
	default:
		return opt, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	if pal != nil {
		opt.Palette = pal
		opt.Colors = len(pal)
	}
	return opt, nil
}
