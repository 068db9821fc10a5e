package palettizer

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Luminance weights (Rec. 709) used by every distance in the engine.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// maxDist is the weighted distance between black and white.
var maxDist = math.Sqrt(lumR*255*255 + lumG*255*255 + lumB*255*255)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// ColorKey packs an RGB triple as r + g*256 + b*65536.
type ColorKey uint32

func Key(r, g, b uint8) ColorKey {
	return ColorKey(r) | ColorKey(g)<<8 | ColorKey(b)<<16
}

func (c RGB) Key() ColorKey {
	return Key(c.R, c.G, c.B)
}

func (k ColorKey) RGB() RGB {
	return RGB{R: uint8(k), G: uint8(k >> 8), B: uint8(k >> 16)}
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Colorful returns c in go-colorful's normalized representation.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful clamps and rounds a colorful.Color back to 8 bits.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ColorPalette converts colors to a standard library palette.
func ColorPalette(colors []RGB) color.Palette {
	p := make(color.Palette, len(colors))
	for i, c := range colors {
		p[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return p
}

// distSq is the luminance-weighted squared distance. It is the ranking
// metric of the nearest-color search.
func distSq(r0, g0, b0, r1, g1, b1 float64) float64 {
	dr := r1 - r0
	dg := g1 - g0
	db := b1 - b0
	return lumR*dr*dr + lumG*dg*dg + lumB*db*db
}

// Distance returns the weighted distance between a and b normalized to [0,1].
func Distance(a, b RGB) float64 {
	return distNorm(float64(a.R), float64(a.G), float64(a.B), float64(b.R), float64(b.G), float64(b.B))
}

func distNorm(r0, g0, b0, r1, g1, b1 float64) float64 {
	return math.Sqrt(distSq(r0, g0, b0, r1, g1, b1)) / maxDist
}

// luminance of channel values already scaled to [0,1].
func luminance(r, g, b float64) float64 {
	return math.Sqrt(lumR*r*r + lumG*g*g + lumB*b*b)
}

// hueGroup maps a hue in [0,1] onto one of segs buckets centered on
// multiples of 1/segs. Bucket 0 wraps around the red boundary.
func hueGroup(hue float64, segs int) int {
	seg := 1 / float64(segs)
	half := seg / 2

	if hue >= 1-half || hue <= half {
		return 0
	}
	for i := 1; i < segs; i++ {
		mid := float64(i) * seg
		if hue >= mid-half && hue <= mid+half {
			return i
		}
	}
	return segs - 1
}

// grayGroup is the hue group of achromatic colors, below every real hue.
const grayGroup = -1

func (c RGB) isGray() bool {
	return c.R == c.G && c.G == c.B
}

func (c RGB) hueGroup(segs int) int {
	if c.isGray() {
		return grayGroup
	}
	h, _, _ := c.Colorful().Hsl()
	return hueGroup(h/360.0, segs)
}

// sortKeys returns the rounded luminance and saturation used to order palettes.
func (c RGB) sortKeys() (lum, sat float64) {
	cf := c.Colorful()
	_, s, _ := cf.Hsl()
	l := luminance(cf.R, cf.G, cf.B)
	return round2(l), round2(s)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
