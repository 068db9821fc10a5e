package palettizer

import (
	"fmt"
	"image"
	"log/slog"
)

// Method selects the histogram strategy.
type Method int

const (
	// MethodGlobalPopulation counts every opaque pixel in one histogram.
	MethodGlobalPopulation Method = iota + 1
	// MethodSpatialBox promotes colors per box once they are locally frequent.
	MethodSpatialBox
)

func (m Method) String() string {
	switch m {
	case MethodGlobalPopulation:
		return "global"
	case MethodSpatialBox:
		return "box"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts the names returned by Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "global", "1":
		return MethodGlobalPopulation, nil
	case "box", "2":
		return MethodSpatialBox, nil
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidOptions, s)
}

type Options struct {
	// Histogram strategy.
	Method Method
	// Palette size ceiling, 1-256.
	Colors int
	// Number of most frequent colors kept as candidates by MethodGlobalPopulation.
	// Colors tied with the last one are kept too.
	InitColors int
	// Merge threshold of the first reduction pass (normalized distance).
	// Also the growth step while more than 3*Colors candidates remain.
	InitDist float64
	// Growth step of the merge threshold once fewer than 3*Colors remain.
	DistIncr float64
	// Number of hue buckets used by palette sorting and hue statistics.
	HueGroups int
	// If > 0, colors of sparsely populated hue groups (up to this many per
	// group) are injected so they survive reduction.
	MinHueColors int
	// Box geometry of MethodSpatialBox.
	BoxSize image.Point
	// Same-color pixels a full box needs before the color enters the histogram.
	BoxPixels int
	// Bits kept per channel while sampling, 1-8. Lower is faster and coarser.
	SampleBits int
	// Default dither kernel of Reduce. Empty means no dithering.
	Kernel Kernel
	// Alternate scan direction per row during error diffusion.
	Serpentine bool
	// Minimum normalized color difference (0-1) that is worth diffusing.
	DitherDelta float64
	// Maximum number of memoized nearest-color lookups.
	CacheLimit int
	// Pre-defined palette. If it already fits Colors no palette is built;
	// a larger one is pruned to the Colors entries the samples use most.
	Palette []RGB
	// Allows a pre-defined palette to be compacted and sorted. Palettes
	// built from samples are always re-indexed.
	ReIndex bool
	// Keep the built palette in reduction order instead of sorting it.
	SkipSort bool
	// Row workers for plain reduction and ordered dithering.
	Workers int
	// Destination of debug events. Nil discards them.
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Method:     MethodSpatialBox,
		Colors:     256,
		InitColors: 4096,
		InitDist:   0.01,
		DistIncr:   0.005,
		HueGroups:  10,
		BoxSize:    image.Pt(64, 64),
		BoxPixels:  2,
		SampleBits: 8,
		CacheLimit: 200000,
		Workers:    1,
	}
}

// OptionsFromSize returns defaults with a box size scaled to the sample
// dimensions, aiming at roughly an 8×8 grid of boxes.
func OptionsFromSize(size image.Point) Options {
	opt := DefaultOptions()
	if size.X <= 0 || size.Y <= 0 {
		return opt
	}
	bw := max(16, min(256, size.X/8))
	bh := max(16, min(256, size.Y/8))
	opt.BoxSize = image.Pt(bw, bh)
	return opt
}

// Validate reports the first out-of-range field.
func (o Options) Validate() error {
	switch {
	case o.Method != MethodGlobalPopulation && o.Method != MethodSpatialBox:
		return fmt.Errorf("%w: method %v", ErrInvalidOptions, o.Method)
	case o.Colors < 1 || o.Colors > 256:
		return fmt.Errorf("%w: colors %d not in [1,256]", ErrInvalidOptions, o.Colors)
	case o.InitColors < 1:
		return fmt.Errorf("%w: initColors %d < 1", ErrInvalidOptions, o.InitColors)
	case o.InitDist <= 0 || o.InitDist > 1:
		return fmt.Errorf("%w: initDist %g not in (0,1]", ErrInvalidOptions, o.InitDist)
	case o.DistIncr <= 0 || o.DistIncr > 1:
		return fmt.Errorf("%w: distIncr %g not in (0,1]", ErrInvalidOptions, o.DistIncr)
	case o.HueGroups < 1 || o.HueGroups > 360:
		return fmt.Errorf("%w: hueGroups %d not in [1,360]", ErrInvalidOptions, o.HueGroups)
	case o.MinHueColors < 0:
		return fmt.Errorf("%w: minHueColors %d < 0", ErrInvalidOptions, o.MinHueColors)
	case o.BoxSize.X < 1 || o.BoxSize.Y < 1:
		return fmt.Errorf("%w: box size %v", ErrInvalidOptions, o.BoxSize)
	case o.BoxPixels < 1:
		return fmt.Errorf("%w: boxPixels %d < 1", ErrInvalidOptions, o.BoxPixels)
	case o.SampleBits < 1 || o.SampleBits > 8:
		return fmt.Errorf("%w: sampleBits %d not in [1,8]", ErrInvalidOptions, o.SampleBits)
	case o.DitherDelta < 0 || o.DitherDelta > 1:
		return fmt.Errorf("%w: ditherDelta %g not in [0,1]", ErrInvalidOptions, o.DitherDelta)
	case o.CacheLimit < 0:
		return fmt.Errorf("%w: cacheLimit %d < 0", ErrInvalidOptions, o.CacheLimit)
	case len(o.Palette) > 1<<16:
		return fmt.Errorf("%w: palette has %d entries", ErrInvalidOptions, len(o.Palette))
	case o.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalidOptions, o.Workers)
	}
	if o.Kernel != "" {
		if _, err := lookupKernel(o.Kernel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
	}
	return nil
}
