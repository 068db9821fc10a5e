// Package config loads palettizer settings from a YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/palettizer"
	"gopkg.in/yaml.v3"
)

const envPrefix = "PALETTIZER_"

// File mirrors palettizer.Options in a serializable form, plus the
// front-end settings of the CLI.
type File struct {
	Method       string   `yaml:"method"`
	Colors       int      `yaml:"colors"`
	InitColors   int      `yaml:"init_colors"`
	InitDist     float64  `yaml:"init_dist"`
	DistIncr     float64  `yaml:"dist_incr"`
	HueGroups    int      `yaml:"hue_groups"`
	MinHueColors int      `yaml:"min_hue_colors"`
	BoxSize      [2]int   `yaml:"box_size,flow"`
	BoxPixels    int      `yaml:"box_pixels"`
	SampleBits   int      `yaml:"sample_bits"`
	Kernel       string   `yaml:"kernel"`
	Serpentine   bool     `yaml:"serpentine"`
	DitherDelta  float64  `yaml:"dither_delta"`
	CacheLimit   int      `yaml:"cache_limit"`
	Palette      []string `yaml:"palette,flow"`
	ReIndex      bool     `yaml:"reindex"`
	SkipSort     bool     `yaml:"skip_sort"`
	Workers      int      `yaml:"workers"`

	// Preset names a presets option set. Only the rendering settings
	// above apply on top of it.
	Preset string `yaml:"preset"`
	// Seed selects a seed palette extractor (dominant or kmeans).
	Seed string `yaml:"seed"`
}

// Default returns a File holding the engine defaults.
func Default() File {
	opt := palettizer.DefaultOptions()
	return File{
		Method:     opt.Method.String(),
		Colors:     opt.Colors,
		InitColors: opt.InitColors,
		InitDist:   opt.InitDist,
		DistIncr:   opt.DistIncr,
		HueGroups:  opt.HueGroups,
		BoxSize:    [2]int{opt.BoxSize.X, opt.BoxSize.Y},
		BoxPixels:  opt.BoxPixels,
		SampleBits: opt.SampleBits,
		CacheLimit: opt.CacheLimit,
		Workers:    opt.Workers,
	}
}

// Load reads path (if not empty) over the defaults, then applies
// PALETTIZER_* environment overrides. Unknown keys and malformed values
// are rejected.
func Load(path string) (File, error) {
	f := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return f, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return f, fmt.Errorf("config %s: %w: %w", path, palettizer.ErrInvalidOptions, err)
		}
	}
	if err := f.ApplyEnv(); err != nil {
		return f, err
	}
	return f, nil
}

// ApplyEnv overrides fields from PALETTIZER_* variables, e.g.
// PALETTIZER_COLORS or PALETTIZER_KERNEL_FILE. Every variable that is set
// but does not parse is reported.
func (f *File) ApplyEnv() error {
	e := env{prefix: envPrefix}
	e.setString("METHOD", &f.Method)
	e.setInt("COLORS", &f.Colors)
	e.setInt("INIT_COLORS", &f.InitColors)
	e.setFloat("INIT_DIST", &f.InitDist)
	e.setFloat("DIST_INCR", &f.DistIncr)
	e.setInt("HUE_GROUPS", &f.HueGroups)
	e.setInt("MIN_HUE_COLORS", &f.MinHueColors)
	e.setInt("BOX_WIDTH", &f.BoxSize[0])
	e.setInt("BOX_HEIGHT", &f.BoxSize[1])
	e.setInt("BOX_PIXELS", &f.BoxPixels)
	e.setInt("SAMPLE_BITS", &f.SampleBits)
	e.setString("KERNEL", &f.Kernel)
	e.setBool("SERPENTINE", &f.Serpentine)
	e.setFloat("DITHER_DELTA", &f.DitherDelta)
	e.setInt("CACHE_LIMIT", &f.CacheLimit)
	e.setList("PALETTE", &f.Palette)
	e.setBool("REINDEX", &f.ReIndex)
	e.setBool("SKIP_SORT", &f.SkipSort)
	e.setInt("WORKERS", &f.Workers)
	e.setString("PRESET", &f.Preset)
	e.setString("SEED", &f.Seed)
	return e.err()
}

// Apply copies the file settings onto opt and validates the result.
func (f File) Apply(opt palettizer.Options) (palettizer.Options, error) {
	method, err := palettizer.ParseMethod(f.Method)
	if err != nil {
		return opt, err
	}
	opt.Method = method
	opt.Colors = f.Colors
	opt.InitColors = f.InitColors
	opt.InitDist = f.InitDist
	opt.DistIncr = f.DistIncr
	opt.HueGroups = f.HueGroups
	opt.MinHueColors = f.MinHueColors
	opt.BoxSize = image.Pt(f.BoxSize[0], f.BoxSize[1])
	opt.BoxPixels = f.BoxPixels
	opt.SampleBits = f.SampleBits
	opt.Kernel = palettizer.Kernel(f.Kernel)
	opt.Serpentine = f.Serpentine
	opt.DitherDelta = f.DitherDelta
	opt.CacheLimit = f.CacheLimit
	opt.ReIndex = f.ReIndex
	opt.SkipSort = f.SkipSort
	opt.Workers = f.Workers

	if len(f.Palette) > 0 {
		pal, err := ParsePalette(f.Palette)
		if err != nil {
			return opt, err
		}
		opt.Palette = pal
	}
	return opt, opt.Validate()
}

// ApplyRendering copies only the settings that affect mapping and
// dithering, leaving sampling and palette settings of opt alone.
func (f File) ApplyRendering(opt palettizer.Options) (palettizer.Options, error) {
	opt.Kernel = palettizer.Kernel(f.Kernel)
	opt.Serpentine = f.Serpentine
	opt.DitherDelta = f.DitherDelta
	opt.CacheLimit = f.CacheLimit
	opt.SkipSort = f.SkipSort
	opt.Workers = f.Workers
	return opt, opt.Validate()
}

// Options is Apply on top of the engine defaults.
func (f File) Options() (palettizer.Options, error) {
	return f.Apply(palettizer.DefaultOptions())
}

// ParsePalette parses "#rrggbb" hex colors.
func ParsePalette(hex []string) ([]palettizer.RGB, error) {
	pal := make([]palettizer.RGB, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", h, err)
		}
		pal = append(pal, palettizer.FromColorful(c))
	}
	return pal, nil
}
