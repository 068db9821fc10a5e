package config

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/setanarut/palettizer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultMatchesEngine(t *testing.T) {
	opt, err := Default().Options()
	if err != nil {
		t.Fatal(err)
	}
	want := palettizer.DefaultOptions()
	if opt.Method != want.Method || opt.Colors != want.Colors || opt.BoxSize != want.BoxSize ||
		opt.InitDist != want.InitDist || opt.CacheLimit != want.CacheLimit {
		t.Errorf("options = %+v, want %+v", opt, want)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "palettizer.yaml", `
method: global
colors: 16
box_size: [32, 24]
kernel: Atkinson
serpentine: true
palette: ["#000000", "#ffffff", "#ff0000"]
reindex: true
workers: 4
`)
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	opt, err := f.Options()
	if err != nil {
		t.Fatal(err)
	}

	if opt.Method != palettizer.MethodGlobalPopulation || opt.Colors != 16 || opt.Workers != 4 {
		t.Errorf("options = %+v", opt)
	}
	if opt.BoxSize != image.Pt(32, 24) {
		t.Errorf("box = %v", opt.BoxSize)
	}
	if opt.Kernel != palettizer.Atkinson || !opt.Serpentine || !opt.ReIndex {
		t.Errorf("dither options = %v %v %v", opt.Kernel, opt.Serpentine, opt.ReIndex)
	}
	want := []palettizer.RGB{{}, {R: 255, G: 255, B: 255}, {R: 255}}
	if !slices.Equal(opt.Palette, want) {
		t.Errorf("palette = %v, want %v", opt.Palette, want)
	}
	// unset fields keep their defaults
	if opt.InitColors != 4096 || opt.SampleBits != 8 {
		t.Errorf("defaults lost: %+v", opt)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeFile(t, "palettizer.yaml", "colors: 16\nkernel: Stucki\n")
	secret := writeFile(t, "kernel", "  Burkes\n")

	t.Setenv("PALETTIZER_COLORS", "8")
	t.Setenv("PALETTIZER_KERNEL_FILE", secret)
	t.Setenv("PALETTIZER_SERPENTINE", "yes")
	t.Setenv("PALETTIZER_DITHER_DELTA", "0.25")
	t.Setenv("PALETTIZER_PALETTE", "#000000, #ffffff,")
	t.Setenv("PALETTIZER_REINDEX", "false")

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Colors != 8 || f.Kernel != "Burkes" || !f.Serpentine || f.DitherDelta != 0.25 {
		t.Errorf("file = %+v", f)
	}
	if len(f.Palette) != 2 || f.ReIndex {
		t.Errorf("palette = %q, reindex = %v", f.Palette, f.ReIndex)
	}
}

func TestEnvMalformed(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"PALETTIZER_COLORS", "sixteen"},
		{"PALETTIZER_INIT_DIST", "far"},
		{"PALETTIZER_SERPENTINE", "sometimes"},
		{"PALETTIZER_WORKERS", "many"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			if !errors.Is(err, palettizer.ErrInvalidOptions) {
				t.Fatalf("err = %v, want ErrInvalidOptions", err)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("PALETTIZER_KERNEL_FILE", filepath.Join(t.TempDir(), "nope"))
		if _, err := Load(""); err == nil {
			t.Error("unreadable _FILE accepted")
		}
	})
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "palettizer.yaml", "colours: 16\n")
	if _, err := Load(path); !errors.Is(err, palettizer.ErrInvalidOptions) {
		t.Errorf("err = %v, want ErrInvalidOptions", err)
	}

	path = writeFile(t, "palettizer.yaml", "colors: many\n")
	if _, err := Load(path); !errors.Is(err, palettizer.ErrInvalidOptions) {
		t.Errorf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	f, err := Load(writeFile(t, "palettizer.yaml", ""))
	if err != nil {
		t.Fatal(err)
	}
	if f.Colors != Default().Colors {
		t.Errorf("colors = %d", f.Colors)
	}
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		f    func(*File)
	}{
		{"method", func(f *File) { f.Method = "octree" }},
		{"colors", func(f *File) { f.Colors = 1000 }},
		{"kernel", func(f *File) { f.Kernel = "Halftone" }},
	}
	for _, tt := range tests {
		f := Default()
		tt.f(&f)
		if _, err := f.Options(); !errors.Is(err, palettizer.ErrInvalidOptions) {
			t.Errorf("%s: err = %v, want ErrInvalidOptions", tt.name, err)
		}
	}

	f := Default()
	f.Palette = []string{"#zzz"}
	if _, err := f.Options(); err == nil {
		t.Error("bad hex color accepted")
	}
}

func TestApplyRendering(t *testing.T) {
	base := palettizer.DefaultOptions()
	base.BoxSize = image.Pt(40, 40)
	base.Palette = []palettizer.RGB{{}, {R: 255, G: 255, B: 255}}
	base.Colors = 2

	f := Default()
	f.Kernel = string(palettizer.Ordered4)
	f.Workers = 3
	opt, err := f.ApplyRendering(base)
	if err != nil {
		t.Fatal(err)
	}
	if opt.Kernel != palettizer.Ordered4 || opt.Workers != 3 {
		t.Errorf("rendering not applied: %+v", opt)
	}
	if opt.BoxSize != image.Pt(40, 40) || opt.Colors != 2 || len(opt.Palette) != 2 {
		t.Errorf("sampling settings changed: %+v", opt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
