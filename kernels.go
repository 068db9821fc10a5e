package palettizer

import "fmt"

// Kernel names a dither algorithm: an error-diffusion matrix or an
// ordered threshold map.
type Kernel string

const (
	FloydSteinberg      Kernel = "FloydSteinberg"
	FalseFloydSteinberg Kernel = "FalseFloydSteinberg"
	Stucki              Kernel = "Stucki"
	Atkinson            Kernel = "Atkinson"
	Jarvis              Kernel = "Jarvis"
	Burkes              Kernel = "Burkes"
	Sierra              Kernel = "Sierra"
	TwoSierra           Kernel = "TwoSierra"
	SierraLite          Kernel = "SierraLite"

	Ordered2 Kernel = "Ordered2"
	Ordered3 Kernel = "Ordered3"
	Ordered4 Kernel = "Ordered4"
	Ordered8 Kernel = "Ordered8"
)

// diffusion is one error share: weight and offset from the current pixel.
// Offsets assume a left-to-right scan.
type diffusion struct {
	weight float64
	dx, dy int
}

var diffusionKernels = map[Kernel][]diffusion{
	FloydSteinberg: {
		{7.0 / 16, 1, 0},
		{3.0 / 16, -1, 1},
		{5.0 / 16, 0, 1},
		{1.0 / 16, 1, 1},
	},
	FalseFloydSteinberg: {
		{3.0 / 8, 1, 0},
		{3.0 / 8, 0, 1},
		{2.0 / 8, 1, 1},
	},
	Stucki: {
		{8.0 / 42, 1, 0},
		{4.0 / 42, 2, 0},
		{2.0 / 42, -2, 1},
		{4.0 / 42, -1, 1},
		{8.0 / 42, 0, 1},
		{4.0 / 42, 1, 1},
		{2.0 / 42, 2, 1},
		{1.0 / 42, -2, 2},
		{2.0 / 42, -1, 2},
		{4.0 / 42, 0, 2},
		{2.0 / 42, 1, 2},
		{1.0 / 42, 2, 2},
	},
	// Atkinson only diffuses 6/8 of the error.
	Atkinson: {
		{1.0 / 8, 1, 0},
		{1.0 / 8, 2, 0},
		{1.0 / 8, -1, 1},
		{1.0 / 8, 0, 1},
		{1.0 / 8, 1, 1},
		{1.0 / 8, 0, 2},
	},
	Jarvis: {
		{7.0 / 48, 1, 0},
		{5.0 / 48, 2, 0},
		{3.0 / 48, -2, 1},
		{5.0 / 48, -1, 1},
		{7.0 / 48, 0, 1},
		{5.0 / 48, 1, 1},
		{3.0 / 48, 2, 1},
		{1.0 / 48, -2, 2},
		{3.0 / 48, -1, 2},
		{5.0 / 48, 0, 2},
		{3.0 / 48, 1, 2},
		{1.0 / 48, 2, 2},
	},
	Burkes: {
		{8.0 / 32, 1, 0},
		{4.0 / 32, 2, 0},
		{2.0 / 32, -2, 1},
		{4.0 / 32, -1, 1},
		{8.0 / 32, 0, 1},
		{4.0 / 32, 1, 1},
		{2.0 / 32, 2, 1},
	},
	Sierra: {
		{5.0 / 32, 1, 0},
		{3.0 / 32, 2, 0},
		{2.0 / 32, -2, 1},
		{4.0 / 32, -1, 1},
		{5.0 / 32, 0, 1},
		{4.0 / 32, 1, 1},
		{2.0 / 32, 2, 1},
		{2.0 / 32, -1, 2},
		{3.0 / 32, 0, 2},
		{2.0 / 32, 1, 2},
	},
	TwoSierra: {
		{4.0 / 16, 1, 0},
		{3.0 / 16, 2, 0},
		{1.0 / 16, -2, 1},
		{2.0 / 16, -1, 1},
		{3.0 / 16, 0, 1},
		{2.0 / 16, 1, 1},
		{1.0 / 16, 2, 1},
	},
	SierraLite: {
		{2.0 / 4, 1, 0},
		{1.0 / 4, -1, 1},
		{1.0 / 4, 0, 1},
	},
}

// thresholdMaps are Bayer-style matrices indexed [y][x].
var thresholdMaps = map[Kernel][][]int{
	Ordered2: {
		{1, 3},
		{4, 2},
	},
	Ordered3: {
		{3, 7, 4},
		{6, 1, 9},
		{2, 8, 5},
	},
	Ordered4: {
		{1, 9, 3, 11},
		{13, 5, 15, 7},
		{4, 12, 2, 10},
		{16, 8, 14, 6},
	},
	Ordered8: {
		{1, 49, 13, 61, 4, 52, 16, 64},
		{33, 17, 45, 29, 36, 20, 48, 32},
		{9, 57, 5, 53, 12, 60, 8, 56},
		{41, 25, 37, 21, 44, 28, 40, 24},
		{3, 51, 15, 63, 2, 50, 14, 62},
		{35, 19, 47, 31, 34, 18, 46, 30},
		{11, 59, 7, 55, 10, 58, 6, 54},
		{43, 27, 39, 23, 42, 26, 38, 22},
	},
}

type kernelInfo struct {
	diffusion []diffusion
	threshold [][]int
}

func (k kernelInfo) ordered() bool {
	return k.threshold != nil
}

func lookupKernel(name Kernel) (kernelInfo, error) {
	if d, ok := diffusionKernels[name]; ok {
		return kernelInfo{diffusion: d}, nil
	}
	if t, ok := thresholdMaps[name]; ok {
		return kernelInfo{threshold: t}, nil
	}
	return kernelInfo{}, fmt.Errorf("%w: %q", ErrUnknownKernel, string(name))
}

// Kernels lists every supported kernel name, diffusion kernels first.
func Kernels() []Kernel {
	return []Kernel{
		FloydSteinberg, FalseFloydSteinberg, Stucki, Atkinson, Jarvis,
		Burkes, Sierra, TwoSierra, SierraLite,
		Ordered2, Ordered3, Ordered4, Ordered8,
	}
}

// IsOrdered reports whether k names an ordered threshold map.
func (k Kernel) IsOrdered() bool {
	_, ok := thresholdMaps[k]
	return ok
}
