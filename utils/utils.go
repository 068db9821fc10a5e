package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/setanarut/palettizer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SeedMethod selects how a seed palette is extracted from an image.
type SeedMethod int

const (
	SeedDominantColor SeedMethod = iota
	SeedKMeans
)

func (m SeedMethod) String() string {
	switch m {
	case SeedKMeans:
		return "kmeans"
	default:
		return "dominant"
	}
}

func ParseSeedMethod(s string) (SeedMethod, error) {
	switch strings.ToLower(s) {
	case "dominant", "dominantcolor":
		return SeedDominantColor, nil
	case "kmeans":
		return SeedKMeans, nil
	}
	return 0, fmt.Errorf("unknown seed method %q", s)
}

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// SortPaletteByBrightness orders colors from darkest to brightest by
// linear-light luminance.
func SortPaletteByBrightness(palette []palettizer.RGB) {
	lum := func(c palettizer.RGB) float64 {
		r, g, b := c.Colorful().LinearRgb()
		return 0.2126*r + 0.7152*g + 0.0722*b
	}
	slices.SortStableFunc(palette, func(a, b palettizer.RGB) int {
		la, lb := lum(a), lum(b)
		if la < lb {
			return -1
		}
		if la > lb {
			return 1
		}
		return 0
	})
}

// ExtractDominantPalette picks k diverse colors among the dominant colors of img.
func ExtractDominantPalette(img image.Image, k int) []palettizer.RGB {
	if k <= 0 {
		return nil
	}

	candidates := dominantcolor.FindWeight(img, max(24, k*8))
	if len(candidates) == 0 {
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}

	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		weighted = append(weighted, weightedColor{Col: col.Clamped(), Weight: c.Weight})
	}
	return selectDiverse(weighted, k)
}

// ExtractKMeansPalette clusters a subsample of img and picks k diverse
// cluster centers, weighted by population.
func ExtractKMeansPalette(img image.Image, k int) []palettizer.RGB {
	if k <= 0 {
		return nil
	}
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(c.R) / 255.0,
				float64(c.G) / 255.0,
				float64(c.B) / 255.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*4, k+2), len(dataset))
	cc, err := kmeans.New().Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		log.Println("kmeans:", err)
		return nil
	}

	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		weighted = append(weighted, weightedColor{Col: col, Weight: float64(len(c.Observations))})
	}
	return selectDiverse(weighted, k)
}

// ExtractPalette runs the chosen extractor, falling back to dominant
// colors when k-means yields nothing.
func ExtractPalette(img image.Image, k int, method SeedMethod) []palettizer.RGB {
	if method == SeedKMeans {
		if p := ExtractKMeansPalette(img, k); len(p) != 0 {
			return p
		}
		log.Println("palette warning: kmeans returned empty palette, falling back to dominantcolor")
	}
	return ExtractDominantPalette(img, k)
}

// selectDiverse greedily picks k colors that are far apart in Lab space,
// starting from the heaviest and favoring heavy candidates.
func selectDiverse(cands []weightedColor, k int) []palettizer.RGB {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, len(cands))
	maxW := 0.0
	for i, c := range cands {
		l, a, b := c.Col.Lab()
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		maxW = max(maxW, w)
		items[i] = item{col: c.Col, lab: [3]float64{l, a, b}, w: w}
	}
	k = min(k, len(items))

	seed := 0
	for i := 1; i < len(items); i++ {
		if items[i].w > items[seed].w {
			seed = i
		}
	}
	picked := []int{seed}
	used := make([]bool, len(items))
	used[seed] = true

	for len(picked) < k {
		best, bestScore := -1, -1.0
		for i := range items {
			if used[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range picked {
				d0 := items[i].lab[0] - items[s].lab[0]
				d1 := items[i].lab[1] - items[s].lab[1]
				d2 := items[i].lab[2] - items[s].lab[2]
				minD2 = min(minD2, d0*d0+d1*d1+d2*d2)
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(items[i].w/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		picked = append(picked, best)
	}

	out := make([]palettizer.RGB, 0, len(picked))
	for _, i := range picked {
		out = append(out, palettizer.FromColorful(items[i].col))
	}
	return out
}

// ErrorStats summarizes the per-pixel normalized distance between two images.
type ErrorStats struct {
	Mean   float64
	StdDev float64
	Max    float64
}

// Compare measures how far a reduced image strays from its source.
// Pixels transparent in either image are ignored.
func Compare(src, reduced *palettizer.Image) (ErrorStats, error) {
	if src.Width != reduced.Width || src.Height != reduced.Height {
		return ErrorStats{}, fmt.Errorf("size mismatch: %dx%d vs %dx%d",
			src.Width, src.Height, reduced.Width, reduced.Height)
	}
	dists := make([]float64, 0, src.Width*src.Height)
	for i := 0; i < len(src.Pix); i += 4 {
		if src.Pix[i+3] == 0 || reduced.Pix[i+3] == 0 {
			continue
		}
		a := palettizer.RGB{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2]}
		b := palettizer.RGB{R: reduced.Pix[i], G: reduced.Pix[i+1], B: reduced.Pix[i+2]}
		dists = append(dists, palettizer.Distance(a, b))
	}
	if len(dists) == 0 {
		return ErrorStats{}, nil
	}
	mean, std := stat.MeanStdDev(dists, nil)
	if len(dists) == 1 {
		std = 0
	}
	return ErrorStats{Mean: mean, StdDev: std, Max: floats.Max(dists)}, nil
}

// ReadImage decodes png, jpeg, gif, tiff or bmp files, applying the EXIF
// orientation of jpeg files.
func ReadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return img, nil
}

// Thumbnail scales img down to fit in a size×size square. Smaller images
// and size <= 0 return img itself.
func Thumbnail(img image.Image, size int) image.Image {
	b := img.Bounds()
	if size <= 0 || (b.Dx() <= size && b.Dy() <= size) {
		return img
	}
	return imaging.Fit(img, size, size, imaging.Box)
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveGIF encodes img as a GIF, using q both to pick the palette and to
// draw the frame.
func SaveGIF(img image.Image, q *palettizer.Quantizer, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.Encode(f, img, &gif.Options{NumColors: 256, Quantizer: q, Drawer: q})
}

// Save picks the encoder from the file extension. GIF output is drawn
// through q, everything else is written as is.
func Save(img image.Image, q *palettizer.Quantizer, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gif":
		return SaveGIF(img, q, filename)
	case ".png":
		return SaveImage(img, filename)
	}
	return imaging.Save(img, filename)
}

// SavePalette writes one tileSize square per color, left to right.
func SavePalette(palette []palettizer.RGB, tileSize int, filename string) error {
	if len(palette) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	return SaveImage(Swatch(palette, tileSize), filename)
}

func Swatch(palette []palettizer.RGB, tileSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, c := range palette {
		x0 := i * tileSize
		for y := range tileSize {
			for x := x0; x < x0+tileSize; x++ {
				img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
			}
		}
	}
	return img
}
