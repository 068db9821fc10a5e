package palettizer

import (
	"cmp"
	"image"
	"math"
	"slices"
)

// histogram counts sampled colors. Counts are never decremented.
type histogram map[ColorKey]int

// sortedKeys orders keys by descending count, ties by ascending key.
func (h histogram) sortedKeys() []ColorKey {
	keys := make([]ColorKey, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b ColorKey) int {
		if c := cmp.Compare(h[b], h[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return keys
}

// truncate clears the low shift bits of each channel.
func truncate(r, g, b uint8, shift uint) (uint8, uint8, uint8) {
	if shift == 0 {
		return r, g, b
	}
	return r >> shift << shift, g >> shift << shift, b >> shift << shift
}

// statsGlobal is the global-population strategy.
func (q *Quantizer) statsGlobal(img *Image) {
	shift := uint(8 - q.opt.SampleBits)
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		r, g, b := truncate(pix[i], pix[i+1], pix[i+2], shift)
		if q.hues != nil {
			q.hues.check(r, g, b)
		}
		q.hist[Key(r, g, b)]++
	}
}

// statsBoxes is the spatial-box strategy: a color enters the global
// histogram once it is frequent enough inside one box.
func (q *Quantizer) statsBoxes(img *Image) {
	bw, bh := q.opt.BoxSize.X, q.opt.BoxSize.Y
	area := float64(bw * bh)
	shift := uint(8 - q.opt.SampleBits)
	hist := q.hist

	boxes := makeBoxes(img.Width, img.Height, bw, bh)
	q.log.Debug("sampling boxes", "boxes", len(boxes), "box", q.opt.BoxSize)

	for _, box := range boxes {
		effc := max(int(math.Round(float64(box.Dx()*box.Dy())/area))*q.opt.BoxPixels, 2)
		local := make(histogram)

		for y := box.Min.Y; y < box.Max.Y; y++ {
			row := y * img.Width
			for x := box.Min.X; x < box.Max.X; x++ {
				i := (row + x) * 4
				if img.Pix[i+3] == 0 {
					continue
				}
				r, g, b := truncate(img.Pix[i], img.Pix[i+1], img.Pix[i+2], shift)
				if q.hues != nil {
					q.hues.check(r, g, b)
				}
				k := Key(r, g, b)

				if n, ok := hist[k]; ok {
					hist[k] = n + 1
					continue
				}
				n := local[k] + 1
				local[k] = n
				if n >= effc {
					hist[k] = n
				}
			}
		}
	}

	if q.hues != nil {
		q.hues.injectHistogram(hist)
	}
}

// makeBoxes partitions w×h into bw×bh boxes, truncating the last
// column and row.
func makeBoxes(w, h, bw, bh int) []image.Rectangle {
	var boxes []image.Rectangle
	for y := 0; y < h; y += bh {
		for x := 0; x < w; x += bw {
			boxes = append(boxes, image.Rect(x, y, min(x+bw, w), min(y+bh, h)))
		}
	}
	return boxes
}

// hueStats remembers the first colors seen per hue group so that sparse
// hues can be re-injected before reduction.
type hueStats struct {
	numGroups int
	minCols   int
	groups    map[int]*hueBucket
	full      int
}

type hueBucket struct {
	num  int
	cols []ColorKey
}

func newHueStats(numGroups, minCols int) *hueStats {
	hs := &hueStats{
		numGroups: numGroups,
		minCols:   minCols,
		groups:    make(map[int]*hueBucket, numGroups+1),
	}
	for g := grayGroup; g < numGroups; g++ {
		hs.groups[g] = &hueBucket{}
	}
	return hs
}

func (hs *hueStats) check(r, g, b uint8) {
	if hs.full == hs.numGroups+1 {
		return
	}
	c := RGB{R: r, G: g, B: b}
	bucket := hs.groups[c.hueGroup(hs.numGroups)]
	bucket.num++
	if bucket.num > hs.minCols {
		return
	}
	if bucket.num == hs.minCols {
		hs.full++
	}
	bucket.cols = append(bucket.cols, c.Key())
}

// sparse calls fn for every remembered color of groups that never grew
// past minCols.
func (hs *hueStats) sparse(fn func(ColorKey)) {
	for g := grayGroup; g < hs.numGroups; g++ {
		bucket := hs.groups[g]
		if bucket.num > hs.minCols {
			continue
		}
		for _, k := range bucket.cols {
			fn(k)
		}
	}
}

func (hs *hueStats) injectHistogram(h histogram) {
	hs.sparse(func(k ColorKey) {
		h[k]++
	})
}

func (hs *hueStats) injectKeys(keys []ColorKey) []ColorKey {
	seen := make(map[ColorKey]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	hs.sparse(func(k ColorKey) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	})
	return keys
}
