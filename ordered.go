package palettizer

import (
	"fmt"
	"math"
	"slices"
)

// OrderedDither reduces img with a threshold map. Each pixel is offset by
// its map entry scaled to the widest gap between palette levels, so the
// result does not depend on processing order.
func (q *Quantizer) OrderedDither(img *Image, kernel Kernel) (*Image, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := img.validate(); err != nil {
		return nil, err
	}
	info, err := lookupKernel(kernel)
	if err != nil {
		return nil, err
	}
	if !info.ordered() {
		return nil, fmt.Errorf("%w: %s is not an ordered kernel", ErrUnknownKernel, kernel)
	}
	if err := q.ensurePalette(); err != nil {
		return nil, err
	}
	idx := q.orderedIndices(img, kernel, info.threshold)
	return q.render(img, idx), nil
}

func (q *Quantizer) orderedIndices(img *Image, kernel Kernel, tmap [][]int) []int {
	w := img.Width
	out := make([]int, w*img.Height)
	if len(out) == 0 {
		return out
	}

	mh, mw := len(tmap), len(tmap[0])
	area := float64(mw * mh)
	offset := area / 3

	colors := q.liveColors()
	dr := levelDepth(colors, func(c RGB) uint8 { return c.R }) / area
	dg := levelDepth(colors, func(c RGB) uint8 { return c.G }) / area
	db := levelDepth(colors, func(c RGB) uint8 { return c.B }) / area
	q.log.Debug("ordered dither", "kernel", string(kernel), "depth", []float64{dr, dg, db},
		"workers", q.opt.Workers)

	q.forRows(img.Height, func(y int, find func(r, g, b uint8) int) {
		row := tmap[y%mh]
		for x := range w {
			p := y*w + x
			i := p * 4
			if img.Pix[i+3] == 0 {
				out[p] = Transparent
				continue
			}
			t := float64(row[x%mw]) - offset
			out[p] = find(
				threshold(img.Pix[i], t, dr),
				threshold(img.Pix[i+1], t, dg),
				threshold(img.Pix[i+2], t, db),
			)
		}
	})
	return out
}

// levelDepth is the largest gap between consecutive distinct values of one
// channel across the palette, at least 1.
func levelDepth(colors []RGB, channel func(RGB) uint8) float64 {
	vals := make([]int, len(colors))
	for i, c := range colors {
		vals[i] = int(channel(c))
	}
	slices.Sort(vals)
	gap := 1
	for i := 1; i < len(vals); i++ {
		gap = max(gap, vals[i]-vals[i-1])
	}
	return float64(gap)
}

func threshold(v uint8, t, depth float64) uint8 {
	return uint8(math.Floor(min(max(float64(v)+t*depth, 0), 255)))
}
