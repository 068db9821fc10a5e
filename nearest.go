package palettizer

import "math"

// NearestIndex returns the index into Palette() of the color closest to c,
// building the palette first if needed. It returns -1 when there is no
// usable palette.
func (q *Quantizer) NearestIndex(c RGB) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.ensurePalette(); err != nil {
		return -1
	}
	if slot := q.nearest(c.R, c.G, c.B); slot >= 0 {
		return q.rank[slot]
	}
	return -1
}

// NearestColor returns the palette color closest to c.
func (q *Quantizer) NearestColor(c RGB) (RGB, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.ensurePalette(); err != nil {
		return RGB{}, false
	}
	idx := q.nearest(c.R, c.G, c.B)
	if idx < 0 {
		return RGB{}, false
	}
	return q.pal[idx], true
}

// nearest is lookup plus memoization while the cache has room.
func (q *Quantizer) nearest(r, g, b uint8) int {
	k := Key(r, g, b)
	if idx, ok := q.keyIdx[k]; ok {
		return idx
	}
	idx := q.scan(r, g, b)
	if idx >= 0 && q.cached < q.opt.CacheLimit {
		q.keyIdx[k] = idx
		q.cached++
	}
	return idx
}

// lookup never writes to the index, so concurrent row workers may share it.
func (q *Quantizer) lookup(r, g, b uint8) int {
	if idx, ok := q.keyIdx[Key(r, g, b)]; ok {
		return idx
	}
	return q.scan(r, g, b)
}

// scan is the linear search over live slots. Ties go to the lower index.
func (q *Quantizer) scan(r, g, b uint8) int {
	fr, fg, fb := float64(r), float64(g), float64(b)
	best := -1
	bestDist := math.Inf(1)
	for i, c := range q.pal {
		if q.pruned[i] {
			continue
		}
		d := distSq(fr, fg, fb, float64(c.R), float64(c.G), float64(c.B))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
