package palettizer

import (
	"cmp"
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync"
)

// Quantizer accumulates color statistics from sample images, reduces them
// to a palette and maps images onto that palette.
//
// A Quantizer is open until its palette is built, either explicitly with
// BuildPalette or implicitly by the first call that needs a palette.
// Afterwards it is locked and Sample fails with ErrAlreadyLocked.
// All methods are safe for concurrent use.
type Quantizer struct {
	mu  sync.Mutex
	opt Options
	log *slog.Logger

	hist histogram
	hues *hueStats

	// pal holds palette slots; pruned slots stay in place unless the
	// palette may be re-indexed.
	pal    []RGB
	pruned []bool
	live   int
	// rank maps a slot to its position in Palette(), -1 when pruned.
	rank []int

	// keyIdx maps exact palette colors and memoized lookups to slots.
	keyIdx map[ColorKey]int
	cached int

	reIndex bool
	locked  bool
}

// New validates opt and returns an open Quantizer.
func New(opt Options) (*Quantizer, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	q := &Quantizer{
		opt:     opt,
		log:     log,
		hist:    make(histogram),
		reIndex: opt.ReIndex || len(opt.Palette) == 0,
	}
	q.opt.Palette = slices.Clone(opt.Palette)
	if opt.MinHueColors > 0 {
		q.hues = newHueStats(opt.HueGroups, opt.MinHueColors)
	}
	q.setPalette(slices.Clone(opt.Palette))

	q.log.Debug("quantizer init", "colors", opt.Colors, "method", opt.Method,
		"box", opt.BoxSize, "boxPixels", opt.BoxPixels, "kernel", string(opt.Kernel),
		"serpentine", opt.Serpentine, "palette", len(opt.Palette))
	return q, nil
}

// Options returns a copy of the options q was created with.
func (q *Quantizer) Options() Options {
	opt := q.opt
	opt.Palette = slices.Clone(q.opt.Palette)
	return opt
}

// Locked reports whether the palette has been built.
func (q *Quantizer) Locked() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.locked
}

// Sample adds the opaque pixels of img to the color statistics.
func (q *Quantizer) Sample(img *Image) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.locked {
		return ErrAlreadyLocked
	}
	if err := img.validate(); err != nil {
		return err
	}
	q.log.Debug("sample", "width", img.Width, "height", img.Height, "method", q.opt.Method)

	switch q.opt.Method {
	case MethodGlobalPopulation:
		q.statsGlobal(img)
	case MethodSpatialBox:
		q.statsBoxes(img)
	}
	q.log.Debug("sample done", "histogram", len(q.hist))
	return nil
}

// SampleImage converts img and samples it.
func (q *Quantizer) SampleImage(img image.Image) error {
	return q.Sample(FromImage(img))
}

// BuildPalette reduces the sampled colors to at most Options.Colors
// entries and locks the palette. Calling it again is a no-op.
func (q *Quantizer) BuildPalette() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.build()
}

// Palette builds the palette if needed and returns a copy of its colors.
func (q *Quantizer) Palette() ([]RGB, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.ensurePalette(); err != nil {
		return nil, err
	}
	return q.liveColors(), nil
}

func (q *Quantizer) liveColors() []RGB {
	out := make([]RGB, 0, q.live)
	for i, c := range q.pal {
		if !q.pruned[i] {
			out = append(out, c)
		}
	}
	return out
}

// ensurePalette builds on first use and maps a failed build to ErrEmptyPalette.
func (q *Quantizer) ensurePalette() error {
	if !q.locked {
		if err := q.build(); err != nil {
			return fmt.Errorf("%w: %w", ErrEmptyPalette, err)
		}
	}
	if q.live == 0 {
		return ErrEmptyPalette
	}
	return nil
}

func (q *Quantizer) build() error {
	if q.locked {
		return nil
	}
	if len(q.pal) > 0 && len(q.pal) <= q.opt.Colors {
		q.locked = true
		q.log.Debug("build skipped, fixed palette fits", "palette", len(q.pal))
		return nil
	}

	sorted := q.hist.sortedKeys()
	if len(sorted) == 0 {
		return ErrEmptyHistogram
	}

	var keys []ColorKey
	switch q.opt.Method {
	case MethodGlobalPopulation:
		keys = topKeys(q.hist, sorted, q.opt.InitColors)
		if q.hues != nil {
			keys = q.hues.injectKeys(keys)
		}
	case MethodSpatialBox:
		keys = sorted
	}

	q.reducePalette(keys)

	if !q.opt.SkipSort && q.reIndex {
		q.sortPalette()
	}
	q.locked = true
	q.log.Debug("palette built", "histogram", len(sorted), "palette", q.live)
	return nil
}

// topKeys keeps the n most frequent keys plus every following key that
// ties with the n-th one.
func topKeys(h histogram, sorted []ColorKey, n int) []ColorKey {
	if n >= len(sorted) {
		return slices.Clone(sorted)
	}
	freq := h[sorted[n-1]]
	end := n
	for end < len(sorted) && h[sorted[end]] == freq {
		end++
	}
	return slices.Clone(sorted[:end])
}

// reducePalette turns importance-ordered candidate keys into the palette.
func (q *Quantizer) reducePalette(keys []ColorKey) {
	q.log.Debug("reduce palette", "keys", len(keys), "colors", q.opt.Colors, "palette", len(q.pal))

	cands := make([]RGB, len(keys))
	for i, k := range keys {
		cands[i] = k.RGB()
	}

	if len(q.pal) > q.opt.Colors {
		q.prunePredefined(cands)
		return
	}
	q.setPalette(mergeSimilar(cands, q.opt.Colors, q.opt.InitDist, q.opt.DistIncr))
}

// prunePredefined keeps the first Colors distinct palette entries that the
// candidates map to and prunes the rest in a single pass.
func (q *Quantizer) prunePredefined(cands []RGB) {
	keep := make(map[int]bool, q.opt.Colors)
	uniques := 0
	pruned := false

	for _, c := range cands {
		if uniques == q.opt.Colors && !pruned {
			q.prune(keep)
			pruned = true
		}
		idx := q.nearest(c.R, c.G, c.B)
		if uniques < q.opt.Colors && !keep[idx] {
			keep[idx] = true
			uniques++
		}
	}
	if !pruned {
		q.prune(keep)
	}
}

// prune drops every slot not in keep.
func (q *Quantizer) prune(keep map[int]bool) {
	for i := range q.pal {
		if !keep[i] {
			q.pruned[i] = true
		}
	}
	q.log.Debug("prune palette", "keep", len(keep), "slots", len(q.pal))

	if q.reIndex {
		q.setPalette(q.liveColors())
		return
	}
	q.live = len(keep)
	q.rebuildIndex()
}

type mergedColor struct {
	idx  int
	c    RGB
	dist float64
}

// mergeSimilar removes candidates closer than a growing threshold to an
// earlier candidate until at most n remain. If the last pass overshoots,
// its most distinct removals are restored.
func mergeSimilar(cands []RGB, n int, initDist, distIncr float64) []RGB {
	live := len(cands)
	if live <= n {
		return cands
	}

	removed := make([]bool, len(cands))
	thold := initDist
	var merges []mergedColor

	for live > n {
		merges = merges[:0]
		for i := range cands {
			if removed[i] {
				continue
			}
			ci := cands[i]
			for j := i + 1; j < len(cands); j++ {
				if removed[j] {
					continue
				}
				d := Distance(ci, cands[j])
				if d < thold {
					merges = append(merges, mergedColor{idx: j, c: cands[j], dist: d})
					removed[j] = true
					live--
				}
			}
		}
		if live > n*3 {
			thold += initDist
		} else {
			thold += distIncr
		}
	}

	if live < n {
		slices.SortStableFunc(merges, func(a, b mergedColor) int {
			return cmp.Compare(b.dist, a.dist)
		})
		for _, m := range merges {
			if live == n {
				break
			}
			removed[m.idx] = false
			live++
		}
	}

	out := make([]RGB, 0, live)
	for i, c := range cands {
		if !removed[i] {
			out = append(out, c)
		}
	}
	return out
}

// sortPalette orders the palette by hue group, luminance and saturation,
// all descending. Grays sort after every hue.
func (q *Quantizer) sortPalette() {
	type sortKey struct {
		hue      int
		lum, sat float64
	}
	colors := q.liveColors()
	keys := make(map[RGB]sortKey, len(colors))
	for _, c := range colors {
		l, s := c.sortKeys()
		keys[c] = sortKey{hue: c.hueGroup(q.opt.HueGroups), lum: l, sat: s}
	}

	slices.SortStableFunc(colors, func(a, b RGB) int {
		ka, kb := keys[a], keys[b]
		if c := cmp.Compare(kb.hue, ka.hue); c != 0 {
			return c
		}
		if c := cmp.Compare(kb.lum, ka.lum); c != 0 {
			return c
		}
		return cmp.Compare(kb.sat, ka.sat)
	})
	q.setPalette(colors)
}

// setPalette replaces the palette and rebuilds the reverse index.
func (q *Quantizer) setPalette(colors []RGB) {
	q.pal = colors
	q.pruned = make([]bool, len(colors))
	q.live = len(colors)
	q.rebuildIndex()
}

// rebuildIndex drops memoized lookups and indexes the live slots. The
// first slot wins for duplicate colors.
func (q *Quantizer) rebuildIndex() {
	q.keyIdx = make(map[ColorKey]int, q.live)
	q.cached = 0
	q.rank = make([]int, len(q.pal))
	n := 0
	for i, c := range q.pal {
		if q.pruned[i] {
			q.rank[i] = -1
			continue
		}
		q.rank[i] = n
		n++
		if _, ok := q.keyIdx[c.Key()]; !ok {
			q.keyIdx[c.Key()] = i
		}
	}
}
