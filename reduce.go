package palettizer

import (
	"image"

	"golang.org/x/sync/errgroup"
)

// Transparent is the index emitted for pixels with alpha 0.
const Transparent = -1

// Reduce maps img onto the palette using the configured kernel and
// serpentine setting. The palette is built first if needed.
func (q *Quantizer) Reduce(img *Image) (*Image, error) {
	return q.ReduceWith(img, q.opt.Kernel, q.opt.Serpentine)
}

// ReduceWith is Reduce with an explicit kernel. An empty kernel maps every
// pixel to its nearest color without dithering.
func (q *Quantizer) ReduceWith(img *Image, kernel Kernel, serpentine bool) (*Image, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	idx, err := q.reduce(img, kernel, serpentine)
	if err != nil {
		return nil, err
	}
	return q.render(img, idx), nil
}

// ReduceToIndex returns one index into Palette() per pixel, row-major,
// with Transparent for fully transparent pixels.
func (q *Quantizer) ReduceToIndex(img *Image) ([]int, error) {
	return q.ReduceToIndexWith(img, q.opt.Kernel, q.opt.Serpentine)
}

func (q *Quantizer) ReduceToIndexWith(img *Image, kernel Kernel, serpentine bool) ([]int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	idx, err := q.reduce(img, kernel, serpentine)
	if err != nil {
		return nil, err
	}
	for p, slot := range idx {
		if slot != Transparent {
			idx[p] = q.rank[slot]
		}
	}
	return idx, nil
}

// ReduceImage converts img and reduces it with the configured kernel.
func (q *Quantizer) ReduceImage(img image.Image) (*image.NRGBA, error) {
	out, err := q.Reduce(FromImage(img))
	if err != nil {
		return nil, err
	}
	return out.NRGBA(), nil
}

func (q *Quantizer) reduce(img *Image, kernel Kernel, serpentine bool) ([]int, error) {
	if err := img.validate(); err != nil {
		return nil, err
	}
	var info kernelInfo
	if kernel != "" {
		var err error
		if info, err = lookupKernel(kernel); err != nil {
			return nil, err
		}
	}
	if err := q.ensurePalette(); err != nil {
		return nil, err
	}

	switch {
	case kernel == "":
		q.log.Debug("reduce", "width", img.Width, "height", img.Height, "workers", q.opt.Workers)
		return q.mapPlain(img), nil
	case info.ordered():
		return q.orderedIndices(img, kernel, info.threshold), nil
	default:
		return q.diffuseIndices(img, kernel, info.diffusion, serpentine), nil
	}
}

func (q *Quantizer) mapPlain(img *Image) []int {
	w := img.Width
	out := make([]int, w*img.Height)
	q.forRows(img.Height, func(y int, find func(r, g, b uint8) int) {
		for x := range w {
			p := y*w + x
			i := p * 4
			if img.Pix[i+3] == 0 {
				out[p] = Transparent
				continue
			}
			out[p] = find(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		}
	})
	return out
}

// forRows calls fn for every row. With more than one worker, rows are split
// into contiguous bands and fn receives the read-only lookup.
func (q *Quantizer) forRows(h int, fn func(y int, find func(r, g, b uint8) int)) {
	workers := q.opt.Workers
	if workers <= 1 || h < 2 {
		for y := range h {
			fn(y, q.nearest)
		}
		return
	}

	band := (h + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				fn(y, q.lookup)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// render turns indices back into pixels, keeping the source alpha.
func (q *Quantizer) render(src *Image, idx []int) *Image {
	out := NewImage(src.Width, src.Height)
	for p, k := range idx {
		if k == Transparent {
			continue
		}
		c := q.pal[k]
		i := p * 4
		out.Pix[i] = c.R
		out.Pix[i+1] = c.G
		out.Pix[i+2] = c.B
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}
