package palettizer

import (
	"fmt"
	"math"
)

// Dither reduces img with an error-diffusion kernel. Quantization error is
// spread to unvisited neighbors in scan order; with serpentine set, odd
// rows run right to left and the kernel is mirrored.
//
// Dithering is sequential since every pixel depends on its predecessors.
func (q *Quantizer) Dither(img *Image, kernel Kernel, serpentine bool) (*Image, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := img.validate(); err != nil {
		return nil, err
	}
	info, err := lookupKernel(kernel)
	if err != nil {
		return nil, err
	}
	if info.ordered() {
		return nil, fmt.Errorf("%w: %s is an ordered kernel", ErrUnknownKernel, kernel)
	}
	if err := q.ensurePalette(); err != nil {
		return nil, err
	}
	idx := q.diffuseIndices(img, kernel, info.diffusion, serpentine)
	return q.render(img, idx), nil
}

func (q *Quantizer) diffuseIndices(img *Image, kernel Kernel, weights []diffusion, serpentine bool) []int {
	w, h := img.Width, img.Height
	q.log.Debug("dither", "kernel", string(kernel), "serpentine", serpentine,
		"delta", q.opt.DitherDelta, "width", w, "height", h)

	buf := make([]float32, w*h*3)
	for p := range w * h {
		buf[p*3] = float32(img.Pix[p*4])
		buf[p*3+1] = float32(img.Pix[p*4+1])
		buf[p*3+2] = float32(img.Pix[p*4+2])
	}
	opaque := func(p int) bool { return img.Pix[p*4+3] != 0 }

	out := make([]int, w*h)
	delta := q.opt.DitherDelta

	for y := range h {
		reverse := serpentine && y%2 == 1
		for i := range w {
			x := i
			if reverse {
				x = w - 1 - i
			}
			p := y*w + x
			if !opaque(p) {
				out[p] = Transparent
				continue
			}

			r, g, b := buf[p*3], buf[p*3+1], buf[p*3+2]
			k := q.nearest(round8(r), round8(g), round8(b))
			out[p] = k
			c := q.pal[k]
			cr, cg, cb := float32(c.R), float32(c.G), float32(c.B)

			if delta > 0 && distNorm(float64(r), float64(g), float64(b), float64(cr), float64(cg), float64(cb)) < delta {
				continue
			}
			er, eg, eb := r-cr, g-cg, b-cb

			for _, d := range weights {
				dx := d.dx
				if reverse {
					dx = -dx
				}
				nx, ny := x+dx, y+d.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				np := ny*w + nx
				if !opaque(np) {
					continue
				}
				wt := float32(d.weight)
				buf[np*3] = clamp255(buf[np*3] + er*wt)
				buf[np*3+1] = clamp255(buf[np*3+1] + eg*wt)
				buf[np*3+2] = clamp255(buf[np*3+2] + eb*wt)
			}
		}
	}
	return out
}

func clamp255(v float32) float32 {
	return min(max(v, 0), 255)
}

func round8(v float32) uint8 {
	return uint8(math.Round(float64(clamp255(v))))
}
