package palettizer

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	_ draw.Quantizer = (*Quantizer)(nil)
	_ draw.Drawer    = (*Quantizer)(nil)
)

// Quantize implements draw.Quantizer. An open Quantizer samples m first.
// At most cap(p)-len(p) palette colors are appended to p.
func (q *Quantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	if !q.Locked() {
		if err := q.SampleImage(m); err != nil {
			q.log.Debug("quantize sample skipped", "err", err)
		}
	}
	colors, err := q.Palette()
	if err != nil {
		q.log.Warn("quantize without palette", "err", err)
		return p
	}
	n := min(len(colors), cap(p)-len(p))
	return append(p, ColorPalette(colors[:n])...)
}

// Draw implements draw.Drawer with the configured kernel, so a Quantizer
// can serve as both fields of gif.Options.
func (q *Quantizer) Draw(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) {
	clip := r.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	sp = sp.Add(clip.Min.Sub(r.Min))
	srcRect := image.Rectangle{Min: sp, Max: sp.Add(clip.Size())}.Intersect(src.Bounds())
	if srcRect.Empty() {
		return
	}

	sub := FromImage(subImage(src, srcRect))
	out, err := q.Reduce(sub)
	if err != nil {
		q.log.Warn("draw without palette", "err", err)
		draw.Draw(dst, clip, src, sp, draw.Src)
		return
	}

	off := clip.Min.Add(srcRect.Min.Sub(sp))
	if pm, ok := dst.(*image.Paletted); ok {
		drawPaletted(pm, off, out)
		return
	}
	for y := range out.Height {
		for x := range out.Width {
			dst.Set(off.X+x, off.Y+y, out.At(x, y))
		}
	}
}

// drawPaletted writes color indices, matching opaque palette entries by
// exact RGB. Palette.Index works on premultiplied colors and is only the
// fallback.
func drawPaletted(dst *image.Paletted, off image.Point, out *Image) {
	slots := make(map[ColorKey]uint8, len(dst.Palette))
	for i, c := range dst.Palette[:min(len(dst.Palette), 256)] {
		r, g, b, a := c.RGBA()
		if a != 0xffff {
			continue
		}
		k := Key(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		if _, ok := slots[k]; !ok {
			slots[k] = uint8(i)
		}
	}
	empty := uint8(dst.Palette.Index(color.Transparent))

	for y := range out.Height {
		for x := range out.Width {
			i := (y*out.Width + x) * 4
			ci := empty
			if out.Pix[i+3] != 0 {
				s, ok := slots[Key(out.Pix[i], out.Pix[i+1], out.Pix[i+2])]
				if !ok {
					s = uint8(dst.Palette.Index(out.At(x, y)))
				}
				ci = s
			}
			dst.SetColorIndex(off.X+x, off.Y+y, ci)
		}
	}
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// subImage crops src to r, copying only when src cannot share its pixels.
func subImage(src image.Image, r image.Rectangle) image.Image {
	if s, ok := src.(subImager); ok {
		return s.SubImage(r)
	}
	out := image.NewNRGBA(r)
	draw.Draw(out, r, src, r.Min, draw.Src)
	return out
}
