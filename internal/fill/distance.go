package fill

import "github.com/gogpu/morph/raster"

// Distance runs one double sweep of the distance transform on d, an 8 or
// 16 bpp image whose non-zero pixels are the foreground still to be
// measured. Zero pixels and the outermost ring of pixels are never
// written; they anchor the distances at 0. Values saturate at the depth's
// maximum.
//
// The raster pass sets each foreground pixel to one more than the least
// visited neighbor; the anti-raster pass lowers it to one more than the
// least visited neighbor if that is smaller.
func Distance(d *raster.Image, conn raster.Connectivity) {
	w, h := d.Width(), d.Height()
	depth := d.Depth()
	maxv := depth.MaxValue()
	eight := conn == raster.Conn8

	step := func(v uint32) uint32 {
		if v >= maxv {
			return maxv
		}
		return v + 1
	}

	// Raster order.
	for i := 1; i < h-1; i++ {
		row, above := d.Row(i), d.Row(i-1)
		for j := 1; j < w-1; j++ {
			if raster.Sample(row, j, depth) == 0 {
				continue
			}
			least := min(raster.Sample(above, j, depth), raster.Sample(row, j-1, depth))
			if eight {
				least = min(least, raster.Sample(above, j-1, depth), raster.Sample(above, j+1, depth))
			}
			raster.SetSample(row, j, depth, step(least))
		}
	}

	// Anti-raster order.
	for i := h - 2; i > 0; i-- {
		row, below := d.Row(i), d.Row(i+1)
		for j := w - 2; j > 0; j-- {
			val := raster.Sample(row, j, depth)
			if val == 0 {
				continue
			}
			least := min(raster.Sample(below, j, depth), raster.Sample(row, j+1, depth))
			if eight {
				least = min(least, raster.Sample(below, j-1, depth), raster.Sample(below, j+1, depth))
			}
			raster.SetSample(row, j, depth, min(val, step(least)))
		}
	}
}
