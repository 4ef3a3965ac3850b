package fill

import "github.com/gogpu/morph/raster"

// BinaryScalar runs one pixel-at-a-time double sweep of binary
// reconstruction. It is the reference for Binary: both reach the same
// fixed point, though a single sweep of each may differ because Binary
// spreads along a whole word at once.
func BinaryScalar(d, m *raster.Image, conn raster.Connectivity) {
	w, h := d.Width(), d.Height()
	on := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && raster.Bit(d.Row(y), x)
	}
	allowed := func(x, y int) bool {
		return x < m.Width() && y < m.Height() && raster.Bit(m.Row(y), x)
	}
	visit := func(x, y, dy int) {
		row := d.Row(y)
		if !allowed(x, y) {
			raster.ClearBit(row, x)
			return
		}
		if raster.Bit(row, x) {
			return
		}
		// dy is -1 in raster order and +1 in anti-raster order.
		grow := on(x+dy, y) || on(x, y+dy)
		if conn == raster.Conn8 {
			grow = grow || on(x-1, y+dy) || on(x+1, y+dy)
		}
		if grow {
			raster.SetBit(row, x)
		}
	}

	for y := range h {
		for x := range w {
			visit(x, y, -1)
		}
	}
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			visit(x, y, 1)
		}
	}
}
