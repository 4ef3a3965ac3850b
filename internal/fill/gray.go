package fill

import "github.com/gogpu/morph/raster"

// Gray runs one double sweep of grayscale reconstruction by dilation of
// the 8 bpp seed s under the 8 bpp mask m, which have the same size:
//
//	s(p) = min(m(p), max(s(p), s(q) for visited neighbors q))
func Gray(s, m *raster.Image, conn raster.Connectivity) {
	w, h := s.Width(), s.Height()
	eight := conn == raster.Conn8

	// Raster order.
	for i := range h {
		row, above, mrow := s.Row(i), s.Row(i-1), m.Row(i)
		for j := range w {
			val := raster.Byte(row, j)
			if i > 0 {
				val = max(val, raster.Byte(above, j))
				if eight {
					if j > 0 {
						val = max(val, raster.Byte(above, j-1))
					}
					if j < w-1 {
						val = max(val, raster.Byte(above, j+1))
					}
				}
			}
			if j > 0 {
				val = max(val, raster.Byte(row, j-1))
			}
			raster.SetByte(row, j, min(val, raster.Byte(mrow, j)))
		}
	}

	// Anti-raster order.
	for i := h - 1; i >= 0; i-- {
		row, below, mrow := s.Row(i), s.Row(i+1), m.Row(i)
		for j := w - 1; j >= 0; j-- {
			val := raster.Byte(row, j)
			if i < h-1 {
				val = max(val, raster.Byte(below, j))
				if eight {
					if j > 0 {
						val = max(val, raster.Byte(below, j-1))
					}
					if j < w-1 {
						val = max(val, raster.Byte(below, j+1))
					}
				}
			}
			if j < w-1 {
				val = max(val, raster.Byte(row, j+1))
			}
			raster.SetByte(row, j, min(val, raster.Byte(mrow, j)))
		}
	}
}

// GrayInv runs one double sweep of grayscale reconstruction by erosion of
// the 8 bpp seed s above the 8 bpp mask m, which have the same size:
//
//	s(p) = max(m(p), min(s(p), s(q) for visited neighbors q))
func GrayInv(s, m *raster.Image, conn raster.Connectivity) {
	w, h := s.Width(), s.Height()
	eight := conn == raster.Conn8

	// Raster order.
	for i := range h {
		row, above, mrow := s.Row(i), s.Row(i-1), m.Row(i)
		for j := range w {
			val := raster.Byte(row, j)
			if i > 0 {
				val = min(val, raster.Byte(above, j))
				if eight {
					if j > 0 {
						val = min(val, raster.Byte(above, j-1))
					}
					if j < w-1 {
						val = min(val, raster.Byte(above, j+1))
					}
				}
			}
			if j > 0 {
				val = min(val, raster.Byte(row, j-1))
			}
			raster.SetByte(row, j, max(val, raster.Byte(mrow, j)))
		}
	}

	// Anti-raster order.
	for i := h - 1; i >= 0; i-- {
		row, below, mrow := s.Row(i), s.Row(i+1), m.Row(i)
		for j := w - 1; j >= 0; j-- {
			val := raster.Byte(row, j)
			if i < h-1 {
				val = min(val, raster.Byte(below, j))
				if eight {
					if j > 0 {
						val = min(val, raster.Byte(below, j-1))
					}
					if j < w-1 {
						val = min(val, raster.Byte(below, j+1))
					}
				}
			}
			if j < w-1 {
				val = min(val, raster.Byte(row, j+1))
			}
			raster.SetByte(row, j, max(val, raster.Byte(mrow, j)))
		}
	}
}
