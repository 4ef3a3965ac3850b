package fill

import "github.com/gogpu/morph/raster"

// Binary runs one word-parallel double sweep of binary reconstruction of
// d under the filling mask m. Both images are 1 bpp. Mask words outside
// m's extent read as zero, so d is cleared wherever m does not reach.
func Binary(d, m *raster.Image, conn raster.Connectivity) {
	if conn == raster.Conn8 {
		binary8(d, m)
		return
	}
	binary4(d, m)
}

// maskRows reads mask words on the word grid of the destination: words
// outside the mask read as zero and the last word of each row has the
// bits past the destination width cleared.
type maskRows struct {
	m    *raster.Image
	wpl  int
	tail uint32
}

func newMaskRows(d, m *raster.Image) maskRows {
	return maskRows{m: m, wpl: d.WordsPerLine(), tail: d.TailMask()}
}

// word returns mask word j of row i.
func (mr maskRows) word(i, j int) uint32 {
	mrow := mr.m.Row(i)
	var w uint32
	if j < len(mrow) {
		w = mrow[j]
	}
	if j == mr.wpl-1 {
		w &= mr.tail
	}
	return w
}

// spread propagates ON bits sideways within a word until they fill every
// run of mask bits they touch.
func spread(w, m uint32) uint32 {
	if w == 0 || w == 0xffffffff {
		return w
	}
	for {
		prev := w
		w = (w | w>>1 | w<<1) & m
		if w == prev {
			return w
		}
	}
}

func binary4(d, m *raster.Image) {
	h, wpl := d.Height(), d.WordsPerLine()
	mr := newMaskRows(d, m)

	// Raster order: north and west.
	for i := range h {
		row := d.Row(i)
		above := d.Row(i - 1)
		for j := range wpl {
			mw := mr.word(i, j)
			w := row[j]
			if i > 0 {
				w |= above[j]
			}
			if j > 0 {
				w |= row[j-1] << 31
			}
			row[j] = spread(w&mw, mw)
		}
	}

	// Anti-raster order: south and east.
	for i := h - 1; i >= 0; i-- {
		row := d.Row(i)
		below := d.Row(i + 1)
		for j := wpl - 1; j >= 0; j-- {
			mw := mr.word(i, j)
			w := row[j]
			if i < h-1 {
				w |= below[j]
			}
			if j < wpl-1 {
				w |= row[j+1] >> 31
			}
			row[j] = spread(w&mw, mw)
		}
	}
}

func binary8(d, m *raster.Image) {
	h, wpl := d.Height(), d.WordsPerLine()
	mr := newMaskRows(d, m)

	// Raster order: north, northwest, northeast and west.
	for i := range h {
		row := d.Row(i)
		above := d.Row(i - 1)
		for j := range wpl {
			mw := mr.word(i, j)
			w := row[j]
			if i > 0 {
				wa := above[j]
				w |= wa | wa<<1 | wa>>1
				if j > 0 {
					w |= above[j-1] << 31
				}
				if j < wpl-1 {
					w |= above[j+1] >> 31
				}
			}
			if j > 0 {
				w |= row[j-1] << 31
			}
			row[j] = spread(w&mw, mw)
		}
	}

	// Anti-raster order: south, southwest, southeast and east.
	for i := h - 1; i >= 0; i-- {
		row := d.Row(i)
		below := d.Row(i + 1)
		for j := wpl - 1; j >= 0; j-- {
			mw := mr.word(i, j)
			w := row[j]
			if i < h-1 {
				wb := below[j]
				w |= wb | wb<<1 | wb>>1
				if j > 0 {
					w |= below[j-1] << 31
				}
				if j < wpl-1 {
					w |= below[j+1] >> 31
				}
			}
			if j < wpl-1 {
				w |= row[j+1] >> 31
			}
			row[j] = spread(w&mw, mw)
		}
	}
}
