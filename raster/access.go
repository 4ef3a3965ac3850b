package raster

import "math/bits"

// Row-level sample access. These helpers take a single row of packed words
// and do no bounds checking beyond what the slice index does; callers are
// the inner loops of the propagation kernels.

// Bit reports whether pixel x of a 1 bpp row is ON.
func Bit(row []uint32, x int) bool {
	return row[x>>5]&(0x80000000>>uint(x&31)) != 0
}

// SetBit turns pixel x of a 1 bpp row ON.
func SetBit(row []uint32, x int) {
	row[x>>5] |= 0x80000000 >> uint(x&31)
}

// ClearBit turns pixel x of a 1 bpp row OFF.
func ClearBit(row []uint32, x int) {
	row[x>>5] &^= 0x80000000 >> uint(x&31)
}

// Byte returns pixel x of an 8 bpp row.
func Byte(row []uint32, x int) uint32 {
	return (row[x>>2] >> (24 - 8*uint(x&3))) & 0xff
}

// SetByte sets pixel x of an 8 bpp row to the low 8 bits of v.
func SetByte(row []uint32, x int, v uint32) {
	shift := 24 - 8*uint(x&3)
	w := &row[x>>2]
	*w = (*w &^ (0xff << shift)) | ((v & 0xff) << shift)
}

// TwoBytes returns pixel x of a 16 bpp row.
func TwoBytes(row []uint32, x int) uint32 {
	return (row[x>>1] >> (16 - 16*uint(x&1))) & 0xffff
}

// SetTwoBytes sets pixel x of a 16 bpp row to the low 16 bits of v.
func SetTwoBytes(row []uint32, x int, v uint32) {
	shift := 16 - 16*uint(x&1)
	w := &row[x>>1]
	*w = (*w &^ (0xffff << shift)) | ((v & 0xffff) << shift)
}

// Sample returns pixel x of a row at the given depth.
func Sample(row []uint32, x int, d Depth) uint32 {
	switch d {
	case Depth1:
		if Bit(row, x) {
			return 1
		}
		return 0
	case Depth8:
		return Byte(row, x)
	case Depth16:
		return TwoBytes(row, x)
	default:
		return 0
	}
}

// SetSample sets pixel x of a row at the given depth.
func SetSample(row []uint32, x int, d Depth, v uint32) {
	switch d {
	case Depth1:
		if v&1 != 0 {
			SetBit(row, x)
		} else {
			ClearBit(row, x)
		}
	case Depth8:
		SetByte(row, x, v)
	case Depth16:
		SetTwoBytes(row, x, v)
	}
}

// CountPixels returns the number of ON pixels of a 1 bpp image, or the
// number of non-zero samples at other depths.
func (img *Image) CountPixels() int {
	n := 0
	if img.depth.Info().IsBinary {
		for _, w := range img.data {
			n += bits.OnesCount32(w)
		}
		return n
	}
	for y := range img.height {
		row := img.Row(y)
		for x := range img.width {
			if Sample(row, x, img.depth) != 0 {
				n++
			}
		}
	}
	return n
}
