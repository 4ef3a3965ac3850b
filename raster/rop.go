package raster

// Op is a boolean raster operation combining a source sample S with a
// destination sample D. At depths above 1 the operation is applied to the
// bits of the sample values.
type Op uint8

const (
	// OpClear sets D to 0.
	OpClear Op = iota

	// OpSet sets D to the depth's maximum value.
	OpSet

	// OpSrc copies S into D.
	OpSrc

	// OpNotSrc copies the complement of S into D.
	OpNotSrc

	// OpAnd computes D & S.
	OpAnd

	// OpOr computes D | S.
	OpOr

	// OpXor computes D ^ S.
	OpXor

	// OpSubtract computes D & ^S.
	OpSubtract

	// OpNotDst complements D.
	OpNotDst
)

const unknownOp = "Unknown"

// String returns a string representation of the operation.
func (o Op) String() string {
	switch o {
	case OpClear:
		return "Clear"
	case OpSet:
		return "Set"
	case OpSrc:
		return "Src"
	case OpNotSrc:
		return "NotSrc"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	case OpXor:
		return "Xor"
	case OpSubtract:
		return "Subtract"
	case OpNotDst:
		return "NotDst"
	default:
		return unknownOp
	}
}

// UsesSource reports whether the operation reads a source image.
func (o Op) UsesSource() bool {
	switch o {
	case OpClear, OpSet, OpNotDst:
		return false
	default:
		return true
	}
}

func (o Op) apply(d, s uint32) uint32 {
	switch o {
	case OpClear:
		return 0
	case OpSet:
		return 0xffffffff
	case OpSrc:
		return s
	case OpNotSrc:
		return ^s
	case OpAnd:
		return d & s
	case OpOr:
		return d | s
	case OpXor:
		return d ^ s
	case OpSubtract:
		return d &^ s
	case OpNotDst:
		return ^d
	default:
		return d
	}
}

// Rasterop combines the w×h rectangle of src at (sx, sy) into the w×h
// rectangle of img at (dx, dy) using op. The rectangles are clipped to both
// images; a fully clipped operation is a no-op. src may be nil for
// operations that do not read a source.
func (img *Image) Rasterop(dx, dy, w, h int, op Op, src *Image, sx, sy int) error {
	if !op.UsesSource() {
		src = nil
	} else if src == nil {
		return ErrNilImage
	}
	if src != nil && src.depth != img.depth {
		return ErrDepthMismatch
	}

	// Clip against the destination, then the source.
	if dx < 0 {
		sx -= dx
		w += dx
		dx = 0
	}
	if dy < 0 {
		sy -= dy
		h += dy
		dy = 0
	}
	w = min(w, img.width-dx)
	h = min(h, img.height-dy)
	if src != nil {
		if sx < 0 {
			dx -= sx
			w += sx
			sx = 0
		}
		if sy < 0 {
			dy -= sy
			h += sy
			sy = 0
		}
		w = min(w, src.width-sx)
		h = min(h, src.height-sy)
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	if dx == 0 && (src == nil || sx == 0) {
		img.ropAligned(dy, w, h, op, src, sy)
		return nil
	}
	img.ropGeneral(dx, dy, w, h, op, src, sx, sy)
	return nil
}

// ropAligned handles rectangles starting at column 0 in both images,
// where rows can be combined a word at a time.
func (img *Image) ropAligned(dy, w, h int, op Op, src *Image, sy int) {
	nbits := w * int(img.depth)
	full := nbits >> 5
	rem := nbits & 31

	for y := range h {
		drow := img.Row(dy + y)
		var srow []uint32
		if src != nil {
			srow = src.Row(sy + y)
		}
		for j := range full {
			var s uint32
			if srow != nil {
				s = srow[j]
			}
			drow[j] = op.apply(drow[j], s)
		}
		if rem > 0 {
			var s uint32
			if srow != nil {
				s = srow[full]
			}
			m := uint32(0xffffffff) << (32 - rem)
			drow[full] = (drow[full] &^ m) | (op.apply(drow[full], s) & m)
		}
	}
}

func (img *Image) ropGeneral(dx, dy, w, h int, op Op, src *Image, sx, sy int) {
	maxv := img.depth.MaxValue()
	for y := range h {
		drow := img.Row(dy + y)
		var srow []uint32
		if src != nil {
			srow = src.Row(sy + y)
		}
		for x := range w {
			var s uint32
			if srow != nil {
				s = Sample(srow, sx+x, img.depth)
			}
			d := Sample(drow, dx+x, img.depth)
			SetSample(drow, dx+x, img.depth, op.apply(d, s)&maxv)
		}
	}
}

// Invert complements every sample in place.
func (img *Image) Invert() {
	_ = img.Rasterop(0, 0, img.width, img.height, OpNotDst, nil, 0, 0)
}

// And computes img &= src over the overlap of the two images.
func (img *Image) And(src *Image) error {
	return img.Rasterop(0, 0, img.width, img.height, OpAnd, src, 0, 0)
}

// Or computes img |= src over the overlap of the two images.
func (img *Image) Or(src *Image) error {
	return img.Rasterop(0, 0, img.width, img.height, OpOr, src, 0, 0)
}

// Xor computes img ^= src over the overlap of the two images.
func (img *Image) Xor(src *Image) error {
	return img.Rasterop(0, 0, img.width, img.height, OpXor, src, 0, 0)
}

// Subtract computes img &^= src over the overlap of the two images.
func (img *Image) Subtract(src *Image) error {
	return img.Rasterop(0, 0, img.width, img.height, OpSubtract, src, 0, 0)
}

// SetBorder sets (on) or clears (!on) bands of the given widths along the
// left, right, top and bottom edges of the image.
func (img *Image) SetBorder(left, right, top, bottom int, on bool) {
	op := OpClear
	if on {
		op = OpSet
	}
	w, h := img.width, img.height
	_ = img.Rasterop(0, 0, left, h, op, nil, 0, 0)
	_ = img.Rasterop(w-right, 0, right, h, op, nil, 0, 0)
	_ = img.Rasterop(0, 0, w, top, op, nil, 0, 0)
	_ = img.Rasterop(0, h-bottom, w, bottom, op, nil, 0, 0)
}
