// Package raster provides the packed raster container used by morph.
//
// An Image stores 1, 8 or 16 bit samples in row-major order. Every row
// starts on a 32-bit word boundary and samples are packed most significant
// first: pixel 0 of a 1 bpp row is bit 31 of word 0. Bits past the image
// width in the last word of a row are padding and are kept zero by every
// operation in this package, so whole rows can be compared and combined a
// word at a time.
package raster

import (
	"errors"
	"image"
	"slices"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrInvalidDepth is returned when the depth is not 1, 8 or 16.
	ErrInvalidDepth = errors.New("raster: invalid depth")

	// ErrDepthMismatch is returned when two images must share a depth but do not.
	ErrDepthMismatch = errors.New("raster: depth mismatch")

	// ErrSizeMismatch is returned when two images must share dimensions but do not.
	ErrSizeMismatch = errors.New("raster: size mismatch")

	// ErrOutOfBounds is returned when a region lies outside the image.
	ErrOutOfBounds = errors.New("raster: region out of bounds")

	// ErrNilImage is returned when a required image is nil.
	ErrNilImage = errors.New("raster: nil image")
)

// Image is a packed raster of width×height samples at a fixed depth.
//
// Image is not safe for concurrent mutation.
type Image struct {
	width  int
	height int
	depth  Depth
	wpl    int // words per line
	data   []uint32
}

// New creates a zeroed image with the given dimensions and depth.
func New(width, height int, depth Depth) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !depth.IsValid() {
		return nil, ErrInvalidDepth
	}

	wpl := depth.WordsPerLine(width)
	return &Image{
		width:  width,
		height: height,
		depth:  depth,
		wpl:    wpl,
		data:   make([]uint32, wpl*height),
	}, nil
}

// NewTemplate returns a zeroed image with the size and depth of img.
func (img *Image) NewTemplate() *Image {
	return &Image{
		width:  img.width,
		height: img.height,
		depth:  img.depth,
		wpl:    img.wpl,
		data:   make([]uint32, len(img.data)),
	}
}

// Clone creates a deep copy of the image.
func (img *Image) Clone() *Image {
	return &Image{
		width:  img.width,
		height: img.height,
		depth:  img.depth,
		wpl:    img.wpl,
		data:   slices.Clone(img.data),
	}
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Depth returns the sample depth.
func (img *Image) Depth() Depth { return img.depth }

// WordsPerLine returns the number of 32-bit words in each row.
func (img *Image) WordsPerLine() int { return img.wpl }

// Bounds returns the image dimensions as an image.Rectangle.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// Data returns the packed words of the whole image.
// Callers that write to it must keep the row padding bits zero.
func (img *Image) Data() []uint32 {
	return img.data
}

// Row returns the words of row y, or nil if y is out of bounds.
func (img *Image) Row(y int) []uint32 {
	if y < 0 || y >= img.height {
		return nil
	}
	return img.data[y*img.wpl : (y+1)*img.wpl]
}

// TailMask returns the mask of valid bits in the last word of each row.
func (img *Image) TailMask() uint32 {
	return TailMask(img.width, img.depth)
}

// TailMask returns the mask of valid bits in the last word of a row of
// the given width and depth.
func TailMask(width int, depth Depth) uint32 {
	bits := (width * int(depth)) & 31
	if bits == 0 {
		return 0xffffffff
	}
	return 0xffffffff << (32 - bits)
}

// SameSize reports whether img and other have the same width and height.
func (img *Image) SameSize(other *Image) bool {
	return other != nil && img.width == other.width && img.height == other.height
}

// Pixel returns the sample at (x, y).
// Returns 0 for coordinates outside the image.
func (img *Image) Pixel(x, y int) uint32 {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return 0
	}
	return Sample(img.Row(y), x, img.depth)
}

// SetPixel sets the sample at (x, y). Values above the depth's maximum
// are truncated to the depth. Coordinates outside the image are ignored.
func (img *Image) SetPixel(x, y int, v uint32) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	SetSample(img.Row(y), x, img.depth, v)
}

// CopyFrom copies the samples of src into img.
// Both images must have the same size and depth.
func (img *Image) CopyFrom(src *Image) error {
	if src == nil {
		return ErrNilImage
	}
	if src.depth != img.depth {
		return ErrDepthMismatch
	}
	if !img.SameSize(src) {
		return ErrSizeMismatch
	}
	copy(img.data, src.data)
	return nil
}

// Equal reports whether img and other have the same size, depth and samples.
func (img *Image) Equal(other *Image) bool {
	if other == nil || other.depth != img.depth || !img.SameSize(other) {
		return false
	}
	tail := img.TailMask()
	last := img.wpl - 1
	for y := range img.height {
		a, b := img.Row(y), other.Row(y)
		if !slices.Equal(a[:last], b[:last]) {
			return false
		}
		if (a[last]^b[last])&tail != 0 {
			return false
		}
	}
	return true
}

// Clear sets every sample to zero.
func (img *Image) Clear() {
	clear(img.data)
}

// SetAll sets every sample to the depth's maximum value.
func (img *Image) SetAll() {
	tail := img.TailMask()
	for y := range img.height {
		row := img.Row(y)
		for j := range row {
			row[j] = 0xffffffff
		}
		row[img.wpl-1] &= tail
	}
}

// IsZero reports whether every sample is zero.
func (img *Image) IsZero() bool {
	for _, w := range img.data {
		if w != 0 {
			return false
		}
	}
	return true
}

// Crop returns a new image holding the part of img inside r.
// r is clipped to the image bounds; an empty intersection is an error.
func (img *Image) Crop(r image.Rectangle) (*Image, error) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil, ErrOutOfBounds
	}
	dst, err := New(r.Dx(), r.Dy(), img.depth)
	if err != nil {
		return nil, err
	}
	if err := dst.Rasterop(0, 0, r.Dx(), r.Dy(), OpSrc, img, r.Min.X, r.Min.Y); err != nil {
		return nil, err
	}
	return dst, nil
}

// SetMasked sets every sample of img to v where the 1 bpp mask is ON.
// The mask is aligned with img at the origin and clipped to the overlap.
func (img *Image) SetMasked(mask *Image, v uint32) error {
	if mask == nil {
		return ErrNilImage
	}
	if !mask.depth.Info().IsBinary {
		return ErrDepthMismatch
	}
	w := min(img.width, mask.width)
	h := min(img.height, mask.height)
	for y := range h {
		mrow := mask.Row(y)
		row := img.Row(y)
		for x := range w {
			if Bit(mrow, x) {
				SetSample(row, x, img.depth, v)
			}
		}
	}
	return nil
}
