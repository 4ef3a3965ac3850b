package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOp_String(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpClear, "Clear"},
		{OpSet, "Set"},
		{OpSrc, "Src"},
		{OpNotSrc, "NotSrc"},
		{OpAnd, "And"},
		{OpOr, "Or"},
		{OpXor, "Xor"},
		{OpSubtract, "Subtract"},
		{OpNotDst, "NotDst"},
		{Op(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

// ropPixel is the expected result of op on one binary pixel.
func ropPixel(op Op, d, s uint32) uint32 {
	return op.apply(d, s) & 1
}

func TestRasterop_Binary(t *testing.T) {
	ops := []Op{OpClear, OpSet, OpSrc, OpNotSrc, OpAnd, OpOr, OpXor, OpSubtract, OpNotDst}
	offsets := []struct {
		name           string
		dx, dy, sx, sy int
	}{
		{"aligned", 0, 0, 0, 0},
		{"aligned rows", 0, 3, 0, 1},
		{"shifted dst", 5, 1, 0, 0},
		{"shifted src", 0, 0, 7, 2},
		{"both shifted", 31, 2, 1, 0},
	}

	for _, op := range ops {
		for _, off := range offsets {
			t.Run(op.String()+"/"+off.name, func(t *testing.T) {
				dst, _ := New(70, 12, Depth1)
				src, _ := New(50, 9, Depth1)
				for y := range 12 {
					for x := range 70 {
						dst.SetPixel(x, y, uint32((x*3+y)%5&1))
					}
				}
				for y := range 9 {
					for x := range 50 {
						src.SetPixel(x, y, uint32((x+y*2)%3&1))
					}
				}
				orig := dst.Clone()
				w, h := 45, 6

				require.NoError(t, dst.Rasterop(off.dx, off.dy, w, h, op, src, off.sx, off.sy))

				for y := range 12 {
					for x := range 70 {
						want := orig.Pixel(x, y)
						lx, ly := x-off.dx, y-off.dy
						inSrc := !op.UsesSource() || (off.sx+lx < src.Width() && off.sy+ly < src.Height())
						if lx >= 0 && lx < w && ly >= 0 && ly < h && inSrc {
							want = ropPixel(op, want, src.Pixel(off.sx+lx, off.sy+ly))
						}
						require.Equal(t, want, dst.Pixel(x, y), "pixel (%d, %d)", x, y)
					}
				}
				for y := range 12 {
					require.Zero(t, dst.Row(y)[dst.WordsPerLine()-1]&^dst.TailMask(), "row %d padding", y)
				}
			})
		}
	}
}

func TestRasterop_Clipping(t *testing.T) {
	dst, _ := New(10, 10, Depth8)
	src, _ := New(4, 4, Depth8)
	src.SetAll()

	// Negative destination origin shifts the source window.
	require.NoError(t, dst.Rasterop(-2, -1, 4, 4, OpSrc, src, 0, 0))
	assert.Equal(t, 2*3, dst.CountPixels())

	// Fully outside is a no-op.
	dst.Clear()
	require.NoError(t, dst.Rasterop(20, 20, 4, 4, OpSet, nil, 0, 0))
	assert.True(t, dst.IsZero(), "clipped-out Rasterop() changed the image")

	// The source rectangle clips too.
	require.NoError(t, dst.Rasterop(0, 0, 10, 10, OpSrc, src, 2, 2))
	assert.Equal(t, 4, dst.CountPixels())
}

func TestRasterop_GrayMasksToDepth(t *testing.T) {
	img, _ := New(5, 1, Depth8)
	img.SetPixel(2, 0, 0x0f)

	// The unaligned path must not spill into neighbor samples.
	require.NoError(t, img.Rasterop(2, 0, 1, 1, OpNotDst, nil, 0, 0))
	assert.Equal(t, uint32(0xf0), img.Pixel(2, 0))
	assert.Zero(t, img.Pixel(1, 0))
	assert.Zero(t, img.Pixel(3, 0))
}

func TestRasterop_Errors(t *testing.T) {
	dst, _ := New(4, 4, Depth1)
	gray, _ := New(4, 4, Depth8)

	assert.ErrorIs(t, dst.Rasterop(0, 0, 4, 4, OpAnd, nil, 0, 0), ErrNilImage)
	assert.ErrorIs(t, dst.Rasterop(0, 0, 4, 4, OpOr, gray, 0, 0), ErrDepthMismatch)
	assert.NoError(t, dst.Rasterop(0, 0, 4, 4, OpClear, gray, 0, 0), "source of a source-free op is ignored")
}

func TestImage_Invert(t *testing.T) {
	img, _ := New(35, 2, Depth1)
	img.SetPixel(0, 0, 1)
	img.Invert()

	assert.Equal(t, 69, img.CountPixels())
	assert.Zero(t, img.Pixel(0, 0))

	gray, _ := New(3, 1, Depth8)
	gray.SetPixel(1, 0, 200)
	gray.Invert()
	assert.Equal(t, uint32(55), gray.Pixel(1, 0))
}

func TestImage_BooleanHelpers(t *testing.T) {
	a, _ := New(3, 1, Depth1)
	b, _ := New(3, 1, Depth1)
	a.SetPixel(0, 0, 1)
	a.SetPixel(1, 0, 1)
	b.SetPixel(1, 0, 1)
	b.SetPixel(2, 0, 1)

	tests := []struct {
		name string
		fn   func(dst, src *Image) error
		want [3]uint32
	}{
		{"And", (*Image).And, [3]uint32{0, 1, 0}},
		{"Or", (*Image).Or, [3]uint32{1, 1, 1}},
		{"Xor", (*Image).Xor, [3]uint32{1, 0, 1}},
		{"Subtract", (*Image).Subtract, [3]uint32{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := a.Clone()
			require.NoError(t, tt.fn(dst, b))
			for x, want := range tt.want {
				assert.Equal(t, want, dst.Pixel(x, 0), "pixel %d", x)
			}
		})
	}
}

func TestImage_SetBorder(t *testing.T) {
	img, _ := New(40, 6, Depth1)
	img.SetBorder(1, 2, 1, 1, true)

	for y := range 6 {
		for x := range 40 {
			want := uint32(0)
			if x < 1 || x >= 38 || y < 1 || y >= 5 {
				want = 1
			}
			require.Equal(t, want, img.Pixel(x, y), "pixel (%d, %d)", x, y)
		}
	}

	img.SetBorder(1, 2, 1, 1, false)
	assert.True(t, img.IsZero(), "clearing the border left pixels behind")
}
