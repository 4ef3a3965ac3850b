package morph

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/morph/raster"
)

// Test helper functions shared across morph tests.

// bitmap builds a 1 bpp image from rows of text where '#' is ON and any
// other character is OFF. Spaces are ignored so rows can be written
// spaced out.
func bitmap(t testing.TB, rows ...string) *raster.Image {
	t.Helper()
	for i, r := range rows {
		rows[i] = strings.ReplaceAll(r, " ", "")
	}
	img, err := raster.New(len(rows[0]), len(rows), raster.Depth1)
	require.NoError(t, err)
	for y, r := range rows {
		require.Len(t, r, img.Width(), "row %d", y)
		for x, c := range r {
			if c == '#' {
				img.SetPixel(x, y, 1)
			}
		}
	}
	return img
}

// grayRow builds a one-row 8 bpp image.
func grayRow(t testing.TB, vals ...uint32) *raster.Image {
	t.Helper()
	img, err := raster.New(len(vals), 1, raster.Depth8)
	require.NoError(t, err)
	for x, v := range vals {
		img.SetPixel(x, 0, v)
	}
	return img
}

// samples returns the samples of a one-row image.
func samples(img *raster.Image) []uint32 {
	out := make([]uint32, img.Width())
	for x := range out {
		out[x] = img.Pixel(x, 0)
	}
	return out
}

// randomBinary returns a w×h 1 bpp image with each pixel ON with
// probability p.
func randomBinary(t testing.TB, r *rand.Rand, w, h int, p float64) *raster.Image {
	t.Helper()
	img, err := raster.New(w, h, raster.Depth1)
	require.NoError(t, err)
	for y := range h {
		for x := range w {
			if r.Float64() < p {
				img.SetPixel(x, y, 1)
			}
		}
	}
	return img
}

// randomGray returns a w×h 8 bpp image of uniform random samples.
func randomGray(t testing.TB, r *rand.Rand, w, h int) *raster.Image {
	t.Helper()
	img, err := raster.New(w, h, raster.Depth8)
	require.NoError(t, err)
	for y := range h {
		for x := range w {
			img.SetPixel(x, y, r.Uint32N(256))
		}
	}
	return img
}

// subset reports whether every ON pixel of a is ON in b.
func subset(a, b *raster.Image) bool {
	for y := range a.Height() {
		for x := range a.Width() {
			if a.Pixel(x, y) != 0 && b.Pixel(x, y) == 0 {
				return false
			}
		}
	}
	return true
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
