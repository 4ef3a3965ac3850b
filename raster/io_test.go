package raster

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPattern(t *testing.T, w, h int, depth Depth) *Image {
	t.Helper()
	img, err := New(w, h, depth)
	require.NoError(t, err)
	maxv := depth.MaxValue()
	for y := range h {
		for x := range w {
			img.SetPixel(x, y, uint32(x*31+y*17)%(maxv+1))
		}
	}
	return img
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		format Format
		depth  Depth
	}{
		{FormatPNG, Depth1},
		{FormatPNG, Depth8},
		{FormatPNG, Depth16},
		{FormatBMP, Depth1},
		{FormatBMP, Depth8},
		{FormatTIFF, Depth1},
		{FormatTIFF, Depth8},
		{FormatTIFF, Depth16},
	}

	for _, tt := range tests {
		t.Run(tt.format.String()+"/"+tt.depth.String(), func(t *testing.T) {
			img := testPattern(t, 45, 13, tt.depth)

			var buf bytes.Buffer
			require.NoError(t, img.Encode(&buf, tt.format))
			got, err := DecodeBytes(buf.Bytes(), tt.depth)
			require.NoError(t, err)
			assert.True(t, got.Equal(img), "decoded image differs")
		})
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	img := testPattern(t, 20, 20, Depth1)

	for _, name := range []string{"a.png", "b.bmp", "c.tif", "d.TIFF"} {
		path := filepath.Join(dir, name)
		require.NoError(t, img.Save(path), name)
		got, err := Load(path, Depth1)
		require.NoError(t, err, name)
		assert.True(t, got.Equal(img), "%s: loaded image differs", name)
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	img, _ := New(2, 2, Depth1)
	path := filepath.Join(t.TempDir(), "x.jpg")
	assert.ErrorIs(t, img.Save(path), ErrUnsupportedFormat)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Save() created a file for an unsupported format")
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	img, _ := New(2, 2, Depth1)
	assert.ErrorIs(t, img.Encode(&bytes.Buffer{}, Format(9)), ErrUnsupportedFormat)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), Depth1)
	assert.Error(t, err)
}

func TestDecode_InvalidData(t *testing.T) {
	_, err := DecodeBytes(nil, Depth8)
	assert.ErrorIs(t, err, ErrEmptyData)

	_, err = DecodeBytes([]byte("not an image"), Depth8)
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr error
	}{
		{"a.png", FormatPNG, nil},
		{"dir/b.PNG", FormatPNG, nil},
		{"c.bmp", FormatBMP, nil},
		{"d.tif", FormatTIFF, nil},
		{"e.tiff", FormatTIFF, nil},
		{"f.gif", 0, ErrUnsupportedFormat},
		{"noext", 0, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestFromImage_Threshold(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 1))
	rgba.Set(0, 0, color.Black)
	rgba.Set(1, 0, color.White)
	rgba.Set(2, 0, color.RGBA{R: 40, G: 40, B: 40, A: 255})

	img, err := FromImage(rgba, Depth1)
	require.NoError(t, err)
	for x, want := range []uint32{1, 0, 1} {
		assert.Equal(t, want, img.Pixel(x, 0), "pixel %d", x)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	gray := image.NewGray16(image.Rect(5, 5, 8, 7))
	gray.SetGray16(6, 6, color.Gray16{Y: 1234})

	img, err := FromImage(gray, Depth16)
	require.NoError(t, err)
	require.Equal(t, 3, img.Width())
	require.Equal(t, 2, img.Height())
	assert.Equal(t, uint32(1234), img.Pixel(1, 1))
}

func TestToImage_Binary(t *testing.T) {
	img, _ := New(2, 1, Depth1)
	img.SetPixel(0, 0, 1)

	gray, ok := img.ToImage().(*image.Gray)
	require.True(t, ok, "ToImage() type = %T", img.ToImage())
	assert.Equal(t, []uint8{0, 0xff}, gray.Pix[:2])
}
