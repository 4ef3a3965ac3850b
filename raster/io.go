package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("raster: empty data")
)

// Format is an encoded file format.
type Format uint8

const (
	// FormatPNG is Portable Network Graphics.
	FormatPNG Format = iota

	// FormatBMP is Windows bitmap.
	FormatBMP

	// FormatTIFF is Tagged Image File Format, deflate compressed.
	FormatTIFF
)

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatBMP:
		return "BMP"
	case FormatTIFF:
		return "TIFF"
	default:
		return "Unknown"
	}
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads an image file and converts it to the given depth.
// PNG, BMP and TIFF are detected from the content.
func Load(path string, depth Depth) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("raster: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, depth)
}

// DecodeBytes decodes an encoded image held in memory.
func DecodeBytes(data []byte, depth Depth) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), depth)
}

// Decode decodes an image from r and converts it to the given depth.
func Decode(r io.Reader, depth Depth) (*Image, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode: %w", err)
	}
	return FromImage(m, depth)
}

// Save writes the image to path in the format named by its extension.
func (img *Image) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("raster: create file: %w", err)
	}

	if err := img.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes the image to w in the given format.
func (img *Image) Encode(w io.Writer, format Format) error {
	m := img.ToImage()
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, m)
	case FormatBMP:
		err = bmp.Encode(w, m)
	case FormatTIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("raster: encode %v: %w", format, err)
	}
	return nil
}

// FromImage converts a standard library image to the given depth.
//
// For Depth1, dark pixels (luminance below one half) become ON, following
// the convention that foreground is printed black on white.
func FromImage(m image.Image, depth Depth) (*Image, error) {
	bounds := m.Bounds()
	img, err := New(bounds.Dx(), bounds.Dy(), depth)
	if err != nil {
		return nil, err
	}

	// Fast path for 8-bit gray sources
	if gray, ok := m.(*image.Gray); ok && depth != Depth16 {
		for y := range img.height {
			src := gray.Pix[y*gray.Stride : y*gray.Stride+img.width]
			row := img.Row(y)
			for x, v := range src {
				if depth == Depth1 {
					if v < 0x80 {
						SetBit(row, x)
					}
					continue
				}
				SetByte(row, x, uint32(v))
			}
		}
		return img, nil
	}

	for y := range img.height {
		row := img.Row(y)
		for x := range img.width {
			c := color.Gray16Model.Convert(m.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			switch depth {
			case Depth1:
				if c.Y < 0x8000 {
					SetBit(row, x)
				}
			case Depth8:
				SetByte(row, x, uint32(c.Y>>8))
			case Depth16:
				SetTwoBytes(row, x, uint32(c.Y))
			}
		}
	}
	return img, nil
}

// ToImage converts the image to a standard library image.
// Depth1 and Depth8 produce *image.Gray (ON pixels are black),
// Depth16 produces *image.Gray16.
func (img *Image) ToImage() image.Image {
	rect := image.Rect(0, 0, img.width, img.height)

	switch img.depth {
	case Depth16:
		gray16 := image.NewGray16(rect)
		for y := range img.height {
			row := img.Row(y)
			for x := range img.width {
				gray16.SetGray16(x, y, color.Gray16{Y: uint16(TwoBytes(row, x))})
			}
		}
		return gray16

	case Depth8:
		gray := image.NewGray(rect)
		for y := range img.height {
			row := img.Row(y)
			dst := gray.Pix[y*gray.Stride:]
			for x := range img.width {
				dst[x] = uint8(Byte(row, x))
			}
		}
		return gray

	default:
		gray := image.NewGray(rect)
		for y := range img.height {
			row := img.Row(y)
			dst := gray.Pix[y*gray.Stride:]
			for x := range img.width {
				if Bit(row, x) {
					dst[x] = 0
				} else {
					dst[x] = 0xff
				}
			}
		}
		return gray
	}
}
