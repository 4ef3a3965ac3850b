package raster

// Depth is the number of bits per sample of an Image.
type Depth uint8

const (
	// Depth1 is a binary image, 32 pixels per word.
	// A set bit is foreground (ON), a clear bit is background (OFF).
	Depth1 Depth = 1

	// Depth8 is 8-bit grayscale, 4 pixels per word.
	Depth8 Depth = 8

	// Depth16 is 16-bit grayscale, 2 pixels per word.
	Depth16 Depth = 16
)

// DepthInfo contains metadata about a sample depth.
type DepthInfo struct {
	// PixelsPerWord is the number of samples packed into one 32-bit word.
	PixelsPerWord int

	// MaxValue is the largest sample value.
	MaxValue uint32

	// IsBinary indicates a 1 bit per pixel image.
	IsBinary bool
}

var depthInfoTable = map[Depth]DepthInfo{
	Depth1:  {PixelsPerWord: 32, MaxValue: 1, IsBinary: true},
	Depth8:  {PixelsPerWord: 4, MaxValue: 0xff},
	Depth16: {PixelsPerWord: 2, MaxValue: 0xffff},
}

// Info returns the DepthInfo for this depth.
// The zero DepthInfo is returned for unknown depths.
func (d Depth) Info() DepthInfo {
	return depthInfoTable[d]
}

// IsValid returns true if d is one of Depth1, Depth8 or Depth16.
func (d Depth) IsValid() bool {
	_, ok := depthInfoTable[d]
	return ok
}

// MaxValue returns the largest sample value representable at this depth.
func (d Depth) MaxValue() uint32 {
	return d.Info().MaxValue
}

// WordsPerLine returns the number of 32-bit words needed for a row of the
// given width, or 0 for an unknown depth.
func (d Depth) WordsPerLine(width int) int {
	ppw := d.Info().PixelsPerWord
	if ppw == 0 {
		return 0
	}
	return (width + ppw - 1) / ppw
}

// String returns a string representation of the depth.
func (d Depth) String() string {
	switch d {
	case Depth1:
		return "1bpp"
	case Depth8:
		return "8bpp"
	case Depth16:
		return "16bpp"
	default:
		return "Unknown"
	}
}
