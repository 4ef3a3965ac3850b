package morph

import (
	"errors"
	"fmt"

	"github.com/gogpu/morph/raster"
)

// Precondition errors. Every function in this package reports a violated
// precondition by returning one of these, wrapped with detail, and a nil
// result.
var (
	// ErrNilImage is returned when a required image is nil.
	ErrNilImage = errors.New("morph: nil image")

	// ErrUnsupportedDepth is returned when an image or requested output
	// has a depth the operation does not accept.
	ErrUnsupportedDepth = errors.New("morph: unsupported depth")

	// ErrInvalidConnectivity is returned for a connectivity other than 4 or 8.
	ErrInvalidConnectivity = errors.New("morph: connectivity must be 4 or 8")

	// ErrSizeMismatch is returned when images that must share dimensions do not.
	ErrSizeMismatch = errors.New("morph: size mismatch")

	// ErrMaskAliased is returned when the destination of a fill is its mask.
	ErrMaskAliased = errors.New("morph: destination must not be the mask")

	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("morph: invalid option")
)

func checkImage(name string, img *raster.Image, depth raster.Depth) error {
	if img == nil {
		return fmt.Errorf("%w: %s", ErrNilImage, name)
	}
	if img.Depth() != depth {
		return fmt.Errorf("%w: %s is %v, want %v", ErrUnsupportedDepth, name, img.Depth(), depth)
	}
	return nil
}

func checkConnectivity(conn raster.Connectivity) error {
	if !conn.IsValid() {
		return fmt.Errorf("%w: got %d", ErrInvalidConnectivity, int(conn))
	}
	return nil
}
