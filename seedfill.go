package morph

import (
	"fmt"

	"github.com/gogpu/morph/internal/fill"
	"github.com/gogpu/morph/raster"
)

// MaxIters is the largest number of double sweeps any call will run.
// Seedfills normally settle in about four; reaching the bound is not an
// error and the current approximation is returned.
const MaxIters = fill.MaxIters

// SeedfillBinary grows the 1 bpp seed inside the 1 bpp filling mask until
// no pixel can be added: the result is every ON pixel of mask that is
// joined under conn to an ON pixel of seed by a chain of mask pixels.
//
// The result has the size of seed. Mask pixels outside the mask's extent
// read as OFF, so seed pixels there are dropped. The mask is never
// modified.
//
// dst selects where the result goes:
//   - nil: a new image is returned
//   - seed: the fill is done in place
//   - any other image: seed is copied into it first; it must match seed's size
func SeedfillBinary(dst, seed, mask *raster.Image, conn raster.Connectivity) (*raster.Image, error) {
	if err := checkImage("seed", seed, raster.Depth1); err != nil {
		return nil, err
	}
	if err := checkImage("mask", mask, raster.Depth1); err != nil {
		return nil, err
	}
	if err := checkConnectivity(conn); err != nil {
		return nil, err
	}

	switch dst {
	case nil:
		dst = seed.Clone()
	case mask:
		return nil, ErrMaskAliased
	case seed:
	default:
		if err := dst.CopyFrom(seed); err != nil {
			return nil, fmt.Errorf("morph: seedfill destination: %w", err)
		}
	}

	sweeps, ok := fill.Converge(dst, func() { fill.Binary(dst, mask, conn) })
	logSweeps("seedfill binary", dst.Width(), dst.Height(), sweeps, ok)
	return dst, nil
}

// SeedfillGray performs grayscale reconstruction by dilation in place:
// the 8 bpp seed is raised toward its neighbors' values but never above
// the 8 bpp mask. seed and mask must have the same size, and seed should
// not exceed mask anywhere.
func SeedfillGray(seed, mask *raster.Image, conn raster.Connectivity) error {
	if err := checkGray(seed, mask, conn); err != nil {
		return err
	}
	sweeps, ok := fill.Converge(seed, func() { fill.Gray(seed, mask, conn) })
	logSweeps("seedfill gray", seed.Width(), seed.Height(), sweeps, ok)
	return nil
}

// SeedfillGrayInv performs grayscale reconstruction by erosion in place:
// the 8 bpp seed is lowered toward its neighbors' values but never below
// the 8 bpp mask. seed and mask must have the same size, and seed should
// not be below mask anywhere.
func SeedfillGrayInv(seed, mask *raster.Image, conn raster.Connectivity) error {
	if err := checkGray(seed, mask, conn); err != nil {
		return err
	}
	sweeps, ok := fill.Converge(seed, func() { fill.GrayInv(seed, mask, conn) })
	logSweeps("seedfill gray inverse", seed.Width(), seed.Height(), sweeps, ok)
	return nil
}

func checkGray(seed, mask *raster.Image, conn raster.Connectivity) error {
	if err := checkImage("seed", seed, raster.Depth8); err != nil {
		return err
	}
	if err := checkImage("mask", mask, raster.Depth8); err != nil {
		return err
	}
	if !seed.SameSize(mask) {
		return fmt.Errorf("%w: seed %dx%d, mask %dx%d", ErrSizeMismatch,
			seed.Width(), seed.Height(), mask.Width(), mask.Height())
	}
	return checkConnectivity(conn)
}
