package morph

import (
	"fmt"

	"github.com/gogpu/morph/internal/fill"
	"github.com/gogpu/morph/raster"
)

// DistanceFunction returns, for every ON pixel of the 1 bpp src, the
// length of the shortest chain of conn-adjacent steps to an OFF pixel.
// OFF pixels are 0, and so is every pixel on the image edge whatever its
// value in src. The result has depth outDepth, which must be 8 or 16;
// distances saturate at the depth's maximum.
//
// To measure background pixels' distance to the foreground, invert src
// first.
func DistanceFunction(src *raster.Image, conn raster.Connectivity, outDepth raster.Depth) (*raster.Image, error) {
	if err := checkImage("source", src, raster.Depth1); err != nil {
		return nil, err
	}
	if err := checkConnectivity(conn); err != nil {
		return nil, err
	}
	if outDepth != raster.Depth8 && outDepth != raster.Depth16 {
		return nil, fmt.Errorf("%w: output depth %v", ErrUnsupportedDepth, outDepth)
	}

	d, err := raster.New(src.Width(), src.Height(), outDepth)
	if err != nil {
		return nil, err
	}
	if err := d.SetMasked(src, 1); err != nil {
		return nil, err
	}
	d.SetBorder(1, 1, 1, 1, false)

	sweeps, ok := fill.Converge(d, func() { fill.Distance(d, conn) })
	logSweeps("distance", d.Width(), d.Height(), sweeps, ok)
	return d, nil
}
