// Package fill implements the propagation kernels behind morph's seedfill
// and distance functions.
//
// Every kernel performs one double sweep: a raster-order pass (top-left to
// bottom-right) followed by an anti-raster pass (bottom-right to top-left).
// Each pass lets a pixel take information from the neighbors the pass has
// already visited. Converge repeats a double sweep until the image stops
// changing.
//
// Kernels do not validate their arguments; the morph package does.
package fill

import "github.com/gogpu/morph/raster"

// MaxIters bounds the number of double sweeps run by Converge.
// Seedfills settle in a handful of sweeps; the bound only guarantees
// termination.
const MaxIters = 40

// Converge repeats sweep until img is unchanged by a full double sweep or
// MaxIters sweeps have run. It returns the number of sweeps run and
// whether img reached a fixed point.
func Converge(img *raster.Image, sweep func()) (int, bool) {
	return ConvergeN(img, MaxIters, sweep)
}

// ConvergeN is Converge with an explicit sweep limit.
func ConvergeN(img *raster.Image, maxIters int, sweep func()) (int, bool) {
	snapshot := raster.GetScratch(img.Width(), img.Height(), img.Depth())
	defer raster.PutScratch(snapshot)

	for i := 1; i <= maxIters; i++ {
		_ = snapshot.CopyFrom(img)
		sweep()
		if img.Equal(snapshot) {
			return i, true
		}
	}
	return maxIters, false
}
