// Package morph provides morphological reconstruction for packed rasters.
//
// # Overview
//
// The core of the package is seedfill: a seed image is grown inside a mask
// image until it stops changing. Growth runs as repeated double sweeps, a
// raster-order pass followed by an anti-raster pass, each pass letting a
// pixel take the value of the neighbors it has already visited. The loop
// compares the image with a snapshot after every double sweep and stops
// at the first sweep that changes nothing, or after MaxIters sweeps.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/morph"
//	    "github.com/gogpu/morph/raster"
//	)
//
//	src, err := raster.Load("page.png", raster.Depth1)
//	if err != nil {
//	    return err
//	}
//
//	// Background regions enclosed by foreground
//	holes, err := morph.HolesByFilling(src, raster.Conn4)
//
//	// Foreground not touching the image edge
//	inner, err := morph.RemoveBorderConnComps(src, raster.Conn8)
//
// # Operations
//
//   - SeedfillBinary: binary reconstruction of a 1 bpp seed under a 1 bpp mask
//   - SeedfillGray, SeedfillGrayInv: grayscale reconstruction by dilation
//     and by erosion of 8 bpp images
//   - DistanceFunction: city-block (Conn4) or chessboard (Conn8) distance of
//     each foreground pixel to the background
//   - HolesByFilling, FillClosedBorders, ExtractBorderConnComps,
//     RemoveBorderConnComps, FillBgFromBorder, FillHolesToBoundingRect:
//     compositions of seedfill with raster boolean algebra
//
// # Connectivity
//
// Growth follows raster.Conn4 (edge neighbors) or raster.Conn8 (edge and
// diagonal neighbors). Foreground and background pair up dually: the
// background regions bounded by 8-connected foreground are 4-connected,
// and the other way around.
//
// # Concurrency
//
// Every call is synchronous and touches only its arguments and one scratch
// image from a shared pool, so independent calls may run concurrently.
// Calls cannot be cancelled; a single sweep is never interrupted.
package morph
