package morph

import (
	"github.com/gogpu/morph/label"
	"github.com/gogpu/morph/raster"
)

// FillHolesToBoundingRect fills components of the 1 bpp src that are
// nearly solid. For each 8-connected component with fgArea pixels,
// holeArea 4-connected hole pixels and a bounding box of boxArea pixels:
//
//   - holes count toward the foreground when holeArea/fgArea is at most
//     the max hole fraction;
//   - if the foreground (with counted holes) covers at least the min
//     foreground fraction of the box, the whole box is filled;
//   - otherwise, if the holes count and number at least the min size,
//     only the holes are filled;
//   - otherwise the component is left as is.
//
// The source is not modified.
func FillHolesToBoundingRect(src *raster.Image, opts ...RectFillOption) (*raster.Image, error) {
	if err := checkImage("source", src, raster.Depth1); err != nil {
		return nil, err
	}
	o := defaultRectFillOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	// Holes of 8-connected components are 4-connected.
	conn := raster.Conn8
	comps, err := label.Components(src, conn)
	if err != nil {
		return nil, err
	}

	d := src.Clone()
	var rects, filled int
	for _, c := range comps {
		holes, err := HolesByFilling(c.Mask, conn.Dual())
		if err != nil {
			return nil, err
		}
		fgArea := c.Area
		holeArea := holes.CountPixels()
		boxArea := c.Box.Dx() * c.Box.Dy()

		countHoles := float64(holeArea)/float64(fgArea) <= o.maxHoleFraction
		total := fgArea
		if countHoles {
			total += holeArea
		}

		x, y, w, h := c.Box.Min.X, c.Box.Min.Y, c.Box.Dx(), c.Box.Dy()
		switch {
		case float64(total)/float64(boxArea) >= o.minFgFraction:
			err = d.Rasterop(x, y, w, h, raster.OpSet, nil, 0, 0)
			rects++
		case countHoles && holeArea >= o.minSize:
			err = d.Rasterop(x, y, w, h, raster.OpOr, holes, 0, 0)
			filled++
		}
		if err != nil {
			return nil, err
		}
	}

	Logger().Debug("morph: fill holes to bounding rect",
		"components", len(comps), "rects", rects, "holes", filled)
	return d, nil
}
