// Package label finds the connected components of a binary raster.
//
// A component is a maximal set of ON pixels in which every pair is joined
// by a chain of adjacent ON pixels, where adjacency follows the requested
// connectivity. The traversal itself is done by lvlath's gridgraph over a
// 0/1 grid built from the raster.
package label

import (
	"errors"
	"fmt"
	"image"

	"github.com/lvlath/go/gridgraph"

	"github.com/gogpu/morph/raster"
)

// Sentinel errors for labeling.
var (
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("label: nil image")
	// ErrUnsupportedDepth indicates a source that is not 1 bpp.
	ErrUnsupportedDepth = errors.New("label: source must be 1 bpp")
	// ErrInvalidConnectivity indicates a connectivity other than 4 or 8.
	ErrInvalidConnectivity = errors.New("label: connectivity must be 4 or 8")
	// ErrEmptyImage indicates a grid with no rows or no columns.
	ErrEmptyImage = errors.New("label: empty image")
)

// Component is one connected component of a binary raster.
type Component struct {
	// Box is the bounding rectangle of the component in source coordinates.
	Box image.Rectangle

	// Mask is a 1 bpp image the size of Box holding only this component's
	// pixels; other components overlapping the box are not included.
	Mask *raster.Image

	// Area is the number of pixels in the component.
	Area int
}

// onValue is the grid value of an ON pixel.
const onValue = 1

// Components returns the connected components of img under conn, ordered
// by the raster position of each component's first pixel.
func Components(img *raster.Image, conn raster.Connectivity) ([]Component, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if img.Depth() != raster.Depth1 {
		return nil, fmt.Errorf("%w: got %v", ErrUnsupportedDepth, img.Depth())
	}
	if !conn.IsValid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConnectivity, int(conn))
	}

	g, err := newGraph(grid(img), conn)
	if err != nil {
		return nil, err
	}

	// Scanning is row-major, so components arrive in raster order.
	cells := g.ConnectedComponents()[onValue]
	comps := make([]Component, 0, len(cells))
	for _, cs := range cells {
		c, err := component(cs)
		if err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}
	return comps, nil
}

// grid expands a 1 bpp image into rows of 0 and onValue.
func grid(img *raster.Image) [][]int {
	cells := make([][]int, img.Height())
	for y := range cells {
		row := img.Row(y)
		cells[y] = make([]int, img.Width())
		for x := range cells[y] {
			if raster.Bit(row, x) {
				cells[y][x] = onValue
			}
		}
	}
	return cells
}

// newGraph builds the grid graph for cells under conn.
func newGraph(cells [][]int, conn raster.Connectivity) (*gridgraph.GridGraph, error) {
	opts := gridgraph.GridOptions{LandThreshold: onValue, Conn: gridgraph.Conn4}
	if conn == raster.Conn8 {
		opts.Conn = gridgraph.Conn8
	}
	g, err := gridgraph.NewGridGraph(cells, opts)
	switch {
	case errors.Is(err, gridgraph.ErrEmptyGrid):
		return nil, fmt.Errorf("%w: %w", ErrEmptyImage, err)
	case err != nil:
		return nil, fmt.Errorf("label: %w", err)
	}
	return g, nil
}

// component builds the box, mask and area of one set of cells.
func component(cells []gridgraph.Cell) (Component, error) {
	box := image.Rect(cells[0].X, cells[0].Y, cells[0].X+1, cells[0].Y+1)
	for _, c := range cells[1:] {
		box = box.Union(image.Rect(c.X, c.Y, c.X+1, c.Y+1))
	}

	mask, err := raster.New(box.Dx(), box.Dy(), raster.Depth1)
	if err != nil {
		return Component{}, err
	}
	for _, c := range cells {
		raster.SetBit(mask.Row(c.Y-box.Min.Y), c.X-box.Min.X)
	}
	return Component{Box: box, Mask: mask, Area: len(cells)}, nil
}
