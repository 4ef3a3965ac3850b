package raster

import "strconv"

// Connectivity selects which neighbors of a pixel are adjacent to it.
// The numeric value is the size of the neighbor set.
type Connectivity int

const (
	// Conn4 uses edge neighbors only: N, E, S, W.
	Conn4 Connectivity = 4

	// Conn8 uses edge and diagonal neighbors: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = 8
)

// IsValid returns true for Conn4 and Conn8.
func (c Connectivity) IsValid() bool {
	return c == Conn4 || c == Conn8
}

// Dual returns the connectivity whose background regions pair with
// foreground regions of c: 8-connected foreground bounds 4-connected
// background and vice versa.
func (c Connectivity) Dual() Connectivity {
	if c == Conn4 {
		return Conn8
	}
	return Conn4
}

// Offsets returns the (dx, dy) neighbor offsets for c, edge neighbors first.
// Returns nil for an invalid connectivity.
func (c Connectivity) Offsets() [][2]int {
	switch c {
	case Conn4:
		return offsets4
	case Conn8:
		return offsets8
	default:
		return nil
	}
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// String returns a string representation of the connectivity.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	default:
		return "Connectivity(" + strconv.Itoa(int(c)) + ")"
	}
}
