package engine

import (
	"github.com/lixenwraith/terminal-transport/core"
	"github.com/lixenwraith/terminal-transport/rail"
)

// OccupancyGrid marks cells claimed red by some light's responsibility zone
// Parallel to the network tiles: same size, same row-major index.
type OccupancyGrid struct {
	width int
	cells []bool
}

// NewOccupancyGrid creates an all-clear mask sized to the network
func NewOccupancyGrid(n *rail.Network) *OccupancyGrid {
	return &OccupancyGrid{
		width: n.Width(),
		cells: make([]bool, n.Len()),
	}
}

// Reset clears every cell
func (g *OccupancyGrid) Reset() {
	clear(g.cells)
}

// Set writes the occupied flag for p
func (g *OccupancyGrid) Set(p core.Point, occupied bool) {
	g.cells[p.Y*g.width+p.X] = occupied
}

// At reports whether p is marked occupied
func (g *OccupancyGrid) At(p core.Point) bool {
	return g.cells[p.Y*g.width+p.X]
}

// Count returns the number of occupied cells
func (g *OccupancyGrid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Len returns the cell count
func (g *OccupancyGrid) Len() int {
	return len(g.cells)
}
