package rail

import (
	"fmt"

	"github.com/lixenwraith/terminal-transport/core"
)

// Network is the static tile grid and its direction rules
// Tiles are stored row-major: index = y*width + x
type Network struct {
	width, height int
	tiles         []Shape
}

// turnKey identifies an entry into a tile
type turnKey struct {
	shape   Shape
	heading core.Direction
}

// exits is the complete direction rule table
// Any (shape, heading) pair absent here has no physically continuous path
var exits = map[turnKey]core.Direction{
	{Horizontal, core.Right}: core.Right,
	{Horizontal, core.Left}:  core.Left,

	{Vertical, core.Up}:   core.Up,
	{Vertical, core.Down}: core.Down,

	{TurnTopLeft, core.Down}:  core.Left,
	{TurnTopLeft, core.Right}: core.Up,

	{TurnTopRight, core.Down}: core.Right,
	{TurnTopRight, core.Left}: core.Up,

	{TurnBottomRight, core.Up}:   core.Right,
	{TurnBottomRight, core.Left}: core.Down,

	{TurnBottomLeft, core.Up}:    core.Left,
	{TurnBottomLeft, core.Right}: core.Down,
}

// NewEmpty creates a w×h network of Empty tiles
func NewEmpty(w, h int) (*Network, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("network size must be positive, got %dx%d", w, h)
	}
	return &Network{
		width:  w,
		height: h,
		tiles:  make([]Shape, w*h),
	}, nil
}

// SimpleRing builds a closed rectangular loop on the border of a w×h grid
// Corners turn, edges are straight, the interior stays Empty
func SimpleRing(w, h int) (*Network, error) {
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("ring needs at least 2x2 tiles, got %dx%d", w, h)
	}
	n, err := NewEmpty(w, h)
	if err != nil {
		return nil, err
	}

	n.put(core.P(0, 0), TurnBottomRight)
	n.put(core.P(w-1, 0), TurnBottomLeft)
	n.put(core.P(0, h-1), TurnTopRight)
	n.put(core.P(w-1, h-1), TurnTopLeft)

	n.horizontalLine(1, w-2, 0)
	n.horizontalLine(1, w-2, h-1)
	n.verticalLine(1, h-2, 0)
	n.verticalLine(1, h-2, w-1)

	return n, nil
}

func (n *Network) put(p core.Point, s Shape) {
	n.tiles[n.Index(p)] = s
}

// horizontalLine fills [x1, x2] on row y; empty when x1 > x2
func (n *Network) horizontalLine(x1, x2, y int) {
	for x := x1; x <= x2; x++ {
		n.put(core.P(x, y), Horizontal)
	}
}

func (n *Network) verticalLine(y1, y2, x int) {
	for y := y1; y <= y2; y++ {
		n.put(core.P(x, y), Vertical)
	}
}

// Width returns the number of columns
func (n *Network) Width() int { return n.width }

// Height returns the number of rows
func (n *Network) Height() int { return n.height }

// Len returns the tile count
func (n *Network) Len() int { return len(n.tiles) }

// Index maps a point to its tile slot without bounds checks
func (n *Network) Index(p core.Point) int {
	return p.Y*n.width + p.X
}

// Contains reports whether p lies on the grid
func (n *Network) Contains(p core.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < n.width && p.Y < n.height
}

// TileAt returns the shape at p
// Querying an off-grid point is a caller bug and panics on slice bounds
func (n *Network) TileAt(p core.Point) Shape {
	return n.tiles[n.Index(p)]
}

// NextDirection resolves the heading on which a mover leaves tile p
// when it entered heading d
func (n *Network) NextDirection(p core.Point, d core.Direction) (core.Direction, error) {
	shape := n.TileAt(p)
	if out, ok := exits[turnKey{shape, d}]; ok {
		return out, nil
	}
	return d, &InvariantViolation{At: p, Shape: shape, Heading: d}
}

// MustNextDirection is NextDirection for callers that abort on violations
func (n *Network) MustNextDirection(p core.Point, d core.Direction) core.Direction {
	out, err := n.NextDirection(p, d)
	if err != nil {
		panic(err)
	}
	return out
}

// Step resolves the exit heading at p and returns the neighbouring cell along it
func (n *Network) Step(p core.Point, d core.Direction) (core.Point, core.Direction, error) {
	out, err := n.NextDirection(p, d)
	if err != nil {
		return p, d, err
	}
	return p.Add(out.Delta()), out, nil
}

// Connects reports whether a mover on from can roll onto the adjacent cell to:
// from has some path leaving toward to, and to accepts entry on that heading
func (n *Network) Connects(from, to core.Point) bool {
	if !n.Contains(from) || !n.Contains(to) {
		return false
	}
	d, ok := core.DirectionTo(from, to)
	if !ok {
		return false
	}
	if _, ok := exits[turnKey{n.TileAt(to), d}]; !ok {
		return false
	}

	shape := n.TileAt(from)
	for _, in := range core.Directions {
		if out, ok := exits[turnKey{shape, in}]; ok && out == d {
			return true
		}
	}
	return false
}
