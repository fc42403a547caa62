package core

import "fmt"

// Point is a grid cell coordinate
// Validity against a grid is the grid's responsibility
type Point struct {
	X, Y int
}

// P is shorthand for Point{X: x, Y: y}
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
