package core

// Direction is a heading along one grid axis
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all headings in clockwise order starting Up
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the reversed heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

// Delta returns the unit displacement for one step in this direction
// Screen coordinates: y grows downward
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	default:
		return Point{X: -1, Y: 0}
	}
}

// DirectionTo returns the heading that moves a onto b when they are orthogonal neighbours
func DirectionTo(a, b Point) (Direction, bool) {
	for _, d := range Directions {
		if a.Add(d.Delta()) == b {
			return d, true
		}
	}
	return Up, false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Direction(?)"
	}
}

// ParseDirection maps a name ("Up", "up") or initial ("U", "u") to a Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "Up", "up", "U", "u":
		return Up, true
	case "Right", "right", "R", "r":
		return Right, true
	case "Down", "down", "D", "d":
		return Down, true
	case "Left", "left", "L", "l":
		return Left, true
	}
	return Up, false
}
