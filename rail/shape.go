package rail

// Shape is the geometric kind of a grid cell
type Shape uint8

const (
	Empty Shape = iota
	Horizontal
	Vertical
	TurnTopRight
	TurnBottomRight
	TurnBottomLeft
	TurnTopLeft
	TTop
	TRight
	TBottom
	TLeft
	Cross
	EndTop
	EndRight
	EndBottom
	EndLeft

	shapeCount
)

// shapeInfo holds per-shape lookup data, indexed by Shape
type shapeInfo struct {
	name       string
	glyph      rune // Idle track
	trainGlyph rune // Track under a train segment
}

var shapeTable = [shapeCount]shapeInfo{
	Empty:           {"Empty", ' ', ' '},
	Horizontal:      {"Horizontal", '─', '═'},
	Vertical:        {"Vertical", '│', '║'},
	TurnTopRight:    {"TurnTopRight", '╰', '╚'},
	TurnBottomRight: {"TurnBottomRight", '╭', '╔'},
	TurnBottomLeft:  {"TurnBottomLeft", '╮', '╗'},
	TurnTopLeft:     {"TurnTopLeft", '╯', '╝'},
	TTop:            {"TTop", '┴', '╩'},
	TRight:          {"TRight", '├', '╠'},
	TBottom:         {"TBottom", '┬', '╦'},
	TLeft:           {"TLeft", '┤', '╣'},
	Cross:           {"Cross", '┼', '╬'},
	EndTop:          {"EndTop", '╵', '╨'},
	EndRight:        {"EndRight", '╶', '╞'},
	EndBottom:       {"EndBottom", '╷', '╥'},
	EndLeft:         {"EndLeft", '╴', '╡'},
}

// Valid reports whether s is one of the defined shapes
func (s Shape) Valid() bool {
	return s < shapeCount
}

// Glyph returns the idle track rune
func (s Shape) Glyph() rune {
	if !s.Valid() {
		return '?'
	}
	return shapeTable[s].glyph
}

// TrainGlyph returns the rune drawn when a train occupies the tile
func (s Shape) TrainGlyph() rune {
	if !s.Valid() {
		return '?'
	}
	return shapeTable[s].trainGlyph
}

func (s Shape) String() string {
	if !s.Valid() {
		return "Shape(?)"
	}
	return shapeTable[s].name
}

// ShapeForGlyph maps an idle track rune back to its shape
// Space and '.' both read as Empty.
func ShapeForGlyph(r rune) (Shape, bool) {
	if r == '.' {
		return Empty, true
	}
	for s := Empty; s < shapeCount; s++ {
		if shapeTable[s].glyph == r {
			return s, true
		}
	}
	return Empty, false
}
