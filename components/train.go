package components

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/terminal-transport/core"
)

// TrainComponent is one train: its trailing body chain and movement state
// Body is head-first: Body[0] is the newest segment, the last entry the oldest.
// Body length is fixed for the train's lifetime.
type TrainComponent struct {
	Head core.Point
	Body []core.Point

	Mass         float64        // Strictly positive
	Velocity     float64        // Cells per tick, fractional part carries over
	Acceleration float64        // Derived each tick, never set directly
	Force        float64        // Constant thrust, strictly positive
	Heading      core.Direction // Current direction of travel

	HeadColor tcell.Color
	BodyColor tcell.Color

	Faulted bool // Stopped after an invariant violation under the isolate policy
}

// Occupies reports whether any body segment is on p
func (t *TrainComponent) Occupies(p core.Point) bool {
	for _, seg := range t.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Length returns the number of body segments
func (t *TrainComponent) Length() int {
	return len(t.Body)
}
