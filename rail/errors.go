package rail

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/terminal-transport/core"
)

// ErrInvalidTravel is matched by every InvariantViolation via errors.Is
var ErrInvalidTravel = errors.New("invalid travel direction for rail shape")

// InvariantViolation reports a (shape, heading) pair with no continuous path.
// It means the map or a moving entity reached a geometrically impossible state
// and must not be retried.
type InvariantViolation struct {
	At      core.Point
	Shape   Shape
	Heading core.Direction
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("incorrect travel direction and rail shape combination at %v: %v, %v", e.At, e.Shape, e.Heading)
}

func (e *InvariantViolation) Unwrap() error {
	return ErrInvalidTravel
}
