package physics

import (
	"math"

	"github.com/lixenwraith/terminal-transport/components"
	"github.com/lixenwraith/terminal-transport/constants"
)

// Integrate performs one explicit Euler step with unit timestep under quadratic drag:
// a = (F - k*v^2) / m; v = v + a
// Returns the whole cells to travel this tick (velocity truncated toward zero).
// Mass must be strictly positive.
func Integrate(t *components.TrainComponent) int {
	t.Acceleration = (t.Force - constants.AirResistance*t.Velocity*t.Velocity) / t.Mass
	t.Velocity += t.Acceleration
	return int(t.Velocity)
}

// TerminalVelocity is the speed at which drag balances the applied force
func TerminalVelocity(force float64) float64 {
	return math.Sqrt(force / constants.AirResistance)
}
