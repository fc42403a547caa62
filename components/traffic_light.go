package components

import "github.com/lixenwraith/terminal-transport/core"

// TrafficLightComponent governs trains travelling in Facing past Position
type TrafficLightComponent struct {
	Position core.Point
	Facing   core.Direction
	Green    bool

	// Zone is the responsibility zone computed on the last tick
	Zone []core.Point

	Faulted bool
}
