package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/terminal-transport/components"
	"github.com/lixenwraith/terminal-transport/constants"
	"github.com/lixenwraith/terminal-transport/core"
	"github.com/lixenwraith/terminal-transport/engine"
	"github.com/lixenwraith/terminal-transport/rail"
)

var (
	// ErrZoneUnbounded means a zone walk did not reach any light within the grid's cell count
	ErrZoneUnbounded = errors.New("responsibility zone does not reach a traffic light")

	// ErrZoneOffGrid means a zone walk left the grid
	ErrZoneOffGrid = errors.New("responsibility zone leaves the grid")
)

// SignalListener is notified when a light changes color
type SignalListener interface {
	SignalChanged(index int, light *components.TrafficLightComponent)
}

// TrafficSystem recomputes every light's responsibility zone and color each tick
// It must run after MovementSystem so it sees post-move train positions.
type TrafficSystem struct {
	listener SignalListener
}

// NewTrafficSystem creates a new traffic system; listener may be nil
func NewTrafficSystem(listener SignalListener) *TrafficSystem {
	return &TrafficSystem{listener: listener}
}

// Priority returns the system's priority
func (s *TrafficSystem) Priority() int {
	return constants.PriorityTraffic
}

// Update walks each light's zone, sets green iff the zone holds no train segment,
// and rewrites the occupancy mask from scratch
// Zones of a well-formed layout are disjoint; on overlap the later light's write wins.
func (s *TrafficSystem) Update(world *engine.World) error {
	lightCells := world.LightPositions()
	trainCells := world.TrainCells()

	world.Occupancy.Reset()

	for i := range world.Lights {
		light := &world.Lights[i]
		if light.Faulted {
			continue
		}

		zone, err := ResponsibilityZone(world.Network, light.Position, light.Facing, lightCells)
		if err != nil {
			if world.FaultPolicy == engine.FaultIsolate {
				light.Faulted = true
				light.Zone = nil
				log.Printf("[TRAFFIC] light %d isolated: %v", i, err)
				s.setSignal(world, i, light, false)
				continue
			}
			return fmt.Errorf("light %d at %v: %w", i, light.Position, err)
		}

		green := true
		for _, p := range zone {
			if _, ok := trainCells[p]; ok {
				green = false
				break
			}
		}

		for _, p := range zone {
			world.Occupancy.Set(p, !green)
		}

		light.Zone = zone
		s.setSignal(world, i, light, green)
	}
	return nil
}

// setSignal stores the light's color and reports a change to the log and listener
func (s *TrafficSystem) setSignal(world *engine.World, index int, light *components.TrafficLightComponent, green bool) {
	if light.Green == green {
		return
	}
	light.Green = green

	log.Printf("[TRAFFIC] tick %d light %d at %v -> %s", world.Tick(), index, light.Position, signalName(green))
	if s.listener != nil {
		s.listener.SignalChanged(index, light)
	}
}

// ResponsibilityZone walks the track from the cell after the light up to,
// but not including, the first cell holding any light
// The walk is bounded by the grid's cell count; a closed loop never needs more.
func ResponsibilityZone(network *rail.Network, from core.Point, facing core.Direction, lights map[core.Point]struct{}) ([]core.Point, error) {
	var zone []core.Point

	dir := facing
	cur := from.Add(facing.Delta())
	for steps := 0; ; steps++ {
		if _, ok := lights[cur]; ok {
			return zone, nil
		}
		if steps >= network.Len() {
			return zone, ErrZoneUnbounded
		}
		if !network.Contains(cur) {
			return zone, fmt.Errorf("%w at %v", ErrZoneOffGrid, cur)
		}

		zone = append(zone, cur)

		var err error
		cur, dir, err = network.Step(cur, dir)
		if err != nil {
			return zone, err
		}
	}
}

func signalName(green bool) string {
	if green {
		return "green"
	}
	return "red"
}
