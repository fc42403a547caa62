package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/terminal-transport/components"
	"github.com/lixenwraith/terminal-transport/core"
	"github.com/lixenwraith/terminal-transport/rail"
)

// System is an interface that all systems must implement
type System interface {
	Update(world *World) error
	Priority() int // Lower values run first
}

// FaultPolicy decides what happens when a train or light hits an invariant violation
type FaultPolicy int

const (
	// FaultAbort stops the tick and returns the error to the caller
	FaultAbort FaultPolicy = iota
	// FaultIsolate marks the offending entity Faulted and keeps ticking
	FaultIsolate
)

func (p FaultPolicy) String() string {
	switch p {
	case FaultAbort:
		return "abort"
	case FaultIsolate:
		return "isolate"
	default:
		return fmt.Sprintf("FaultPolicy(%d)", int(p))
	}
}

// ParseFaultPolicy maps "abort" or "isolate" to a policy
func ParseFaultPolicy(s string) (FaultPolicy, error) {
	switch s {
	case "abort", "":
		return FaultAbort, nil
	case "isolate":
		return FaultIsolate, nil
	}
	return FaultAbort, fmt.Errorf("unknown fault policy %q (want abort or isolate)", s)
}

// World is the simulation context: the static network and indexed entity collections
// Trains and lights are addressed by their stable insertion index.
// World is not safe for concurrent use; one goroutine owns it.
type World struct {
	RunID string

	Network   *rail.Network
	Occupancy *OccupancyGrid

	Trains []components.TrainComponent
	Lights []components.TrafficLightComponent

	FaultPolicy FaultPolicy

	systems []System
	tick    uint64
}

// NewWorld creates a world over the given network with an empty occupancy mask
func NewWorld(network *rail.Network) *World {
	return &World{
		RunID:     uuid.NewString(),
		Network:   network,
		Occupancy: NewOccupancyGrid(network),
	}
}

// AddTrain appends a train and returns its index
func (w *World) AddTrain(t components.TrainComponent) int {
	w.Trains = append(w.Trains, t)
	return len(w.Trains) - 1
}

// AddLight appends a traffic light and returns its index
func (w *World) AddLight(l components.TrafficLightComponent) int {
	w.Lights = append(w.Lights, l)
	return len(w.Lights) - 1
}

// AddSystem adds a system to the world keeping priority order
// Systems with equal priority keep insertion order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs one tick: every system in priority order
// The first system error ends the tick; the tick counter still advances
// so the failing tick number is reported.
func (w *World) Update() error {
	w.tick++
	for _, system := range w.systems {
		if err := system.Update(w); err != nil {
			return fmt.Errorf("tick %d: %w", w.tick, err)
		}
	}
	return nil
}

// Tick returns the number of ticks started
func (w *World) Tick() uint64 {
	return w.tick
}

// LightPositions returns the set of all traffic light cells
func (w *World) LightPositions() map[core.Point]struct{} {
	set := make(map[core.Point]struct{}, len(w.Lights))
	for i := range w.Lights {
		set[w.Lights[i].Position] = struct{}{}
	}
	return set
}

// TrainCells returns the set of all cells covered by any train body
func (w *World) TrainCells() map[core.Point]struct{} {
	set := make(map[core.Point]struct{})
	for i := range w.Trains {
		for _, p := range w.Trains[i].Body {
			set[p] = struct{}{}
		}
	}
	return set
}
