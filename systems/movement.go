package systems

import (
	"fmt"
	"log"

	"github.com/lixenwraith/terminal-transport/components"
	"github.com/lixenwraith/terminal-transport/constants"
	"github.com/lixenwraith/terminal-transport/engine"
	"github.com/lixenwraith/terminal-transport/physics"
	"github.com/lixenwraith/terminal-transport/rail"
)

// MovementSystem integrates train physics and follows the rails
// Traffic lights are not consulted: a train runs through a red light.
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update advances every healthy train one tick in insertion order
func (s *MovementSystem) Update(world *engine.World) error {
	for i := range world.Trains {
		train := &world.Trains[i]
		if train.Faulted {
			continue
		}

		if err := advanceTrain(train, world.Network); err != nil {
			if world.FaultPolicy == engine.FaultIsolate {
				train.Faulted = true
				log.Printf("[MOVEMENT] train %d isolated: %v", i, err)
				continue
			}
			return fmt.Errorf("train %d: %w", i, err)
		}
	}
	return nil
}

// advanceTrain applies one physics step then moves the train the whole cells it earned
// Fractional velocity carries over, so a tick may move zero cells.
func advanceTrain(train *components.TrainComponent, network *rail.Network) error {
	cells := physics.Integrate(train)
	for range cells {
		if err := StepTrain(train, network); err != nil {
			return err
		}
	}
	return nil
}

// StepTrain moves the train one rail step
// The heading is resolved before any mutation, so a failed step leaves the train untouched.
// The body keeps its length: the oldest segment drops off and a new first segment
// is placed one step ahead of the previous first segment.
func StepTrain(train *components.TrainComponent, network *rail.Network) error {
	dir, err := network.NextDirection(train.Head, train.Heading)
	if err != nil {
		return err
	}
	delta := dir.Delta()

	train.Head = train.Head.Add(delta)
	if n := len(train.Body); n > 0 {
		first := train.Body[0]
		copy(train.Body[1:], train.Body[:n-1])
		train.Body[0] = first.Add(delta)
	}
	train.Heading = dir
	return nil
}
