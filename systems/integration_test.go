package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/terminal-transport/components"
	"github.com/lixenwraith/terminal-transport/core"
)

func TestDefaultRunTurnsIntoTopEdge(t *testing.T) {
	world := newRingWorld(t, 20, 10)
	addDefaultLights(world)
	world.AddTrain(defaultTrain())

	// Tick 1: v=0.6, no movement
	require.NoError(t, world.Update())
	assert.Equal(t, core.P(0, 1), world.Trains[0].Head)

	// Tick 2: v=1.128, one cell up into the corner
	require.NoError(t, world.Update())
	assert.Equal(t, core.P(0, 0), world.Trains[0].Head)
	assert.Equal(t, core.Up, world.Trains[0].Heading)

	// Tick 3: the corner sends the train right
	require.NoError(t, world.Update())
	assert.Equal(t, core.P(1, 0), world.Trains[0].Head)
	assert.Equal(t, core.Right, world.Trains[0].Heading)

	// Further ticks continue along the top edge
	for i := 0; i < 3; i++ {
		require.NoError(t, world.Update())
	}
	head := world.Trains[0].Head
	assert.Equal(t, 0, head.Y)
	assert.Greater(t, head.X, 1)
	assert.Equal(t, core.Right, world.Trains[0].Heading)
	requireChain(t, world, world.Trains[0])
}

func TestLightsFollowTrainAroundRing(t *testing.T) {
	world := newRingWorld(t, 20, 10)
	addDefaultLights(world)
	world.AddTrain(defaultTrain())

	for tick := 0; tick < 200; tick++ {
		require.NoError(t, world.Update(), "tick %d", tick)

		train := world.Trains[0]
		requireChain(t, world, train)
		for i, l := range world.Lights {
			occupied := false
			for _, p := range l.Zone {
				if train.Occupies(p) {
					occupied = true
					break
				}
			}
			assert.Equal(t, !occupied, l.Green, "tick %d light %d", tick, i)
			for _, p := range l.Zone {
				assert.Equal(t, occupied, world.Occupancy.At(p), "tick %d light %d cell %v", tick, i, p)
			}
		}
	}
}

func TestTrainRunsThroughRedLight(t *testing.T) {
	world := newRingWorld(t, 20, 10)
	addDefaultLights(world)

	// A parked train holds the top light's zone red
	world.AddTrain(components.TrainComponent{
		Head:    core.P(15, 0),
		Body:    []core.Point{core.P(15, 0), core.P(14, 0)},
		Mass:    1e12,
		Force:   1e-12,
		Heading: core.Right,
	})
	moving := defaultTrain()
	moving.Velocity = 1.7
	world.AddTrain(moving)

	passedRed := false
	for tick := 0; tick < 20; tick++ {
		require.NoError(t, world.Update())
		head := world.Trains[1].Head
		if head.Y == 0 && head.X > 5 && head.X < 14 {
			assert.False(t, world.Lights[0].Green)
			passedRed = true
			break
		}
	}
	assert.True(t, passedRed, "nothing stops a train at a red light")
	assert.Equal(t, core.P(15, 0), world.Trains[0].Head, "parked train never moves")
}
