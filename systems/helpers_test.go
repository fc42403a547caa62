package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/terminal-transport/components"
	"github.com/lixenwraith/terminal-transport/core"
	"github.com/lixenwraith/terminal-transport/engine"
	"github.com/lixenwraith/terminal-transport/rail"
)

// newRingWorld builds a w×h ring world with both systems registered
func newRingWorld(t *testing.T, w, h int) *engine.World {
	t.Helper()
	n, err := rail.SimpleRing(w, h)
	require.NoError(t, err)

	world := engine.NewWorld(n)
	world.AddSystem(NewMovementSystem())
	world.AddSystem(NewTrafficSystem(nil))
	return world
}

// defaultTrain is the shipped train: head (0,1), body down the left edge, heading Up
func defaultTrain() components.TrainComponent {
	return components.TrainComponent{
		Head:    core.P(0, 1),
		Body:    []core.Point{core.P(0, 1), core.P(0, 2), core.P(0, 3)},
		Mass:    5,
		Force:   3,
		Heading: core.Up,
	}
}

// addDefaultLights places the four shipped lights of the 20×10 ring
func addDefaultLights(world *engine.World) {
	for _, l := range []components.TrafficLightComponent{
		{Position: core.P(5, 0), Facing: core.Right, Green: true},
		{Position: core.P(19, 5), Facing: core.Down, Green: true},
		{Position: core.P(3, 9), Facing: core.Left, Green: true},
		{Position: core.P(0, 6), Facing: core.Up, Green: true},
	} {
		world.AddLight(l)
	}
}

// requireChain asserts consecutive body segments are one cell apart on non-empty track
func requireChain(t *testing.T, world *engine.World, train components.TrainComponent) {
	t.Helper()
	for i, p := range train.Body {
		require.NotEqual(t, rail.Empty, world.Network.TileAt(p), "segment %d at %v off track", i, p)
		if i == 0 {
			continue
		}
		prev := train.Body[i-1]
		dx, dy := p.X-prev.X, p.Y-prev.Y
		require.Equal(t, 1, dx*dx+dy*dy, "segments %d and %d not adjacent: %v %v", i-1, i, prev, p)
	}
}

// recordingListener captures light transitions
type recordingListener struct {
	changes []signalChange
}

type signalChange struct {
	index int
	green bool
}

func (r *recordingListener) SignalChanged(index int, light *components.TrafficLightComponent) {
	r.changes = append(r.changes, signalChange{index: index, green: light.Green})
}
