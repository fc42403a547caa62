package scenario

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/terminal-transport/constants"
	"github.com/lixenwraith/terminal-transport/core"
	"github.com/lixenwraith/terminal-transport/systems"
)

func TestDefaultMatchesShippedLayout(t *testing.T) {
	s := Default(constants.DefaultTrackWidth, constants.DefaultTrackHeight)
	require.NoError(t, s.Validate())

	world, err := s.Build()
	require.NoError(t, err)

	require.Len(t, world.Trains, 1)
	train := world.Trains[0]
	assert.Equal(t, core.P(0, 1), train.Head)
	assert.Equal(t, []core.Point{core.P(0, 1), core.P(0, 2), core.P(0, 3)}, train.Body)
	assert.Equal(t, core.Up, train.Heading)
	assert.Equal(t, 5.0, train.Mass)
	assert.Equal(t, 3.0, train.Force)
	assert.Equal(t, tcell.ColorLightBlue, train.HeadColor)
	assert.Equal(t, tcell.ColorBlue, train.BodyColor)

	want := []struct {
		at     core.Point
		facing core.Direction
	}{
		{core.P(5, 0), core.Right},
		{core.P(19, 5), core.Down},
		{core.P(3, 9), core.Left},
		{core.P(0, 6), core.Up},
	}
	require.Len(t, world.Lights, len(want))
	for i, w := range want {
		assert.Equal(t, w.at, world.Lights[i].Position, "light %d", i)
		assert.Equal(t, w.facing, world.Lights[i].Facing, "light %d", i)
	}
}

func TestDefaultScales(t *testing.T) {
	for _, size := range [][2]int{{8, 6}, {12, 8}, {40, 20}} {
		s := Default(size[0], size[1])
		assert.NoError(t, s.Validate(), "%dx%d", size[0], size[1])
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Scenario)
	}{
		{"Zero width", func(s *Scenario) { s.Width = 0 }},
		{"Ring too small", func(s *Scenario) { s.Width, s.Height = 1, 1 }},
		{"Zero mass", func(s *Scenario) { s.Trains[0].Mass = 0 }},
		{"Negative force", func(s *Scenario) { s.Trains[0].Force = -1 }},
		{"Empty body", func(s *Scenario) { s.Trains[0].Body = nil }},
		{"Head not first segment", func(s *Scenario) { s.Trains[0].Head = core.P(0, 2) }},
		{"Gap in body", func(s *Scenario) { s.Trains[0].Body[2] = core.P(0, 4) }},
		{"Body off track", func(s *Scenario) {
			s.Trains[0].Head = core.P(1, 1)
			s.Trains[0].Body = []core.Point{core.P(1, 1)}
		}},
		{"Body off grid", func(s *Scenario) { s.Trains[0].Body[2] = core.P(-1, 2) }},
		{"Bad heading", func(s *Scenario) { s.Trains[0].Heading = "north" }},
		{"Bad color", func(s *Scenario) { s.Trains[0].BodyColor = "plaid" }},
		{"Light off track", func(s *Scenario) { s.Lights[1].Position = core.P(10, 5) }},
		{"Bad facing", func(s *Scenario) { s.Lights[0].Facing = "" }},
		{"Ragged tiles", func(s *Scenario) { s.Tiles = []string{"╭╮", "╰─╯"} }},
		{"Folded body", func(s *Scenario) { s.Trains[0].Body[2] = core.P(0, 1) }},
		{"Heading into own body", func(s *Scenario) {
			s.Trains[0].Heading = "Down"
			s.Trains[0].Velocity = 1.5
		}},
		{"Heading off the rails", func(s *Scenario) { s.Trains[0].Heading = "Left" }},
		{"Single segment heading off the rails", func(s *Scenario) {
			s.Trains[0].Body = s.Trains[0].Body[:1]
			s.Trains[0].Heading = "Right"
		}},
		{"Neighbours not joined by track", func(s *Scenario) {
			s.Tiles = []string{
				"╭──╮",
				"╰──╯",
				"╭──╮",
				"╰──╯",
			}
			s.Trains[0].Head = core.P(1, 1)
			s.Trains[0].Body = []core.Point{core.P(1, 1), core.P(1, 2)}
			s.Lights = nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default(20, 10)
			tt.mutate(s)

			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidScenario), "%v", err)

			_, err = s.Build()
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomLayout(t *testing.T) {
	s, err := Load("testdata/l_loop.json")
	require.NoError(t, err)

	world, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, world.Network.Width())
	assert.Equal(t, 3, world.Network.Height())
	assert.Equal(t, tcell.ColorYellow, world.Trains[0].HeadColor)
	assert.Equal(t, tcell.NewHexColor(0xff8800), world.Trains[0].BodyColor)

	world.AddSystem(systems.NewMovementSystem())
	world.AddSystem(systems.NewTrafficSystem(nil))
	require.NoError(t, world.Update())

	// The single light's zone covers the rest of the loop, including the train
	assert.Len(t, world.Lights[0].Zone, 11)
	assert.False(t, world.Lights[0].Green)
	assert.Equal(t, 11, world.Occupancy.Count())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/missing.json")
	assert.Error(t, err)

	_, err = Load("testdata/truncated.json")
	assert.Error(t, err)

	_, err = Load("testdata/off_track.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidScenario))
}

func TestBuildCopiesBody(t *testing.T) {
	s := Default(20, 10)
	world, err := s.Build()
	require.NoError(t, err)

	world.Trains[0].Body[0] = core.P(9, 9)
	assert.Equal(t, core.P(0, 1), s.Trains[0].Body[0])
}

func TestDefaultRunsCleanly(t *testing.T) {
	world, err := Default(20, 10).Build()
	require.NoError(t, err)
	world.AddSystem(systems.NewMovementSystem())
	world.AddSystem(systems.NewTrafficSystem(nil))

	for i := 0; i < 500; i++ {
		require.NoError(t, world.Update(), "tick %d", i+1)
	}
	assert.Equal(t, uint64(500), world.Tick())
}

func TestValidateAcceptsBodyAroundCorner(t *testing.T) {
	s := Default(20, 10)
	s.Trains[0].Head = core.P(1, 0)
	s.Trains[0].Body = []core.Point{core.P(1, 0), core.P(0, 0), core.P(0, 1)}
	s.Trains[0].Heading = "Right"
	require.NoError(t, s.Validate())

	s.Trains[0].Body = s.Trains[0].Body[:1]
	assert.NoError(t, s.Validate(), "a lone head only needs a way on")
}
