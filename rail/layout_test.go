package rail

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/terminal-transport/core"
)

func TestFromRowsMatchesRing(t *testing.T) {
	ring, err := SimpleRing(5, 3)
	require.NoError(t, err)

	n, err := FromRows([]string{
		"╭───╮",
		"│...│",
		"╰───╯",
	})
	require.NoError(t, err)

	assert.Equal(t, ring.Width(), n.Width())
	assert.Equal(t, ring.Height(), n.Height())
	assert.Equal(t, ring.Rows(), n.Rows())
	assert.Equal(t, TurnBottomRight, n.TileAt(core.P(0, 0)))
	assert.Equal(t, Empty, n.TileAt(core.P(2, 1)))
}

func TestFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"No rows", nil},
		{"Empty row", []string{""}},
		{"Ragged rows", []string{"╭╮", "╰─╯"}},
		{"Unknown glyph", []string{"╭x╮"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows)
			assert.Error(t, err)
		})
	}
}

func TestFromRowsCustomLoop(t *testing.T) {
	// An L-shaped loop with an inner corner
	n, err := FromRows([]string{
		"╭─╮  ",
		"│ ╰─╮",
		"╰───╯",
	})
	require.NoError(t, err)

	p, d := core.P(0, 1), core.Up
	for i := 0; i < 12; i++ {
		var err error
		p, d, err = n.Step(p, d)
		require.NoError(t, err, "step %d", i)
		require.NotEqual(t, Empty, n.TileAt(p), "step %d left track at %v", i, p)
	}
	assert.Equal(t, core.P(0, 1), p, "twelve-tile loop returns to start")
	assert.Equal(t, core.Up, d)

	_, err = n.NextDirection(core.P(1, 1), core.Up)
	assert.True(t, errors.Is(err, ErrInvalidTravel))
}

func TestRowsRoundTripGlyphs(t *testing.T) {
	for s := Empty; s < shapeCount; s++ {
		got, ok := ShapeForGlyph(s.Glyph())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	_, ok := ShapeForGlyph('x')
	assert.False(t, ok)
}
