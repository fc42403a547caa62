package rail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeGlyphs(t *testing.T) {
	tests := []struct {
		shape Shape
		idle  rune
		train rune
	}{
		{Empty, ' ', ' '},
		{Horizontal, '─', '═'},
		{Vertical, '│', '║'},
		{TurnBottomRight, '╭', '╔'},
		{TurnTopLeft, '╯', '╝'},
		{Cross, '┼', '╬'},
		{EndLeft, '╴', '╡'},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			assert.Equal(t, tt.idle, tt.shape.Glyph())
			assert.Equal(t, tt.train, tt.shape.TrainGlyph())
		})
	}
}

func TestShapeTableComplete(t *testing.T) {
	seen := make(map[string]bool)
	for s := Empty; s < shapeCount; s++ {
		assert.True(t, s.Valid())
		name := s.String()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 16)
	assert.False(t, shapeCount.Valid())
	assert.Equal(t, '?', shapeCount.Glyph())
}
