package rail

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/terminal-transport/core"
)

// FromRows builds a network from rows of idle track glyphs, top row first
// Every row must have the same rune count.
func FromRows(rows []string) (*Network, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout has no rows")
	}

	w := utf8.RuneCountInString(rows[0])
	n, err := NewEmpty(w, len(rows))
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	for y, row := range rows {
		if got := utf8.RuneCountInString(row); got != w {
			return nil, fmt.Errorf("layout row %d has %d tiles, want %d", y, got, w)
		}
		x := 0
		for _, r := range row {
			s, ok := ShapeForGlyph(r)
			if !ok {
				return nil, fmt.Errorf("layout row %d column %d: unknown glyph %q", y, x, r)
			}
			n.put(core.P(x, y), s)
			x++
		}
	}
	return n, nil
}

// Rows renders the network back to idle glyph rows
func (n *Network) Rows() []string {
	rows := make([]string, n.height)
	line := make([]rune, n.width)
	for y := 0; y < n.height; y++ {
		for x := 0; x < n.width; x++ {
			line[x] = n.TileAt(core.P(x, y)).Glyph()
		}
		rows[y] = string(line)
	}
	return rows
}
