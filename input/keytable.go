package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'q': ActionQuit,
			'Q': ActionQuit,
			'p': ActionTogglePause,
			' ': ActionTogglePause,
			's': ActionStep,
			'+': ActionSpeedUp,
			'=': ActionSpeedUp,
			'-': ActionSlowDown,
			'_': ActionSlowDown,
			'm': ActionToggleSound,
		},
	}
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
