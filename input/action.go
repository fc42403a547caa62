package input

// Action discriminates what a terminal event asks the application to do
type Action uint8

const (
	ActionNone Action = iota

	ActionQuit        // q, Esc, Ctrl+C
	ActionTogglePause // p, space
	ActionStep        // s while paused
	ActionSpeedUp     // +, =
	ActionSlowDown    // -, _
	ActionToggleSound // m
	ActionRedraw      // Terminal resize
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionTogglePause:
		return "toggle-pause"
	case ActionStep:
		return "step"
	case ActionSpeedUp:
		return "speed-up"
	case ActionSlowDown:
		return "slow-down"
	case ActionToggleSound:
		return "toggle-sound"
	case ActionRedraw:
		return "redraw"
	default:
		return "unknown"
	}
}
