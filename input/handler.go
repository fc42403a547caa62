package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/terminal-transport/engine"
)

// SoundToggler mutes and unmutes signal sounds
type SoundToggler interface {
	ToggleMute() bool
}

// Handler applies terminal events to the game context
type Handler struct {
	ctx   *engine.GameContext
	keys  *KeyTable
	sound SoundToggler
}

// NewHandler creates a handler with the default key table; sound may be nil
func NewHandler(ctx *engine.GameContext, sound SoundToggler) *Handler {
	return &Handler{
		ctx:   ctx,
		keys:  DefaultKeyTable(),
		sound: sound,
	}
}

// HandleEvent applies ev and returns the action it resolved to
// The caller redraws after any action other than ActionNone and
// resets its ticker after a speed change.
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return ActionRedraw
	case *tcell.EventKey:
		action := h.keys.Lookup(ev)
		h.apply(action)
		return action
	}
	return ActionNone
}

func (h *Handler) apply(action Action) {
	switch action {
	case ActionQuit:
		h.ctx.Quit()
	case ActionTogglePause:
		paused := h.ctx.TogglePause()
		log.Printf("[INPUT] paused=%v", paused)
	case ActionStep:
		h.ctx.RequestStep()
	case ActionSpeedUp:
		log.Printf("[INPUT] tick interval %v", h.ctx.SpeedUp())
	case ActionSlowDown:
		log.Printf("[INPUT] tick interval %v", h.ctx.SlowDown())
	case ActionToggleSound:
		if h.sound != nil {
			log.Printf("[INPUT] muted=%v", h.sound.ToggleMute())
		}
	}
}
