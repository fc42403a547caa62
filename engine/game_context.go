package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/terminal-transport/constants"
)

// GameContext holds the world plus the run-control flags written by input handling
// The simulation itself never reads these flags; they only gate whether a tick runs.
type GameContext struct {
	World *World

	IsPaused atomic.Bool

	running       bool
	stepRequested bool
	tickInterval  time.Duration
	lastErr       error
}

// NewGameContext wraps a world with default run control
func NewGameContext(world *World) *GameContext {
	return &GameContext{
		World:        world,
		running:      true,
		tickInterval: constants.DefaultTickInterval,
	}
}

// Running reports whether the main loop should continue
func (g *GameContext) Running() bool {
	return g.running
}

// Quit stops the main loop
func (g *GameContext) Quit() {
	g.running = false
}

// TogglePause flips the pause flag and returns the new state
func (g *GameContext) TogglePause() bool {
	paused := !g.IsPaused.Load()
	g.IsPaused.Store(paused)
	if !paused {
		g.stepRequested = false
	}
	return paused
}

// RequestStep queues a single tick while paused
func (g *GameContext) RequestStep() {
	if g.IsPaused.Load() {
		g.stepRequested = true
	}
}

// TickInterval returns the current wall-clock time between ticks
func (g *GameContext) TickInterval() time.Duration {
	return g.tickInterval
}

// SetTickInterval clamps d to the allowed range and stores it
func (g *GameContext) SetTickInterval(d time.Duration) time.Duration {
	g.tickInterval = min(max(d, constants.MinTickInterval), constants.MaxTickInterval)
	return g.tickInterval
}

// SpeedUp halves the tick interval
func (g *GameContext) SpeedUp() time.Duration {
	return g.SetTickInterval(g.tickInterval / 2)
}

// SlowDown doubles the tick interval
func (g *GameContext) SlowDown() time.Duration {
	return g.SetTickInterval(g.tickInterval * 2)
}

// Advance runs one world tick unless paused without a pending step
// Returns true when a tick ran. A tick error stops the loop and is kept for Err.
func (g *GameContext) Advance() (bool, error) {
	if !g.running {
		return false, nil
	}
	if g.IsPaused.Load() {
		if !g.stepRequested {
			return false, nil
		}
		g.stepRequested = false
	}

	if err := g.World.Update(); err != nil {
		g.lastErr = err
		g.running = false
		return true, err
	}
	return true, nil
}

// Err returns the error that stopped the loop, if any
func (g *GameContext) Err() error {
	return g.lastErr
}
