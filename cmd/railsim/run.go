package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/terminal-transport/audio"
	"github.com/lixenwraith/terminal-transport/constants"
	"github.com/lixenwraith/terminal-transport/core"
	"github.com/lixenwraith/terminal-transport/engine"
	"github.com/lixenwraith/terminal-transport/input"
	"github.com/lixenwraith/terminal-transport/render"
	"github.com/lixenwraith/terminal-transport/scenario"
	"github.com/lixenwraith/terminal-transport/systems"
)

// buildGame loads the scenario and wires the systems: movement first, then traffic
func buildGame(opts options, listener systems.SignalListener) (*engine.GameContext, error) {
	sc := scenario.Default(opts.width, opts.height)
	if opts.scenario != "" {
		loaded, err := scenario.Load(opts.scenario)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}

	world, err := sc.Build()
	if err != nil {
		return nil, err
	}
	world.FaultPolicy = opts.faultPolicy
	world.AddSystem(systems.NewMovementSystem())
	world.AddSystem(systems.NewTrafficSystem(listener))

	game := engine.NewGameContext(world)
	if opts.tick > 0 {
		game.SetTickInterval(opts.tick)
	}

	log.Printf("run %s: %dx%d network, %d trains, %d lights, fault policy %s",
		world.RunID, world.Network.Width(), world.Network.Height(),
		len(world.Trains), len(world.Lights), world.FaultPolicy)
	return game, nil
}

// runHeadless advances opts.ticks ticks without a terminal and prints the final map and status
// The state is printed even when a tick fails, followed by the error.
func runHeadless(opts options, out io.Writer) error {
	game, err := buildGame(opts, nil)
	if err != nil {
		return err
	}

	for i := 0; i < opts.ticks && game.Running(); i++ {
		game.Advance()
	}

	for _, row := range render.Snapshot(game.World) {
		fmt.Fprintln(out, row)
	}
	for _, line := range render.StatusLines(game.World, render.Status{TickInterval: game.TickInterval(), Muted: true}) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "run %s\n", game.World.RunID)

	if err := game.Err(); err != nil {
		log.Printf("run %s stopped: %v", game.World.RunID, err)
		return err
	}
	return nil
}

// runInteractive drives the terminal UI until quit or a fatal tick error
func runInteractive(opts options) error {
	cfg := audio.LoadAudioConfig()
	cfg.Enabled = cfg.Enabled || opts.sound
	sound := audio.NewSoundManager(cfg)
	if cfg.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing without sound: %v", err)
		} else {
			defer sound.Cleanup()
		}
	}

	game, err := buildGame(opts, sound)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal even if the simulation crashes
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	events := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	err = runLoop(screen, game, sound, events)
	core.SetCrashScreen(nil)
	return err
}

// runLoop renders and ticks until quit or a fatal tick error
// After a fatal error the fault stays on screen until a key is pressed.
func runLoop(screen tcell.Screen, game *engine.GameContext, sound *audio.SoundManager, events <-chan tcell.Event) error {
	renderer := render.NewRenderer()
	handler := input.NewHandler(game, sound)
	draw := func() {
		renderer.Draw(screen, game.World, render.StatusOf(game, sound.Muted()))
	}

	ticker := time.NewTicker(game.TickInterval())
	defer ticker.Stop()

	draw()
	for game.Running() {
		select {
		case ev := <-events:
			action := handler.HandleEvent(ev)
			switch action {
			case input.ActionNone:
				continue
			case input.ActionSpeedUp, input.ActionSlowDown:
				ticker.Reset(game.TickInterval())
			case input.ActionRedraw:
				screen.Sync()
			}
			draw()

		case <-ticker.C:
			if ran, _ := game.Advance(); ran {
				draw()
			}
		}
	}

	if err := game.Err(); err != nil {
		log.Printf("run %s stopped: %v", game.World.RunID, err)
		draw()
		awaitKey(events)
		return err
	}
	return nil
}

// awaitKey blocks until a key event arrives or the event stream ends
func awaitKey(events <-chan tcell.Event) {
	for ev := range events {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}
