package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/terminal-transport/audio"
	"github.com/lixenwraith/terminal-transport/constants"
	"github.com/lixenwraith/terminal-transport/rail"
)

func newLoopScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

// screenText returns every row of the screen joined by newlines
func screenText(screen tcell.SimulationScreen) string {
	cells, w, h := screen.GetContents()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteString(string(cells[y*w+x].Runes))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestRunLoopQuitsOnKey(t *testing.T) {
	game, err := buildGame(defaultOptions(), nil)
	require.NoError(t, err)
	screen := newLoopScreen(t)

	events := make(chan tcell.Event, constants.EventQueueSize)
	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, runLoop(screen, game, audio.NewSoundManager(nil), events))
	assert.False(t, game.Running())
	assert.Contains(t, screenText(screen), "sound off")
}

func TestRunLoopKeepsFaultOnScreen(t *testing.T) {
	opts := defaultOptions()
	opts.scenario = "testdata/misplaced_light.json"
	game, err := buildGame(opts, nil)
	require.NoError(t, err)
	game.SetTickInterval(constants.MinTickInterval)
	screen := newLoopScreen(t)

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan error, 1)
	go func() {
		done <- runLoop(screen, game, audio.NewSoundManager(nil), events)
	}()

	// The loop stops ticking but waits with the fault displayed
	require.Eventually(t, func() bool {
		return strings.Contains(screenText(screen), "FAULT: tick 1")
	}, 2*time.Second, 10*time.Millisecond)

	events <- tcell.NewEventResize(80, 24)
	select {
	case <-done:
		t.Fatal("returned before a key was pressed")
	case <-time.After(50 * time.Millisecond):
	}

	events <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	select {
	case err := <-done:
		assert.ErrorIs(t, err, rail.ErrInvalidTravel)
	case <-time.After(2 * time.Second):
		t.Fatal("fault screen was not dismissed")
	}
}

func TestAwaitKeyEndsWithStream(t *testing.T) {
	events := make(chan tcell.Event, 2)
	events <- tcell.NewEventResize(80, 24)
	close(events)

	assert.NotPanics(t, func() { awaitKey(events) })
}
