package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/terminal-transport/components"
	"github.com/lixenwraith/terminal-transport/constants"
	"github.com/lixenwraith/terminal-transport/core"
	"github.com/lixenwraith/terminal-transport/engine"
)

// Status is the run-control state shown in the status bar
type Status struct {
	Paused       bool
	TickInterval time.Duration
	Muted        bool
	Err          error
}

// StatusOf captures the status bar state of a game context
func StatusOf(ctx *engine.GameContext, muted bool) Status {
	return Status{
		Paused:       ctx.IsPaused.Load(),
		TickInterval: ctx.TickInterval(),
		Muted:        muted,
		Err:          ctx.Err(),
	}
}

// Renderer draws a world onto a tcell screen
type Renderer struct {
	trackStyle    tcell.Style
	occupiedStyle tcell.Style
	frameStyle    tcell.Style
	statusStyle   tcell.Style
	faultStyle    tcell.Style
}

// NewRenderer creates a renderer with the default palette
func NewRenderer() *Renderer {
	base := tcell.StyleDefault.Background(constants.Background)
	return &Renderer{
		trackStyle:    base.Foreground(constants.TrackColor),
		occupiedStyle: base.Foreground(constants.TrackColor).Background(constants.OccupiedBackground),
		frameStyle:    base.Foreground(constants.FrameColor),
		statusStyle:   base.Foreground(constants.StatusColor),
		faultStyle:    base.Foreground(constants.FaultColor),
	}
}

// Draw renders one full frame: frame, tiles, lights, trains and status bar
func (r *Renderer) Draw(screen tcell.Screen, world *engine.World, status Status) {
	screen.SetStyle(tcell.StyleDefault.Background(constants.Background))
	screen.Clear()

	w, h := world.Network.Width(), world.Network.Height()
	r.drawFrame(screen, w, h)
	r.drawTiles(screen, world)
	r.drawLights(screen, world)
	r.drawTrains(screen, world)
	r.drawStatus(screen, world, status, h+2*constants.MapOffsetY+constants.StatusBarGap)

	screen.Show()
}

func (r *Renderer) drawFrame(screen tcell.Screen, w, h int) {
	right := w + 2*constants.MapOffsetX - 1
	bottom := h + 2*constants.MapOffsetY - 1

	for x := 1; x < right; x++ {
		screen.SetContent(x, 0, '─', nil, r.frameStyle)
		screen.SetContent(x, bottom, '─', nil, r.frameStyle)
	}
	for y := 1; y < bottom; y++ {
		screen.SetContent(0, y, '│', nil, r.frameStyle)
		screen.SetContent(right, y, '│', nil, r.frameStyle)
	}
	screen.SetContent(0, 0, '┌', nil, r.frameStyle)
	screen.SetContent(right, 0, '┐', nil, r.frameStyle)
	screen.SetContent(0, bottom, '└', nil, r.frameStyle)
	screen.SetContent(right, bottom, '┘', nil, r.frameStyle)
}

func (r *Renderer) drawTiles(screen tcell.Screen, world *engine.World) {
	n := world.Network
	for y := 0; y < n.Height(); y++ {
		for x := 0; x < n.Width(); x++ {
			p := core.P(x, y)
			style := r.trackStyle
			if world.Occupancy.At(p) {
				style = r.occupiedStyle
			}
			setCell(screen, p, n.TileAt(p).Glyph(), style)
		}
	}
}

func (r *Renderer) drawLights(screen tcell.Screen, world *engine.World) {
	n := world.Network
	for i := range world.Lights {
		light := &world.Lights[i]
		if !n.Contains(light.Position) {
			continue
		}

		fg := constants.LightRedColor
		if light.Green {
			fg = constants.LightGreenColor
		}
		bg := constants.Background
		if world.Occupancy.At(light.Position) {
			bg = constants.OccupiedBackground
		}
		setCell(screen, light.Position, constants.LightArrows[light.Facing], tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

// drawTrains paints tail to head so the head wins on a self-overlapping body
func (r *Renderer) drawTrains(screen tcell.Screen, world *engine.World) {
	n := world.Network
	for i := range world.Trains {
		train := &world.Trains[i]
		for j := len(train.Body) - 1; j >= 0; j-- {
			seg := train.Body[j]
			if !n.Contains(seg) {
				continue
			}
			setCell(screen, seg, n.TileAt(seg).TrainGlyph(), trainStyle(train, j == 0))
		}
	}
}

func trainStyle(train *components.TrainComponent, head bool) tcell.Style {
	fg := train.BodyColor
	if head {
		fg = train.HeadColor
	}
	if train.Faulted {
		fg = constants.FaultColor
	}
	return tcell.StyleDefault.Foreground(fg).Background(constants.OccupiedBackground)
}

func (r *Renderer) drawStatus(screen tcell.Screen, world *engine.World, status Status, y int) {
	for i, line := range StatusLines(world, status) {
		style := r.statusStyle
		if status.Err != nil && i == 0 {
			style = r.faultStyle
		}
		drawText(screen, 0, y+i, line, style)
	}
}

// StatusLines formats the status bar; an error line comes first when set
func StatusLines(world *engine.World, status Status) []string {
	var lines []string
	if status.Err != nil {
		lines = append(lines, "FAULT: "+status.Err.Error())
	}

	state := "running"
	if status.Paused {
		state = "paused"
	}
	sound := "on"
	if status.Muted {
		sound = "off"
	}
	lines = append(lines, fmt.Sprintf("tick %d  %s  %v/tick  sound %s", world.Tick(), state, status.TickInterval, sound))

	if len(world.Trains) > 0 {
		parts := make([]string, 0, len(world.Trains))
		for i := range world.Trains {
			t := &world.Trains[i]
			s := fmt.Sprintf("train %d v=%.2f %s", i, t.Velocity, t.Heading)
			if t.Faulted {
				s += " FAULTED"
			}
			parts = append(parts, s)
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	if len(world.Lights) > 0 {
		var sb strings.Builder
		sb.WriteString("lights")
		for i := range world.Lights {
			sb.WriteByte(' ')
			switch l := &world.Lights[i]; {
			case l.Faulted:
				sb.WriteByte('!')
			case l.Green:
				sb.WriteByte('G')
			default:
				sb.WriteByte('R')
			}
		}
		lines = append(lines, sb.String())
	}

	return lines
}

// Snapshot renders the map as plain text, one string per row
// Lights replace their tile glyph; train segments replace both.
func Snapshot(world *engine.World) []string {
	n := world.Network
	w, h := n.Width(), n.Height()

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = n.TileAt(core.P(x, y)).Glyph()
		}
	}

	for i := range world.Lights {
		l := &world.Lights[i]
		if n.Contains(l.Position) {
			grid[l.Position.Y][l.Position.X] = constants.LightArrows[l.Facing]
		}
	}

	for i := range world.Trains {
		for _, seg := range world.Trains[i].Body {
			if n.Contains(seg) {
				grid[seg.Y][seg.X] = n.TileAt(seg).TrainGlyph()
			}
		}
	}

	rows := make([]string, h)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return rows
}

func setCell(screen tcell.Screen, p core.Point, r rune, style tcell.Style) {
	screen.SetContent(p.X+constants.MapOffsetX, p.Y+constants.MapOffsetY, r, nil, style)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
