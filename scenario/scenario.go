// Package scenario describes the initial layout of a simulation run:
// the track, the trains and the traffic lights.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/terminal-transport/components"
	"github.com/lixenwraith/terminal-transport/constants"
	"github.com/lixenwraith/terminal-transport/core"
	"github.com/lixenwraith/terminal-transport/engine"
	"github.com/lixenwraith/terminal-transport/rail"
)

// ErrInvalidScenario is wrapped by every validation failure
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is the JSON form of a run's starting state
// When Tiles is empty the track is a simple ring of Width×Height.
type Scenario struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []string `json:"tiles,omitempty"`
	Trains []Train  `json:"trains"`
	Lights []Light  `json:"lights"`
}

// Train is one train's starting state; Body is head-first
type Train struct {
	Head      core.Point   `json:"head"`
	Body      []core.Point `json:"body"`
	Heading   string       `json:"heading"`
	Mass      float64      `json:"mass"`
	Force     float64      `json:"force"`
	Velocity  float64      `json:"velocity,omitempty"`
	HeadColor string       `json:"head_color,omitempty"`
	BodyColor string       `json:"body_color,omitempty"`
}

// Light is one traffic light's placement
type Light struct {
	Position core.Point `json:"position"`
	Facing   string     `json:"facing"`
	Green    bool       `json:"green"`
}

// Default returns the shipped layout on a w×h ring: one train climbing the
// left edge and four lights, one per side
// Light positions scale with the ring; sizes from 8×6 up keep every entity on track.
func Default(w, h int) *Scenario {
	return &Scenario{
		Width:  w,
		Height: h,
		Trains: []Train{{
			Head:      core.P(0, 1),
			Body:      []core.Point{core.P(0, 1), core.P(0, 2), core.P(0, 3)},
			Heading:   core.Up.String(),
			Mass:      constants.DefaultTrainMass,
			Force:     constants.DefaultTrainForce,
			HeadColor: "lightblue",
			BodyColor: "blue",
		}},
		Lights: []Light{
			{Position: core.P(w/4, 0), Facing: core.Right.String(), Green: true},
			{Position: core.P(w-1, h/2), Facing: core.Down.String(), Green: true},
			{Position: core.P(max(w/4-2, 1), h-1), Facing: core.Left.String(), Green: true},
			{Position: core.P(0, h/2+1), Facing: core.Up.String(), Green: true},
		},
	}
}

// Load reads and validates a JSON scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Network builds the track described by the scenario
func (s *Scenario) Network() (*rail.Network, error) {
	if len(s.Tiles) > 0 {
		return rail.FromRows(s.Tiles)
	}
	return rail.SimpleRing(s.Width, s.Height)
}

// Validate checks the scenario can start a run without an immediate fault:
// positive physics, contiguous bodies and every entity on track
func (s *Scenario) Validate() error {
	if len(s.Tiles) == 0 && (s.Width <= 0 || s.Height <= 0) {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidScenario, s.Width, s.Height)
	}
	n, err := s.Network()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	for i := range s.Trains {
		if err := s.Trains[i].validate(n); err != nil {
			return fmt.Errorf("%w: train %d: %w", ErrInvalidScenario, i, err)
		}
	}
	for i := range s.Lights {
		if err := s.Lights[i].validate(n); err != nil {
			return fmt.Errorf("%w: light %d: %w", ErrInvalidScenario, i, err)
		}
	}
	return nil
}

func (t *Train) validate(n *rail.Network) error {
	if t.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %v", t.Mass)
	}
	if t.Force <= 0 {
		return fmt.Errorf("force must be positive, got %v", t.Force)
	}
	heading, ok := core.ParseDirection(t.Heading)
	if !ok {
		return fmt.Errorf("unknown heading %q", t.Heading)
	}
	if len(t.Body) == 0 {
		return errors.New("body must have at least one segment")
	}
	if t.Body[0] != t.Head {
		return fmt.Errorf("first body segment %v is not the head %v", t.Body[0], t.Head)
	}

	// The body is the trail the head left: distinct cells, each rolling onto the next
	seen := make(map[core.Point]int, len(t.Body))
	for i, p := range t.Body {
		if err := onTrack(n, p); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
		if j, dup := seen[p]; dup {
			return fmt.Errorf("segments %d and %d share cell %v", j, i, p)
		}
		seen[p] = i
		if i > 0 && !n.Connects(p, t.Body[i-1]) {
			return fmt.Errorf("segments %d and %d are not joined by track: %v %v", i-1, i, t.Body[i-1], p)
		}
	}

	// The heading must be the one the head arrived on and must lead on along the rails
	if len(t.Body) > 1 {
		if arrived, _ := core.DirectionTo(t.Body[1], t.Head); arrived != heading {
			return fmt.Errorf("heading %v does not follow the body, which arrived heading %v", heading, arrived)
		}
	}
	if _, err := n.NextDirection(t.Head, heading); err != nil {
		return fmt.Errorf("heading: %w", err)
	}
	for _, name := range []string{t.HeadColor, t.BodyColor} {
		if name != "" && tcell.GetColor(name) == tcell.ColorDefault {
			return fmt.Errorf("unknown color %q", name)
		}
	}
	return nil
}

func (l *Light) validate(n *rail.Network) error {
	if _, ok := core.ParseDirection(l.Facing); !ok {
		return fmt.Errorf("unknown facing %q", l.Facing)
	}
	return onTrack(n, l.Position)
}

func onTrack(n *rail.Network, p core.Point) error {
	if !n.Contains(p) {
		return fmt.Errorf("%v is outside the %dx%d grid", p, n.Width(), n.Height())
	}
	if n.TileAt(p) == rail.Empty {
		return fmt.Errorf("%v is not on track", p)
	}
	return nil
}

// Build validates the scenario and returns a world holding its network, trains and lights
// Systems are not registered; the caller decides which run.
func (s *Scenario) Build() (*engine.World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	n, err := s.Network()
	if err != nil {
		return nil, err
	}

	world := engine.NewWorld(n)
	for _, t := range s.Trains {
		heading, _ := core.ParseDirection(t.Heading)
		world.AddTrain(components.TrainComponent{
			Head:      t.Head,
			Body:      append([]core.Point(nil), t.Body...),
			Mass:      t.Mass,
			Force:     t.Force,
			Velocity:  t.Velocity,
			Heading:   heading,
			HeadColor: colorOr(t.HeadColor, constants.DefaultTrainHeadColor),
			BodyColor: colorOr(t.BodyColor, constants.DefaultTrainBodyColor),
		})
	}
	for _, l := range s.Lights {
		facing, _ := core.ParseDirection(l.Facing)
		world.AddLight(components.TrafficLightComponent{
			Position: l.Position,
			Facing:   facing,
			Green:    l.Green,
		})
	}
	return world, nil
}

func colorOr(name string, fallback tcell.Color) tcell.Color {
	if name == "" {
		return fallback
	}
	return tcell.GetColor(name)
}
