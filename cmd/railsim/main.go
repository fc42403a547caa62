package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/terminal-transport/constants"
	"github.com/lixenwraith/terminal-transport/engine"
)

// options is the resolved command line
type options struct {
	width       int
	height      int
	tick        time.Duration
	scenario    string
	headless    bool
	ticks       int
	faultPolicy engine.FaultPolicy
	sound       bool
	debug       bool
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "railsim",
		Usage: "Trains on a terminal rail loop with occupancy-driven traffic lights",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Value:   constants.DefaultTrackWidth,
				Usage:   "ring width in tiles (ignored with --scenario)",
				Sources: cli.EnvVars("RAILSIM_WIDTH"),
			},
			&cli.IntFlag{
				Name:    "height",
				Value:   constants.DefaultTrackHeight,
				Usage:   "ring height in tiles (ignored with --scenario)",
				Sources: cli.EnvVars("RAILSIM_HEIGHT"),
			},
			&cli.DurationFlag{
				Name:    "tick",
				Value:   constants.DefaultTickInterval,
				Usage:   "wall-clock time per simulation tick",
				Sources: cli.EnvVars("RAILSIM_TICK"),
			},
			&cli.StringFlag{
				Name:    "scenario",
				Usage:   "JSON scenario file (default: built-in ring)",
				Sources: cli.EnvVars("RAILSIM_SCENARIO"),
			},
			&cli.BoolFlag{
				Name:    "headless",
				Usage:   "run without a terminal UI and print the final state",
				Sources: cli.EnvVars("RAILSIM_HEADLESS"),
			},
			&cli.IntFlag{
				Name:    "ticks",
				Value:   100,
				Usage:   "number of ticks to run in headless mode",
				Sources: cli.EnvVars("RAILSIM_TICKS"),
			},
			&cli.StringFlag{
				Name:    "fault-policy",
				Value:   engine.FaultAbort.String(),
				Usage:   "on a rail invariant violation: abort or isolate",
				Sources: cli.EnvVars("RAILSIM_FAULT_POLICY"),
			},
			&cli.BoolFlag{
				Name:    "sound",
				Usage:   "play chimes on light changes",
				Sources: cli.EnvVars("RAILSIM_SOUND"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "write logs to logs/railsim.log",
				Sources: cli.EnvVars("RAILSIM_DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := optionsFrom(cmd)
			if err != nil {
				return err
			}

			if logFile := setupLogging(opts.debug); logFile != nil {
				defer logFile.Close()
			}

			if opts.headless {
				return runHeadless(opts, os.Stdout)
			}
			return runInteractive(opts)
		},
	}
}

func optionsFrom(cmd *cli.Command) (options, error) {
	policy, err := engine.ParseFaultPolicy(cmd.String("fault-policy"))
	if err != nil {
		return options{}, err
	}
	opts := options{
		width:       int(cmd.Int("width")),
		height:      int(cmd.Int("height")),
		tick:        cmd.Duration("tick"),
		scenario:    cmd.String("scenario"),
		headless:    cmd.Bool("headless"),
		ticks:       int(cmd.Int("ticks")),
		faultPolicy: policy,
		sound:       cmd.Bool("sound"),
		debug:       cmd.Bool("debug"),
	}
	if opts.ticks < 0 {
		return options{}, fmt.Errorf("ticks must not be negative, got %d", opts.ticks)
	}
	return opts, nil
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "railsim: %v\n", err)
		os.Exit(1)
	}
}
