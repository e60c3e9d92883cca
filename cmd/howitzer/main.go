// Command howitzer fires one M795 shell and prints the flight report to
// stdout as YAML or JSON. Settings come from HOWITZER_* environment
// variables; flags override them.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"howitzer/internal/config"
	"howitzer/internal/env"
	"howitzer/internal/logging"
	"howitzer/internal/sim"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "howitzer: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("howitzer", flag.ContinueOnError)
	angleDeg := fs.Float64("angle", cfg.Shot.Angle, "barrel angle in degrees, 0 = straight up")
	speed := fs.Float64("speed", cfg.Shot.MuzzleSpeed, "muzzle speed in m/s")
	wind := fs.Float64("wind", cfg.Env.Wind, "horizontal wind in m/s, positive blows downrange")
	terrain := fs.Float64("terrain", cfg.Env.TerrainElevation, "ground elevation relative to the gun in m")
	dt := fs.Float64("dt", cfg.Sim.TimeStep, "integration time step in seconds")
	format := fs.String("format", cfg.Output.Format, "report format: yaml or json")
	every := fs.Int("every", cfg.Output.SampleEvery, "include every nth sample in the report, 0 for none")
	level := fs.String("log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Shot.Angle, cfg.Shot.MuzzleSpeed = *angleDeg, *speed
	cfg.Env.Wind, cfg.Env.TerrainElevation = *wind, *terrain
	cfg.Sim.TimeStep = *dt
	cfg.Output.Format, cfg.Output.SampleEvery = *format, *every
	cfg.LogLevel = *level
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	simulator := sim.New(sim.Config{
		TimeStep:      cfg.Sim.TimeStep,
		MaxFlightTime: cfg.Sim.MaxFlightTime,
		Wind:          env.Wind{Speed: cfg.Env.Wind},
		Terrain:       env.Terrain{Elevation: cfg.Env.TerrainElevation},
	}, logger)

	shot := sim.NewShot(cfg.Shot.Angle, cfg.Shot.MuzzleSpeed)
	traj, err := simulator.Fire(ctx, shot)
	if err != nil {
		logger.Error("shot failed", zap.Stringer("shot", shot.ID), zap.Error(err))
		return err
	}

	return writeReport(out, cfg.Output.Format, traj.Report(cfg.Output.SampleEvery))
}

func writeReport(w io.Writer, format string, r sim.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
}
