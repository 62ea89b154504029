// Command waypoint-planner reads waypoints as whitespace-separated "x y" pairs
// from a file argument (or stdin), plans a minimal-time route through them in
// order, and writes the keypad command stream to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cxd309/waypoint-planner/internal/engine"
	"github.com/cxd309/waypoint-planner/internal/metrics"
	"github.com/cxd309/waypoint-planner/internal/ship"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("waypoint-planner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "JSON config file; flags override its values")
		beamWidth  = fs.Int("beam", 0, "beam states kept per waypoint")
		window     = fs.Int("window", 0, "extra steps tried above each leg's lower bound")
		limit      = fs.Int("limit", 0, "per-axis candidates kept per query")
		depth      = fs.Int("depth", 0, "lookahead depth for exact-step queries")
		vmax       = fs.Int("vmax", 0, "velocity bound; velocities lie in [-vmax, vmax]")
		dmax       = fs.Int("dmax", 0, "per-leg displacement bound; displacements lie in [-dmax, dmax]")
		logLevel   = fs.String("log-level", "info", "debug, info, warn or error")
		logFormat  = fs.String("log-format", "text", "text or json")
		verify     = fs.Bool("verify", false, "replay the commands and fail unless every waypoint is visited")
		metricsOut = fs.String("metrics-out", "", "write Prometheus metrics to this file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, *logLevel, *logFormat)
	if err != nil {
		return err
	}

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		if cfg, err = engine.DecodeConfig(data); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "beam":
			cfg.BeamWidth = *beamWidth
		case "window":
			cfg.Window = *window
		case "limit":
			cfg.CandidateLimit = *limit
		case "depth":
			cfg.LookaheadDepth = *depth
		case "vmax":
			cfg.Bounds.MinV, cfg.Bounds.MaxV = -*vmax, *vmax
		case "dmax":
			cfg.Bounds.MinD, cfg.Bounds.MaxD = -*dmax, *dmax
		}
	})

	input := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		defer f.Close()
		input = f
	}
	waypoints, err := engine.ParseWaypoints(input)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder()
	planner, err := engine.NewPlanner(cfg, engine.WithLogger(logger), engine.WithMetrics(recorder))
	if err != nil {
		return err
	}
	result, runErr := planner.Run(waypoints)
	if *metricsOut != "" {
		if err := recorder.WriteTextfile(*metricsOut); err != nil {
			logger.Warn("writing metrics", "path", *metricsOut, "error", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("planning: %w", runErr)
	}

	if *verify {
		if err := ship.Verify(waypoints, result.Commands); err != nil {
			return fmt.Errorf("verifying commands: %w", err)
		}
		logger.Info("verified route", "run_id", result.RunID, "waypoints", len(waypoints))
	}

	logger.Info("summary",
		"run_id", result.RunID,
		"visited", len(waypoints),
		"steps", result.Summary.TotalSteps,
		"longest_leg", result.Summary.LongestLegSteps,
		"stddev_leg_steps", result.Summary.StdDevLegSteps,
		"peak_speed", result.Summary.PeakSpeed)

	_, err = fmt.Fprintln(stdout, result.Commands)
	return err
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
