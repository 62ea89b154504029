// Package engine implements the waypoint route planner.
//
// Planning has two phases:
//
//  1. Search - a beam search over waypoint legs picks, for every leg, a step
//     count and terminal velocity per axis, minimising total steps.
//
//  2. Assembly - each chosen leg is turned back into concrete per-axis
//     accelerations and encoded as one keypad symbol per step.
//
// Both phases read a single minimum-step table that is built once and never
// modified.
package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cxd309/waypoint-planner/internal/kinematics"
	"github.com/cxd309/waypoint-planner/internal/metrics"
	"github.com/cxd309/waypoint-planner/internal/ship"
)

// ErrNoPlan is returned when every beam branch dies before the last waypoint.
var ErrNoPlan = errors.New("no plan found")

// Planner holds the immutable step table and the search configuration.
type Planner struct {
	cfg     Config
	table   *kinematics.Table
	moves   *kinematics.Enumerator
	log     *slog.Logger
	metrics *metrics.Recorder
}

// Options defines optional planner collaborators.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	Table   *kinematics.Table
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger for progress and diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMetrics sets the recorder that receives planner metrics.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(options *Options) { options.Metrics = recorder }
}

// WithTable reuses an already built table. Its bounds must match the config.
func WithTable(table *kinematics.Table) Option {
	return func(options *Options) { options.Table = table }
}

// NewPlanner validates cfg and builds the step table unless one is supplied.
func NewPlanner(cfg Config, options ...Option) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	var opts Options
	for _, option := range options {
		option(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	table := opts.Table
	if table == nil {
		start := time.Now()
		var err error
		table, err = kinematics.BuildTable(cfg.Bounds)
		if err != nil {
			return nil, fmt.Errorf("building step table: %w", err)
		}
		elapsed := time.Since(start)
		opts.Metrics.ObserveTableBuild(elapsed, table.Feasible())
		opts.Logger.Info("built step table",
			"elapsed", elapsed, "feasible", table.Feasible(), "bounds", cfg.Bounds)
	} else if table.Bounds() != cfg.Bounds {
		return nil, fmt.Errorf("table bounds %+v do not match config bounds %+v", table.Bounds(), cfg.Bounds)
	}

	return &Planner{
		cfg:     cfg,
		table:   table,
		moves:   kinematics.NewEnumerator(table, cfg.LookaheadDepth),
		log:     opts.Logger,
		metrics: opts.Metrics,
	}, nil
}

// Config returns the planner's configuration.
func (p *Planner) Config() Config { return p.cfg }

// Table returns the shared step table.
func (p *Planner) Table() *kinematics.Table { return p.table }

// Run searches for a plan through waypoints and assembles its command stream.
func (p *Planner) Run(waypoints []Waypoint) (Result, error) {
	runID := uuid.NewString()
	log := p.log.With("run_id", runID)

	start := time.Now()
	plan, err := p.search(waypoints, log)
	if err != nil {
		return Result{}, err
	}
	commands, err := p.Commands(plan)
	if err != nil {
		return Result{}, fmt.Errorf("assembling commands: %w", err)
	}

	summary := Summarize(plan)
	log.Info("planned route",
		"waypoints", len(waypoints),
		"steps", plan.TotalSteps,
		"mean_leg_steps", summary.MeanLegSteps,
		"elapsed", time.Since(start))
	return Result{RunID: runID, Plan: plan, Commands: commands, Summary: summary}, nil
}

// RunJSON is the entry point for the WASM target. It accepts a JSON-encoded
// PlanInput, plans the route, and returns a JSON-encoded Result. Config fields
// left out of the input keep their defaults.
func RunJSON(jsonInput string) (string, error) {
	input := PlanInput{Config: DefaultConfig()}
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	planner, err := NewPlanner(input.Config)
	if err != nil {
		return "", err
	}

	result, err := planner.Run(input.Waypoints)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}

// VerifyInput is the JSON-serialisable input to VerifyJSON.
type VerifyInput struct {
	Waypoints []Waypoint `json:"waypoints"`
	Commands  string     `json:"commands"`
}

// VerifyJSON replays a JSON-encoded VerifyInput and returns a JSON-encoded
// ship.ShipLog of the final state. It fails unless the commands visit every
// waypoint in order.
func VerifyJSON(jsonInput string) (string, error) {
	var input VerifyInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}
	if err := ship.Verify(input.Waypoints, input.Commands); err != nil {
		return "", err
	}
	final, err := ship.Replay(input.Waypoints, input.Commands)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(final)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
