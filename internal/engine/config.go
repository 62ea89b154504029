package engine

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/waypoint-planner/internal/graph"
	"github.com/cxd309/waypoint-planner/internal/kinematics"
)

// Config holds the planner's tunable constants.
type Config struct {
	Bounds         graph.Bounds `json:"bounds"`
	BeamWidth      int          `json:"beam_width"`      // states kept per waypoint
	Window         int          `json:"window"`          // extra steps tried above the per-leg lower bound
	CandidateLimit int          `json:"candidate_limit"` // per-axis moves kept per query
	LookaheadDepth int          `json:"lookahead_depth"`
}

// DefaultConfig returns the planner defaults.
func DefaultConfig() Config {
	return Config{
		Bounds:         graph.DefaultBounds(),
		BeamWidth:      100,
		Window:         10,
		CandidateLimit: 10,
		LookaheadDepth: kinematics.DefaultLookaheadDepth,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	switch {
	case c.BeamWidth < 1:
		return fmt.Errorf("beam_width must be positive, got %d", c.BeamWidth)
	case c.CandidateLimit < 1:
		return fmt.Errorf("candidate_limit must be positive, got %d", c.CandidateLimit)
	case c.Window < 0:
		return fmt.Errorf("window must not be negative, got %d", c.Window)
	case c.LookaheadDepth < 0:
		return fmt.Errorf("lookahead_depth must not be negative, got %d", c.LookaheadDepth)
	}
	return nil
}

// DecodeConfig overlays JSON onto DefaultConfig, so absent fields keep their
// defaults.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config JSON: %w", err)
	}
	return cfg, nil
}
