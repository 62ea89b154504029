package engine

import (
	"github.com/cxd309/waypoint-planner/internal/graph"
)

// Waypoint is a grid coordinate the route must visit.
type Waypoint = graph.Waypoint

// PlanInput is the JSON-serialisable input to the engine.
type PlanInput struct {
	Config    Config     `json:"config"`
	Waypoints []Waypoint `json:"waypoints"`
}

// BeamState is one surviving partial plan at a waypoint level. Prev indexes
// the previous level's slice and is -1 at the root.
type BeamState struct {
	Steps int // cumulative
	VX    int
	VY    int
	Prev  int
}

// Leg is the motion between two consecutive waypoints.
type Leg struct {
	From    Waypoint `json:"from"`
	To      Waypoint `json:"to"`
	StartVX int      `json:"start_vx"`
	StartVY int      `json:"start_vy"`
	EndVX   int      `json:"end_vx"`
	EndVY   int      `json:"end_vy"`
	Steps   int      `json:"steps"`
}

// Plan is the selected chain of legs from the origin through every waypoint.
type Plan struct {
	Legs       []Leg `json:"legs"`
	TotalSteps int   `json:"total_steps"`
}

// Summary condenses a plan for diagnostics.
type Summary struct {
	Legs            int     `json:"legs"`
	TotalSteps      int     `json:"total_steps"`
	MeanLegSteps    float64 `json:"mean_leg_steps"`
	StdDevLegSteps  float64 `json:"stddev_leg_steps"`
	LongestLegSteps int     `json:"longest_leg_steps"`
	PeakSpeed       int     `json:"peak_speed"` // max |vx|+|vy| at a waypoint
}

// Result is the complete output of a planning run.
type Result struct {
	RunID    string  `json:"run_id"`
	Plan     Plan    `json:"plan"`
	Commands string  `json:"commands"`
	Summary  Summary `json:"summary"`
}
