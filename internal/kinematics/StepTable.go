// Package kinematics answers per-axis motion questions for the route planner:
// how few steps a velocity change over a displacement takes, which terminal
// velocities a given step budget can end in, and which accelerations realise
// a chosen move.
//
// Motion on the two grid axes is independent, so every query here is
// one-dimensional. The planner combines two axes itself.
package kinematics

import "github.com/cxd309/waypoint-planner/internal/graph"

// StepTable is the read-only contract every minimum-step source must satisfy.
type StepTable interface {
	// Bounds returns the velocity and displacement ranges the table covers.
	Bounds() graph.Bounds

	// MinSteps returns the fewest steps that take velocity v0 to ve while
	// covering exactly dx, or Infeasible.
	MinSteps(v0, ve, dx int) int
}
