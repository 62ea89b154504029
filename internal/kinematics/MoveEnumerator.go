package kinematics

import (
	"cmp"
	"slices"

	"github.com/cxd309/waypoint-planner/internal/graph"
)

// DefaultLookaheadDepth is the number of explicit accelerations tried before
// falling back to a table-minimal suffix.
const DefaultLookaheadDepth = 2

// MovePack is one candidate way to finish a leg on one axis.
type MovePack struct {
	Steps    int
	Velocity int // terminal velocity
}

// Enumerator generates per-axis move candidates from a StepTable.
//
// The table only stores minimum step counts, so exact-step queries are
// answered with a bounded lookahead: an acceleration prefix of at most depth
// steps followed by a minimal suffix. A suffix that ends at rest may also
// arrive early and hold position for the remaining steps. Deeper lookahead
// finds more exact-step moves at a higher cost; it never finds fewer.
type Enumerator struct {
	table  StepTable
	bounds graph.Bounds
	depth  int
}

// NewEnumerator returns an Enumerator over t. A negative depth is treated as 0.
func NewEnumerator(t StepTable, depth int) *Enumerator {
	return &Enumerator{table: t, bounds: t.Bounds(), depth: max(depth, 0)}
}

// Depth returns the lookahead depth.
func (e *Enumerator) Depth() int { return e.depth }

// Minimal lists every terminal velocity reachable from v over dx, ordered by
// step count and then by terminal speed, and keeps the first limit entries.
// Slower arrivals rank first because they leave more room to turn at the
// waypoint.
func (e *Enumerator) Minimal(v, dx, limit int) []MovePack {
	var moves []MovePack
	for ve := e.bounds.MinV; ve <= e.bounds.MaxV; ve++ {
		steps := e.table.MinSteps(v, ve, dx)
		if steps == Infeasible {
			continue
		}
		moves = append(moves, MovePack{Steps: steps, Velocity: ve})
	}
	slices.SortFunc(moves, func(a, b MovePack) int {
		return cmp.Or(
			cmp.Compare(a.Steps, b.Steps),
			cmp.Compare(abs(a.Velocity), abs(b.Velocity)),
			cmp.Compare(a.Velocity, b.Velocity),
		)
	})
	return truncate(moves, limit)
}

// Exact lists terminal velocities reachable from v over dx in exactly steps
// steps, as far as the lookahead depth can see. Each velocity appears once;
// slower ones come first and at most limit are kept.
func (e *Enumerator) Exact(v, dx, steps, limit int) []MovePack {
	if steps < 0 {
		return nil
	}
	found := make([]bool, e.bounds.NumV())
	e.lookahead(v, dx, steps, e.depth, nil, func(_ []int, nv, ndx, remaining int) bool {
		for ve := e.bounds.MinV; ve <= e.bounds.MaxV; ve++ {
			if e.suffixFits(nv, ve, ndx, remaining) {
				found[ve-e.bounds.MinV] = true
			}
		}
		return false
	})

	var moves []MovePack
	for i, ok := range found {
		if ok {
			moves = append(moves, MovePack{Steps: steps, Velocity: e.bounds.MinV + i})
		}
	}
	slices.SortFunc(moves, func(a, b MovePack) int {
		return cmp.Or(
			cmp.Compare(abs(a.Velocity), abs(b.Velocity)),
			cmp.Compare(a.Velocity, b.Velocity),
		)
	})
	return truncate(moves, limit)
}

// CanReach reports whether Exact(vs, dx, steps, ...) would contain ve,
// without building the candidate list.
func (e *Enumerator) CanReach(vs, ve, dx, steps int) bool {
	if steps < 0 {
		return false
	}
	return e.lookahead(vs, dx, steps, e.depth, nil, func(_ []int, nv, ndx, remaining int) bool {
		return e.suffixFits(nv, ve, ndx, remaining)
	})
}

// suffixFits reports whether a table-minimal walk from v to ve over dx takes
// exactly steps steps, or fewer when it ends at rest and can wait out the rest.
func (e *Enumerator) suffixFits(v, ve, dx, steps int) bool {
	m := e.table.MinSteps(v, ve, dx)
	if m == Infeasible {
		return false
	}
	return m == steps || (ve == 0 && m < steps)
}

// lookahead calls visit with the start state and with every state reached by
// an in-bounds acceleration prefix of at most depth steps, together with the
// prefix, the displacement and the steps still left. The prefix slice is reused
// between calls. It stops as soon as visit returns true and reports whether
// that happened.
func (e *Enumerator) lookahead(v, dx, steps, depth int, prefix []int, visit func(prefix []int, v, dx, steps int) bool) bool {
	if visit(prefix, v, dx, steps) {
		return true
	}
	if depth == 0 || steps == 0 {
		return false
	}
	for _, a := range graph.Accelerations {
		nv := v + a
		ndx := dx - nv
		if !e.bounds.ValidVelocity(nv) || !e.bounds.ValidDisplacement(ndx) {
			continue
		}
		if e.lookahead(nv, ndx, steps-1, depth-1, append(prefix, a), visit) {
			return true
		}
	}
	return false
}

func truncate(moves []MovePack, limit int) []MovePack {
	if limit >= 0 && len(moves) > limit {
		return moves[:limit]
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
