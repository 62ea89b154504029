package kinematics

import (
	"errors"
	"fmt"

	"github.com/cxd309/waypoint-planner/internal/graph"
)

// ErrUnreachable is returned when no acceleration keeps a reconstruction on a
// feasible track.
var ErrUnreachable = errors.New("no feasible acceleration")

// Reconstruct returns steps accelerations that take velocity vs to ve while
// covering exactly dx.
//
// It walks forward greedily first: at every step it commits to the first
// acceleration, in graph.Accelerations order, after which CanReach still
// holds. A table suffix only stays in bounds relative to its own start, so
// the greedy walk can stall on a move CanReach accepted. In that case the move
// is rebuilt from the witness CanReach found instead.
func (e *Enumerator) Reconstruct(dx, vs, ve, steps int) ([]int, error) {
	if steps < 0 {
		return nil, fmt.Errorf("negative step count %d: %w", steps, ErrUnreachable)
	}
	accels, err := e.greedy(dx, vs, ve, steps)
	if err == nil {
		return accels, nil
	}
	if rebuilt, ok := e.witness(dx, vs, ve, steps); ok {
		return rebuilt, nil
	}
	return nil, err
}

func (e *Enumerator) greedy(dx, vs, ve, steps int) ([]int, error) {
	accels := make([]int, 0, steps)
	v := vs
	for remaining := steps; remaining > 0; remaining-- {
		chosen := false
		for _, a := range graph.Accelerations {
			nv := v + a
			ndx := dx - nv
			if !e.bounds.ValidVelocity(nv) || !e.bounds.ValidDisplacement(ndx) {
				continue
			}
			if e.CanReach(nv, ve, ndx, remaining-1) {
				accels = append(accels, a)
				v, dx = nv, ndx
				chosen = true
				break
			}
		}
		if !chosen {
			return nil, fmt.Errorf("step %d of %d (v=%d, dx=%d, target v=%d): %w",
				steps-remaining+1, steps, v, dx, ve, ErrUnreachable)
		}
	}

	if v != ve || dx != 0 {
		return nil, fmt.Errorf("ended at v=%d with %d left, want v=%d: %w", v, dx, ve, ErrUnreachable)
	}
	return accels, nil
}

// witness rebuilds the first move CanReach would accept: its lookahead prefix,
// then the table suffix walked back from the end, then a rest at ve = 0 for
// any steps the suffix leaves over.
func (e *Enumerator) witness(dx, vs, ve, steps int) ([]int, bool) {
	var accels []int
	found := e.lookahead(vs, dx, steps, e.depth, nil, func(prefix []int, v, ndx, remaining int) bool {
		if !e.suffixFits(v, ve, ndx, remaining) {
			return false
		}
		suffix, ok := e.minimalWalk(v, ve, ndx)
		if !ok {
			return false
		}
		accels = make([]int, 0, steps)
		accels = append(accels, prefix...)
		accels = append(accels, suffix...)
		for len(accels) < steps {
			accels = append(accels, 0)
		}
		return true
	})
	return accels, found
}

// minimalWalk returns a table-minimal acceleration sequence from velocity v0
// at position 0 to velocity ve at position dx. It steps backwards through
// predecessors one table step closer to the start, all keyed on v0, so every
// state it visits is a table entry.
func (e *Enumerator) minimalWalk(v0, ve, dx int) ([]int, bool) {
	m := e.table.MinSteps(v0, ve, dx)
	if m == Infeasible {
		return nil, false
	}
	accels := make([]int, m)
	v, pos := ve, dx
	for k := m; k > 0; k-- {
		found := false
		for _, a := range graph.Accelerations {
			pv, ppos := v-a, pos-v
			if e.table.MinSteps(v0, pv, ppos) == k-1 {
				accels[k-1] = a
				v, pos = pv, ppos
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return accels, true
}
