package engine

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
)

// Search runs the beam search and returns the best plan through waypoints,
// which are visited in order starting from the origin at rest.
func (p *Planner) Search(waypoints []Waypoint) (Plan, error) {
	return p.search(waypoints, p.log)
}

func (p *Planner) search(waypoints []Waypoint, log *slog.Logger) (Plan, error) {
	// levels[i] holds the states after reaching waypoint i-1. A level is
	// finalized before the next one is built, and Prev indexes into it, so it
	// must not be reordered afterwards.
	levels := make([][]BeamState, len(waypoints)+1)
	levels[0] = []BeamState{{Prev: -1}}

	var from Waypoint
	for i, to := range waypoints {
		candidates := p.expand(levels[i], to.X-from.X, to.Y-from.Y)
		generated := len(candidates)
		next := p.finalize(candidates)
		p.metrics.ObserveLevel(len(levels[i]), generated, len(next))
		log.Debug("expanded waypoint",
			"waypoint", i, "states", len(levels[i]), "candidates", generated, "kept", len(next))

		if len(next) == 0 {
			err := fmt.Errorf("waypoint %d (%d, %d): %w", i, to.X, to.Y, ErrNoPlan)
			p.metrics.ObserveSearch(0, err)
			return Plan{}, err
		}
		levels[i+1] = next
		from = to
	}

	plan := backtrack(waypoints, levels)
	p.metrics.ObserveSearch(plan.TotalSteps, nil)
	return plan, nil
}

// expand generates every successor of level for a leg of (dx, dy). For each
// state the per-axis minimal step counts give a lower bound; every step count
// in [bound, bound+Window] reachable on both axes contributes the cross
// product of their terminal velocities.
func (p *Planner) expand(level []BeamState, dx, dy int) []BeamState {
	limit := p.cfg.CandidateLimit
	var next []BeamState
	for j, st := range level {
		minX := p.moves.Minimal(st.VX, dx, limit)
		minY := p.moves.Minimal(st.VY, dy, limit)
		if len(minX) == 0 || len(minY) == 0 {
			continue
		}

		bound := max(minX[0].Steps, minY[0].Steps)
		for s := bound; s <= bound+p.cfg.Window; s++ {
			movesX := p.moves.Exact(st.VX, dx, s, limit)
			if len(movesX) == 0 {
				continue
			}
			movesY := p.moves.Exact(st.VY, dy, s, limit)
			for _, mx := range movesX {
				for _, my := range movesY {
					next = append(next, BeamState{
						Steps: st.Steps + s,
						VX:    mx.Velocity,
						VY:    my.Velocity,
						Prev:  j,
					})
				}
			}
		}
	}
	return next
}

// finalize sorts a level best-first, drops repeated (steps, vx, vy) states
// keeping the earliest generated, and truncates to the beam width.
func (p *Planner) finalize(level []BeamState) []BeamState {
	slices.SortStableFunc(level, compareBeamStates)
	level = slices.CompactFunc(level, func(a, b BeamState) bool {
		return a.Steps == b.Steps && a.VX == b.VX && a.VY == b.VY
	})
	if len(level) > p.cfg.BeamWidth {
		level = level[:p.cfg.BeamWidth]
	}
	return slices.Clip(level)
}

// compareBeamStates orders by total steps, then by combined speed (slower is
// easier to redirect), then by vx and vy.
func compareBeamStates(a, b BeamState) int {
	return cmp.Or(
		cmp.Compare(a.Steps, b.Steps),
		cmp.Compare(abs(a.VX)+abs(a.VY), abs(b.VX)+abs(b.VY)),
		cmp.Compare(a.VX, b.VX),
		cmp.Compare(a.VY, b.VY),
	)
}

// backtrack follows Prev links from the best final state to the root.
func backtrack(waypoints []Waypoint, levels [][]BeamState) Plan {
	n := len(waypoints)
	chain := make([]BeamState, n+1)
	idx := 0
	for i := n; i >= 0; i-- {
		chain[i] = levels[i][idx]
		idx = chain[i].Prev
	}

	legs := make([]Leg, n)
	var from Waypoint
	for i, to := range waypoints {
		prev, cur := chain[i], chain[i+1]
		legs[i] = Leg{
			From:    from,
			To:      to,
			StartVX: prev.VX,
			StartVY: prev.VY,
			EndVX:   cur.VX,
			EndVY:   cur.VY,
			Steps:   cur.Steps - prev.Steps,
		}
		from = to
	}
	return Plan{Legs: legs, TotalSteps: chain[n].Steps}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
