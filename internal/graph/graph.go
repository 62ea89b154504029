// Package graph describes the per-axis motion state graph used by the route
// planner, along with brute-force path queries over it.
//
// A node is a (velocity, position) pair on one axis. Each edge applies one unit
// acceleration in {-1, 0, +1} and then advances the position by the new
// velocity. Both coordinates are clamped to a Bounds; moves that leave it are
// not edges.
package graph

import (
	"errors"
	"fmt"
	"slices"
)

// Accelerations lists the per-axis accelerations in the order the planner tries them.
var Accelerations = [3]int{-1, 0, 1}

// Waypoint is an integer grid coordinate.
type Waypoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds holds the closed velocity and displacement ranges of one axis.
type Bounds struct {
	MinV int `json:"min_v"`
	MaxV int `json:"max_v"`
	MinD int `json:"min_d"`
	MaxD int `json:"max_d"`
}

// DefaultBounds returns velocity [-40, 40] and displacement [-4000, 4000].
func DefaultBounds() Bounds {
	return Bounds{MinV: -40, MaxV: 40, MinD: -4000, MaxD: 4000}
}

// Validate returns an error unless both ranges are non-empty and contain zero.
func (b Bounds) Validate() error {
	if b.MinV > 0 || b.MaxV < 0 {
		return fmt.Errorf("velocity range [%d, %d] must contain 0", b.MinV, b.MaxV)
	}
	if b.MinD > 0 || b.MaxD < 0 {
		return fmt.Errorf("displacement range [%d, %d] must contain 0", b.MinD, b.MaxD)
	}
	return nil
}

// NumV is the number of distinct velocities.
func (b Bounds) NumV() int { return b.MaxV - b.MinV + 1 }

// NumD is the number of distinct displacements.
func (b Bounds) NumD() int { return b.MaxD - b.MinD + 1 }

// ValidVelocity reports whether v lies in [MinV, MaxV].
func (b Bounds) ValidVelocity(v int) bool { return v >= b.MinV && v <= b.MaxV }

// ValidDisplacement reports whether d lies in [MinD, MaxD].
func (b Bounds) ValidDisplacement(d int) bool { return d >= b.MinD && d <= b.MaxD }

// Contains reports whether s lies inside both ranges.
func (b Bounds) Contains(s State) bool {
	return b.ValidVelocity(s.V) && b.ValidDisplacement(s.Pos)
}

// State is a node of the per-axis state graph.
type State struct {
	V   int
	Pos int
}

// Step applies acceleration a: the velocity changes first, then the position
// moves by the new velocity.
func (s State) Step(a int) State {
	v := s.V + a
	return State{V: v, Pos: s.Pos + v}
}

// Successors returns the in-bounds states one step away from s, in
// Accelerations order.
func (b Bounds) Successors(s State) []State {
	next := make([]State, 0, len(Accelerations))
	for _, a := range Accelerations {
		if n := s.Step(a); b.Contains(n) {
			next = append(next, n)
		}
	}
	return next
}

// ErrNoPath is returned when a target state is unreachable within the bounds.
var ErrNoPath = errors.New("no path")

// ShortestPath runs a breadth-first search from (v0, 0) to (ve, dx) and
// returns the accelerations of one shortest path. Its length is the minimum
// step count.
func (b Bounds) ShortestPath(v0, ve, dx int) ([]int, error) {
	start := State{V: v0}
	goal := State{V: ve, Pos: dx}
	if !b.Contains(start) || !b.Contains(goal) {
		return nil, fmt.Errorf("(%d -> %d, %d) outside bounds: %w", v0, ve, dx, ErrNoPath)
	}

	type link struct {
		from State
		acc  int
	}
	cameFrom := map[State]link{}
	seen := map[State]bool{start: true}
	queue := []State{start}
	for len(queue) > 0 && !seen[goal] {
		s := queue[0]
		queue = queue[1:]
		for _, a := range Accelerations {
			n := s.Step(a)
			if !b.Contains(n) || seen[n] {
				continue
			}
			seen[n] = true
			cameFrom[n] = link{from: s, acc: a}
			queue = append(queue, n)
		}
	}
	if !seen[goal] {
		return nil, fmt.Errorf("(%d -> %d, %d): %w", v0, ve, dx, ErrNoPath)
	}

	var path []int
	for cur := goal; cur != start; {
		l := cameFrom[cur]
		path = append(path, l.acc)
		cur = l.from
	}
	slices.Reverse(path)
	return path, nil
}

// ReachableIn returns, in ascending order, every terminal velocity of a walk
// that starts at (v0, 0) and ends at position dx after exactly steps steps.
func (b Bounds) ReachableIn(v0, dx, steps int) []int {
	start := State{V: v0}
	if !b.Contains(start) || steps < 0 {
		return nil
	}
	layer := map[State]bool{start: true}
	for range steps {
		next := make(map[State]bool, len(layer)*2)
		for s := range layer {
			for _, n := range b.Successors(s) {
				next[n] = true
			}
		}
		layer = next
	}

	var velocities []int
	for s := range layer {
		if s.Pos == dx {
			velocities = append(velocities, s.V)
		}
	}
	slices.Sort(velocities)
	return velocities
}
