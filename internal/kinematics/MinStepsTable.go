package kinematics

import (
	"fmt"
	"math"

	"github.com/cxd309/waypoint-planner/internal/graph"
)

// Infeasible marks a (v0, ve, dx) triple that no in-bounds walk realises.
const Infeasible = math.MaxUint16

// Table is the exact minimum-step table for one axis. It is built once and
// never written afterwards, so it can be shared by every planner stage.
type Table struct {
	bounds   graph.Bounds
	numV     int
	numD     int
	steps    []uint16 // indexed by (v0, ve, dx)
	feasible int
}

// frontierEntry is one queued (v0, v, pos) node of the multi-source search.
type frontierEntry struct {
	v0, v, pos int32
}

// BuildTable runs one breadth-first search over (velocity, position), seeded
// at distance 0 from every start velocity at position 0 at once. Entries are
// keyed by the seeding velocity, so each answer belongs to one start condition.
func BuildTable(b graph.Bounds) (*Table, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("table bounds: %w", err)
	}

	t := &Table{
		bounds: b,
		numV:   b.NumV(),
		numD:   b.NumD(),
	}
	t.steps = make([]uint16, t.numV*t.numV*t.numD)
	for i := range t.steps {
		t.steps[i] = Infeasible
	}

	frontier := make([]frontierEntry, 0, t.numV)
	for v0 := b.MinV; v0 <= b.MaxV; v0++ {
		t.steps[t.index(v0, v0, 0)] = 0
		t.feasible++
		frontier = append(frontier, frontierEntry{v0: int32(v0), v: int32(v0)})
	}

	for dist := 0; len(frontier) > 0; dist++ {
		if dist+1 >= Infeasible {
			return nil, fmt.Errorf("step count %d exceeds table capacity", dist+1)
		}
		var next []frontierEntry
		for _, e := range frontier {
			v0 := int(e.v0)
			// Several seeds expand together, so a queued entry may already
			// hold a shorter distance.
			if int(t.steps[t.index(v0, int(e.v), int(e.pos))]) < dist {
				continue
			}
			cur := graph.State{V: int(e.v), Pos: int(e.pos)}
			for _, a := range graph.Accelerations {
				n := cur.Step(a)
				if !b.Contains(n) {
					continue
				}
				i := t.index(v0, n.V, n.Pos)
				if int(t.steps[i]) <= dist+1 {
					continue
				}
				t.steps[i] = uint16(dist + 1)
				t.feasible++
				next = append(next, frontierEntry{v0: e.v0, v: int32(n.V), pos: int32(n.Pos)})
			}
		}
		frontier = next
	}
	return t, nil
}

func (t *Table) index(v0, ve, dx int) int {
	b := t.bounds
	return ((v0-b.MinV)*t.numV+(ve-b.MinV))*t.numD + (dx - b.MinD)
}

// Bounds implements StepTable.
func (t *Table) Bounds() graph.Bounds { return t.bounds }

// MinSteps implements StepTable. Triples outside the bounds are Infeasible.
func (t *Table) MinSteps(v0, ve, dx int) int {
	b := t.bounds
	if !b.ValidVelocity(v0) || !b.ValidVelocity(ve) || !b.ValidDisplacement(dx) {
		return Infeasible
	}
	return int(t.steps[t.index(v0, ve, dx)])
}

// Feasible returns the number of finite entries.
func (t *Table) Feasible() int { return t.feasible }
