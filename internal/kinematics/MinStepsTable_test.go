package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/waypoint-planner/internal/graph"
)

func mustTable(t *testing.T, b graph.Bounds) *Table {
	t.Helper()
	table, err := BuildTable(b)
	require.NoError(t, err)
	return table
}

func TestBuildTableMatchesBreadthFirstOracle(t *testing.T) {
	t.Parallel()

	b := graph.Bounds{MinV: -3, MaxV: 3, MinD: -15, MaxD: 15}
	table := mustTable(t, b)

	feasible := 0
	for v0 := b.MinV; v0 <= b.MaxV; v0++ {
		for ve := b.MinV; ve <= b.MaxV; ve++ {
			for dx := b.MinD; dx <= b.MaxD; dx++ {
				got := table.MinSteps(v0, ve, dx)
				path, err := b.ShortestPath(v0, ve, dx)
				if err != nil {
					assert.Equal(t, Infeasible, got, "v0=%d ve=%d dx=%d", v0, ve, dx)
					continue
				}
				feasible++
				assert.Equal(t, len(path), got, "v0=%d ve=%d dx=%d", v0, ve, dx)
			}
		}
	}
	assert.Equal(t, feasible, table.Feasible())
}

func TestTableLookups(t *testing.T) {
	t.Parallel()

	b := graph.Bounds{MinV: -3, MaxV: 3, MinD: -15, MaxD: 15}
	table := mustTable(t, b)

	t.Run("origin is free", func(t *testing.T) {
		for v := b.MinV; v <= b.MaxV; v++ {
			assert.Equal(t, 0, table.MinSteps(v, v, 0))
		}
	})

	t.Run("outside bounds is infeasible", func(t *testing.T) {
		assert.Equal(t, Infeasible, table.MinSteps(4, 0, 0))
		assert.Equal(t, Infeasible, table.MinSteps(0, -4, 0))
		assert.Equal(t, Infeasible, table.MinSteps(0, 0, 16))
		assert.Equal(t, Infeasible, table.MinSteps(0, 0, -16))
	})

	t.Run("bang-bang", func(t *testing.T) {
		// 1+2+1 cells, then brake to rest.
		assert.Equal(t, 4, table.MinSteps(0, 0, 4))
	})

	assert.Equal(t, b, table.Bounds())
}

func TestBuildTableRejectsBadBounds(t *testing.T) {
	t.Parallel()

	_, err := BuildTable(graph.Bounds{MinV: 1, MaxV: 2, MinD: -1, MaxD: 1})
	assert.Error(t, err)
}
