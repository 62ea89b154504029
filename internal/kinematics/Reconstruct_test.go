package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/waypoint-planner/internal/graph"
)

// replay applies accels from velocity v and returns the final velocity and the
// distance covered.
func replay(v int, accels []int) (int, int) {
	pos := 0
	for _, a := range accels {
		v += a
		pos += v
	}
	return v, pos
}

func TestReconstructRoundTrip(t *testing.T) {
	t.Parallel()

	b := graph.Bounds{MinV: -3, MaxV: 3, MinD: -15, MaxD: 15}
	table := mustTable(t, b)

	for depth := 0; depth <= 3; depth++ {
		moves := NewEnumerator(table, depth)
		checked := 0
		for vs := b.MinV; vs <= b.MaxV; vs++ {
			for ve := b.MinV; ve <= b.MaxV; ve++ {
				for dx := b.MinD; dx <= b.MaxD; dx++ {
					for steps := 0; steps <= 20; steps++ {
						if !moves.CanReach(vs, ve, dx, steps) {
							continue
						}
						checked++
						accels, err := moves.Reconstruct(dx, vs, ve, steps)
						require.NoError(t, err, "depth=%d vs=%d ve=%d dx=%d steps=%d", depth, vs, ve, dx, steps)
						require.Len(t, accels, steps)

						v := vs
						for _, a := range accels {
							require.Contains(t, graph.Accelerations, a)
							v += a
							require.True(t, b.ValidVelocity(v))
						}
						gotV, gotD := replay(vs, accels)
						require.Equal(t, ve, gotV)
						require.Equal(t, dx, gotD)
					}
				}
			}
		}
		assert.NotZero(t, checked, "depth %d", depth)
	}
}

func TestMinimalWalk(t *testing.T) {
	t.Parallel()

	b := graph.Bounds{MinV: -3, MaxV: 3, MinD: -15, MaxD: 15}
	table := mustTable(t, b)
	moves := NewEnumerator(table, DefaultLookaheadDepth)

	for v0 := b.MinV; v0 <= b.MaxV; v0++ {
		for ve := b.MinV; ve <= b.MaxV; ve++ {
			for dx := b.MinD; dx <= b.MaxD; dx++ {
				m := table.MinSteps(v0, ve, dx)
				accels, ok := moves.minimalWalk(v0, ve, dx)
				if m == Infeasible {
					assert.False(t, ok)
					continue
				}
				require.True(t, ok, "v0=%d ve=%d dx=%d", v0, ve, dx)
				require.Len(t, accels, m)

				// Every intermediate state stays inside the table, measured
				// from the walk's own start.
				v, pos := v0, 0
				for _, a := range accels {
					v += a
					pos += v
					require.True(t, b.Contains(graph.State{V: v, Pos: pos}))
				}
				assert.Equal(t, ve, v)
				assert.Equal(t, dx, pos)
			}
		}
	}
}

func TestReconstruct(t *testing.T) {
	t.Parallel()

	moves := NewEnumerator(mustTable(t, graph.Bounds{MinV: -4, MaxV: 4, MinD: -50, MaxD: 50}), DefaultLookaheadDepth)

	t.Run("bang-bang", func(t *testing.T) {
		accels, err := moves.Reconstruct(5, 0, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 0}, accels)
	})

	t.Run("detour outside the remaining displacement", func(t *testing.T) {
		tight := NewEnumerator(mustTable(t, graph.Bounds{MinV: -3, MaxV: 3, MinD: -15, MaxD: 15}), DefaultLookaheadDepth)
		require.True(t, tight.CanReach(-3, -3, 2, 17))

		accels, err := tight.Reconstruct(2, -3, -3, 17)
		require.NoError(t, err)
		require.Len(t, accels, 17)
		gotV, gotD := replay(-3, accels)
		assert.Equal(t, -3, gotV)
		assert.Equal(t, 2, gotD)
	})

	t.Run("zero steps", func(t *testing.T) {
		accels, err := moves.Reconstruct(0, 3, 3, 0)
		require.NoError(t, err)
		assert.Empty(t, accels)
	})

	t.Run("too few steps", func(t *testing.T) {
		_, err := moves.Reconstruct(5, 0, 0, 1)
		assert.ErrorIs(t, err, ErrUnreachable)
	})

	t.Run("zero steps away from target", func(t *testing.T) {
		_, err := moves.Reconstruct(1, 0, 0, 0)
		assert.ErrorIs(t, err, ErrUnreachable)
	})

	t.Run("negative steps", func(t *testing.T) {
		_, err := moves.Reconstruct(0, 0, 0, -1)
		assert.ErrorIs(t, err, ErrUnreachable)
	})
}
