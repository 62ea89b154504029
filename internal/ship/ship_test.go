package ship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/waypoint-planner/internal/command"
	"github.com/cxd309/waypoint-planner/internal/graph"
)

func TestShipApply(t *testing.T) {
	t.Parallel()

	s := NewShip([]graph.Waypoint{{X: 3, Y: 1}})
	assert.Equal(t, StateEnRoute, s.State)
	assert.Equal(t, graph.Waypoint{X: 3, Y: 1}, s.NextWaypoint)

	s.Apply(command.Acceleration{X: 1, Y: 1})
	assert.Equal(t, graph.Waypoint{X: 1, Y: 1}, s.Position)
	s.Apply(command.Acceleration{X: 1, Y: -1})
	assert.Equal(t, graph.Waypoint{X: 3, Y: 1}, s.Position)
	assert.Equal(t, 2, s.VX)
	assert.Equal(t, 0, s.VY)
	assert.Equal(t, StateComplete, s.State)
	assert.Equal(t, 1, s.Visited())
}

func TestNewShipVisitsOrigin(t *testing.T) {
	t.Parallel()

	s := NewShip([]graph.Waypoint{{}, {}, {X: 1}})
	assert.Equal(t, 2, s.Visited())
	assert.Equal(t, StateEnRoute, s.State)

	assert.Equal(t, StateComplete, NewShip(nil).State)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("empty stream at origin", func(t *testing.T) {
		assert.NoError(t, Verify([]graph.Waypoint{{}}, ""))
	})

	t.Run("order matters", func(t *testing.T) {
		route := []graph.Waypoint{{X: 5}, {X: 1}}
		// 6 6 5 reaches x=5 passing x=1 on the way; x=1 is only counted
		// once x=5 is done.
		err := Verify(route, "665")
		assert.ErrorIs(t, err, ErrIncomplete)
	})

	t.Run("bang-bang to five", func(t *testing.T) {
		assert.NoError(t, Verify([]graph.Waypoint{{X: 5}}, "665"))
	})

	t.Run("invalid symbol", func(t *testing.T) {
		err := Verify([]graph.Waypoint{{X: 5}}, "6x")
		assert.ErrorIs(t, err, command.ErrInvalidSymbol)
	})
}

func TestReplay(t *testing.T) {
	t.Parallel()

	got, err := Replay([]graph.Waypoint{{X: 5}, {}}, "665")
	require.NoError(t, err)
	assert.Equal(t, ShipLog{
		Position: graph.Waypoint{X: 5},
		VX:       2,
		Steps:    3,
		State:    StateEnRoute,
		Visited:  1,
	}, got)
}
