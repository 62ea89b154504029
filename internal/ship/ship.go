// Package ship replays a command stream against an ordered waypoint route and
// tracks which waypoints the ship has visited.
package ship

import (
	"errors"
	"fmt"

	"github.com/cxd309/waypoint-planner/internal/command"
	"github.com/cxd309/waypoint-planner/internal/graph"
)

// ShipState describes how far along its route a ship is.
type ShipState string

const (
	StateEnRoute  ShipState = "en_route"
	StateComplete ShipState = "complete"
)

// ErrIncomplete is returned when a replay ends before every waypoint is visited.
var ErrIncomplete = errors.New("route incomplete")

// Ship is a point mass on the grid with live replay state. It starts at the
// origin at rest.
type Ship struct {
	Position     graph.Waypoint `json:"position"`
	VX           int            `json:"vx"`
	VY           int            `json:"vy"`
	Steps        int            `json:"steps"`
	State        ShipState      `json:"state"`
	NextWaypoint graph.Waypoint `json:"next_waypoint"`
	route        []graph.Waypoint
	nextIndex    int
}

// NewShip places a ship at the origin. Leading waypoints at the origin count as
// visited immediately.
func NewShip(route []graph.Waypoint) *Ship {
	s := &Ship{route: route, State: StateEnRoute}
	s.arrive()
	return s
}

// Apply advances the ship by one step: velocity first, then position.
func (s *Ship) Apply(acc command.Acceleration) {
	s.VX += acc.X
	s.VY += acc.Y
	s.Position.X += s.VX
	s.Position.Y += s.VY
	s.Steps++
	s.arrive()
}

// Visited returns the number of waypoints reached so far.
func (s *Ship) Visited() int { return s.nextIndex }

// arrive marks the next waypoint, and any identical ones after it, as visited
// while the ship sits on them.
func (s *Ship) arrive() {
	for s.nextIndex < len(s.route) && s.route[s.nextIndex] == s.Position {
		s.nextIndex++
	}
	if s.nextIndex >= len(s.route) {
		s.State = StateComplete
		return
	}
	s.NextWaypoint = s.route[s.nextIndex]
}

// ShipLog is a point-in-time snapshot of a Ship.
type ShipLog struct {
	Position graph.Waypoint `json:"position"`
	VX       int            `json:"vx"`
	VY       int            `json:"vy"`
	Steps    int            `json:"steps"`
	State    ShipState      `json:"state"`
	Visited  int            `json:"visited"`
}

// GetLog returns a point-in-time snapshot of the ship state.
func (s *Ship) GetLog() ShipLog {
	return ShipLog{
		Position: s.Position,
		VX:       s.VX,
		VY:       s.VY,
		Steps:    s.Steps,
		State:    s.State,
		Visited:  s.nextIndex,
	}
}

// Replay runs commands from the origin and returns the final snapshot.
func Replay(route []graph.Waypoint, commands string) (ShipLog, error) {
	accels, err := command.DecodeString(commands)
	if err != nil {
		return ShipLog{}, err
	}
	s := NewShip(route)
	for _, acc := range accels {
		s.Apply(acc)
	}
	return s.GetLog(), nil
}

// Verify checks that commands visit every waypoint of route in order.
func Verify(route []graph.Waypoint, commands string) error {
	final, err := Replay(route, commands)
	if err != nil {
		return fmt.Errorf("decoding commands: %w", err)
	}
	if final.State != StateComplete {
		next := route[final.Visited]
		return fmt.Errorf("visited %d of %d waypoints, next (%d, %d): %w",
			final.Visited, len(route), next.X, next.Y, ErrIncomplete)
	}
	return nil
}
