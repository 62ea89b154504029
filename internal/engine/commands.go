package engine

import (
	"fmt"
	"strings"

	"github.com/cxd309/waypoint-planner/internal/command"
)

// Commands reconstructs every leg of plan on both axes and encodes the result
// as one keypad symbol per step.
func (p *Planner) Commands(plan Plan) (string, error) {
	var sb strings.Builder
	sb.Grow(plan.TotalSteps)
	for i, leg := range plan.Legs {
		xs, err := p.moves.Reconstruct(leg.To.X-leg.From.X, leg.StartVX, leg.EndVX, leg.Steps)
		if err != nil {
			return "", fmt.Errorf("leg %d x axis: %w", i, err)
		}
		ys, err := p.moves.Reconstruct(leg.To.Y-leg.From.Y, leg.StartVY, leg.EndVY, leg.Steps)
		if err != nil {
			return "", fmt.Errorf("leg %d y axis: %w", i, err)
		}
		symbols, err := command.EncodeAxes(xs, ys)
		if err != nil {
			return "", fmt.Errorf("leg %d: %w", i, err)
		}
		sb.WriteString(symbols)
	}
	return sb.String(), nil
}
