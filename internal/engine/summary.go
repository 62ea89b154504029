package engine

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize reports leg statistics for plan.
func Summarize(plan Plan) Summary {
	s := Summary{Legs: len(plan.Legs), TotalSteps: plan.TotalSteps}
	if len(plan.Legs) == 0 {
		return s
	}

	steps := make([]float64, len(plan.Legs))
	for i, leg := range plan.Legs {
		steps[i] = float64(leg.Steps)
		s.PeakSpeed = max(s.PeakSpeed, abs(leg.EndVX)+abs(leg.EndVY))
	}
	s.MeanLegSteps, s.StdDevLegSteps = stat.MeanStdDev(steps, nil)
	if len(steps) < 2 {
		// The sample deviation of one leg is undefined.
		s.StdDevLegSteps = 0
	}
	s.LongestLegSteps = int(floats.Max(steps))
	return s
}
