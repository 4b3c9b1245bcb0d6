package fitness

import (
	"math"

	"fitflow/internal/models"
)

// GoalDirection indicates which way a goal's value should move.
type GoalDirection string

const (
	// DirectionDecrease means success is current dropping toward target
	// (weight loss style goals).
	DirectionDecrease GoalDirection = "decrease"
	// DirectionIncrease means success is current rising toward target.
	DirectionIncrease GoalDirection = "increase"
)

// GoalProgress describes how far along a goal is.
type GoalProgress struct {
	Direction GoalDirection `json:"direction"`
	// Percentage is the raw completion percentage rounded to the
	// nearest integer. It can fall outside [0,100] on overshoot or
	// regression; callers render it as the "% complete" text.
	Percentage int `json:"percentage"`
	// Display is the value for progress bars, clamped to [0,100].
	Display float64 `json:"display"`
}

// ComputeGoalProgress derives direction and completion from a goal's
// initial/current/target values. Goals created before the initial
// snapshot existed are treated as having started at their current
// value.
func ComputeGoalProgress(g *models.Goal) GoalProgress {
	initial := g.InitialValue()

	// initial > target means the user wants the number to go down;
	// equal values fall through to the increase formula.
	if initial > g.Target {
		raw := 0.0
		if span := initial - g.Target; span != 0 {
			raw = (initial - g.Current) / span * 100
		}
		return GoalProgress{
			Direction:  DirectionDecrease,
			Percentage: int(math.Round(raw)),
			Display:    clampPercent(raw),
		}
	}

	raw := 0.0
	if g.Target != 0 {
		raw = g.Current / g.Target * 100
	}
	return GoalProgress{
		Direction:  DirectionIncrease,
		Percentage: int(math.Round(raw)),
		Display:    clampPercent(raw),
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
