package nutrition

import (
	"fmt"
	"math"
)

// MinGoalCalories is the daily intake floor. Goal calories never drop below
// it, whatever deficit was requested.
const MinGoalCalories = 1200

// Delta bounds accepted from user input. CalculateGoalCalories does not
// enforce them.
const (
	MinDeltaKcal     = 250
	MaxLoseDeltaKcal = 750
	MaxGainDeltaKcal = 500
)

// Validate checks a goal at the input boundary. Maintain accepts any delta
// since it is ignored.
func (g Goal) Validate() error {
	if math.IsNaN(g.DeltaKcalPerDay) || math.IsInf(g.DeltaKcalPerDay, 0) {
		return fmt.Errorf("delta_kcal_per_day is not a number: %w", ErrInvalidGoal)
	}
	switch g.Mode {
	case Maintain:
		return nil
	case Lose:
		if g.DeltaKcalPerDay < MinDeltaKcal || g.DeltaKcalPerDay > MaxLoseDeltaKcal {
			return fmt.Errorf("deficit must be between %d and %d kcal/day: %w", MinDeltaKcal, MaxLoseDeltaKcal, ErrInvalidGoal)
		}
	case Gain:
		if g.DeltaKcalPerDay < MinDeltaKcal || g.DeltaKcalPerDay > MaxGainDeltaKcal {
			return fmt.Errorf("surplus must be between %d and %d kcal/day: %w", MinDeltaKcal, MaxGainDeltaKcal, ErrInvalidGoal)
		}
	default:
		return fmt.Errorf("mode must be one of: lose, maintain, gain: %w", ErrInvalidGoal)
	}
	return nil
}

// CalculateGoalCalories adjusts TDEE by the goal's delta (subtract to lose,
// add to gain, nothing to maintain) and clamps the result to
// MinGoalCalories. The clamp silently overrides an aggressive deficit.
func CalculateGoalCalories(tdee int, g Goal) int {
	var adjustment float64
	switch g.Mode {
	case Lose:
		adjustment = -g.DeltaKcalPerDay
	case Gain:
		adjustment = g.DeltaKcalPerDay
	}
	return max(MinGoalCalories, roundInt(float64(tdee)+adjustment))
}
