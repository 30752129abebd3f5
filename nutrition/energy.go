package nutrition

import "fmt"

// activityFactors maps activity levels to their TDEE multiplier. This is the
// single source of truth for valid levels; request validation goes through
// Activity.Valid, which reads the same table.
var activityFactors = map[Activity]float64{
	Sedentary: 1.2,
	Light:     1.375,
	Moderate:  1.55,
	Very:      1.725,
	Extra:     1.9,
}

// ActivityFactor returns the multiplier for a, and false if a is unknown.
func ActivityFactor(a Activity) (float64, bool) {
	f, ok := activityFactors[a]
	return f, ok
}

// CalculateBmr computes basal metabolic rate (kcal/day) via Mifflin-St Jeor.
func CalculateBmr(p UserProfile) int {
	// Same base for both sexes; only the constant differs
	base := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == Male {
		return roundInt(base + 5)
	}
	return roundInt(base - 161)
}

// CalculateTdee scales a BMR by the activity multiplier. An activity outside
// the factor table means the caller skipped validation, so it panics instead
// of guessing a factor.
func CalculateTdee(bmr int, activity Activity) int {
	mult, ok := activityFactors[activity]
	if !ok {
		panic(fmt.Sprintf("nutrition: unknown activity level %q", activity))
	}
	return roundInt(float64(bmr) * mult)
}
