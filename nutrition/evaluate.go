package nutrition

// Evaluate runs the full pipeline for a profile and goal. Body metrics and
// energy are independent; TDEE feeds the goal, and the goal feeds the macro
// split. The body-fat estimate takes the rounded BMI value.
//
// p.Activity must be valid (see UserProfile.Validate); CalculateTdee panics
// otherwise.
func Evaluate(p UserProfile, g Goal) CalculationResult {
	bmi := CalculateBmi(p.WeightKG, p.HeightCM)
	bmr := CalculateBmr(p)
	tdee := CalculateTdee(bmr, p.Activity)
	goalCalories := CalculateGoalCalories(tdee, g)

	return CalculationResult{
		Bmi:          bmi,
		BodyFatPct:   EstimateBodyFatPct(bmi.Value, p.Age, p.Sex),
		Bmr:          bmr,
		Tdee:         tdee,
		GoalCalories: goalCalories,
		Macros:       CalculateMacros(goalCalories, p.WeightKG),
	}
}
