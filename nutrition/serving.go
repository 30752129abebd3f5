package nutrition

// NutrientsForServing scales a per-100g record to grams. Kcal rounds to a
// whole number, macros to 1 decimal. FiberG stays nil when the source has no
// fiber datum.
func NutrientsForServing(per100g Nutrient, grams float64) Nutrient {
	factor := grams / 100
	out := Nutrient{
		Kcal:     float64(roundInt(per100g.Kcal * factor)),
		ProteinG: round1(per100g.ProteinG * factor),
		CarbsG:   round1(per100g.CarbsG * factor),
		FatG:     round1(per100g.FatG * factor),
	}
	if per100g.FiberG != nil {
		fiber := round1(*per100g.FiberG * factor)
		out.FiberG = &fiber
	}
	return out
}
