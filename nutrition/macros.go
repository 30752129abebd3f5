package nutrition

// Fixed macro split, in percent of calories.
const (
	ProteinPct = 30
	CarbsPct   = 40
	FatPct     = 30
)

// Energy density per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// CalculateMacros splits kcal into protein/carb/fat gram targets using the
// fixed 30/40/30 split. weightKG is accepted but not used yet; it is the hook
// for per-kg protein targets. SplitsPct is always the constant split and is
// not recomputed from the rounded grams.
func CalculateMacros(kcal int, weightKG float64) MacroPlan {
	k := float64(kcal)
	return MacroPlan{
		Kcal:      kcal,
		ProteinG:  roundInt(k * ProteinPct / 100 / KcalPerGramProtein),
		CarbsG:    roundInt(k * CarbsPct / 100 / KcalPerGramCarbs),
		FatG:      roundInt(k * FatPct / 100 / KcalPerGramFat),
		SplitsPct: MacroSplit{P: ProteinPct, C: CarbsPct, F: FatPct},
	}
}
