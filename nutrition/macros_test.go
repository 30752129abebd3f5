package nutrition

import "testing"

func TestCalculateMacros(t *testing.T) {
	got := CalculateMacros(2056, 70)
	// 2056*0.30/4 = 154.2, 2056*0.40/4 = 205.6, 2056*0.30/9 = 68.53
	want := MacroPlan{Kcal: 2056, ProteinG: 154, CarbsG: 206, FatG: 69, SplitsPct: MacroSplit{30, 40, 30}}
	if got != want {
		t.Errorf("CalculateMacros(2056, 70) = %+v, want %+v", got, want)
	}
}

// TestCalculateMacros_SplitIgnoresWeight checks the split is the constant
// 30/40/30 for any body weight, and the grams do not change with weight.
func TestCalculateMacros_SplitIgnoresWeight(t *testing.T) {
	base := CalculateMacros(2000, 70)
	for _, w := range []float64{0, 40, 70, 150, 400} {
		got := CalculateMacros(2000, w)
		if got.SplitsPct != (MacroSplit{P: 30, C: 40, F: 30}) {
			t.Errorf("SplitsPct for weight %v = %+v, want {30 40 30}", w, got.SplitsPct)
		}
		if got != base {
			t.Errorf("CalculateMacros(2000, %v) = %+v, want %+v", w, got, base)
		}
	}
}

// TestCalculateMacros_PercentagesNotReconciled: 1201 kcal gives grams whose
// calorie sum differs from 1201; the split still reports 30/40/30.
func TestCalculateMacros_PercentagesNotReconciled(t *testing.T) {
	got := CalculateMacros(1201, 60)
	// 90.075 -> 90, 120.1 -> 120, 40.03 -> 40
	if got.ProteinG != 90 || got.CarbsG != 120 || got.FatG != 40 {
		t.Fatalf("grams = %d/%d/%d, want 90/120/40", got.ProteinG, got.CarbsG, got.FatG)
	}
	if sum := got.ProteinG*4 + got.CarbsG*4 + got.FatG*9; sum == got.Kcal {
		t.Errorf("expected gram calories (%d) to differ from kcal (%d)", sum, got.Kcal)
	}
	if got.SplitsPct.P+got.SplitsPct.C+got.SplitsPct.F != 100 {
		t.Errorf("SplitsPct does not sum to 100: %+v", got.SplitsPct)
	}
}
