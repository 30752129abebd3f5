package nutrition

import (
	"math"
	"testing"
)

/* ─── BMI ────────────────────────────────────────────────────────────── */

// TestCalculateBmi_MatchesFormula checks value against weight/(height/100)^2
// rounded to 1 decimal over a spread of inputs.
func TestCalculateBmi_MatchesFormula(t *testing.T) {
	cases := []struct{ weight, height float64 }{
		{70, 175},
		{45.5, 160},
		{120, 190},
		{3.2, 50},
		{250, 201.3},
	}
	for _, tc := range cases {
		h := tc.height / 100
		want := math.Round(tc.weight/(h*h)*10) / 10
		got := CalculateBmi(tc.weight, tc.height)
		if got.Value != want {
			t.Errorf("CalculateBmi(%v, %v).Value = %v, want %v", tc.weight, tc.height, got.Value, want)
		}
	}
}

func TestCalculateBmi_Typical(t *testing.T) {
	got := CalculateBmi(70, 175)
	if got.Value != 22.9 || got.Category != NormalWeight {
		t.Errorf("CalculateBmi(70, 175) = %+v, want {22.9 Normal weight}", got)
	}
}

// TestCalculateBmi_DegenerateHeight verifies the fallback for zero and
// negative heights. This is a defined result, not an error.
func TestCalculateBmi_DegenerateHeight(t *testing.T) {
	for _, h := range []float64{0, -1, -175} {
		for _, w := range []float64{0, 70, 500} {
			got := CalculateBmi(w, h)
			if got.Value != 0 || got.Category != NormalWeight {
				t.Errorf("CalculateBmi(%v, %v) = %+v, want {0 Normal weight}", w, h, got)
			}
		}
	}
}

// TestBmiCategoryFor_Boundaries walks the WHO band edges.
func TestBmiCategoryFor_Boundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want BmiCategory
	}{
		{0, Underweight},
		{18.49, Underweight},
		{18.5, NormalWeight},
		{24.9, NormalWeight},
		{24.95, NormalWeight},
		{25.0, Overweight},
		{29.9, Overweight},
		{29.95, Overweight},
		{30.0, Obesity},
		{55, Obesity},
		{-3, Underweight},
	}
	for _, tc := range cases {
		if got := BmiCategoryFor(tc.bmi); got != tc.want {
			t.Errorf("BmiCategoryFor(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

// TestCalculateBmi_CategoryUsesUnroundedValue picks a weight whose BMI is just
// under 18.5 but rounds up to 18.5 for display.
func TestCalculateBmi_CategoryUsesUnroundedValue(t *testing.T) {
	// 18.47 * 1.0^2 = 18.47 -> displays 18.5, category stays Underweight
	got := CalculateBmi(18.47, 100)
	if got.Value != 18.5 {
		t.Fatalf("Value = %v, want 18.5", got.Value)
	}
	if got.Category != Underweight {
		t.Errorf("Category = %q, want %q", got.Category, Underweight)
	}
}

/* ─── Body fat ───────────────────────────────────────────────────────── */

func TestEstimateBodyFatPct(t *testing.T) {
	cases := []struct {
		name string
		bmi  float64
		age  int
		sex  Sex
		want float64
	}{
		// 1.2*22.9 + 0.23*30 - 10.8 - 5.4 = 18.18
		{"male", 22.9, 30, Male, 18.2},
		// 1.2*22.9 + 0.23*30 - 5.4 = 28.98
		{"female", 22.9, 30, Female, 29.0},
		// 1.2*10 + 0.23*10 - 10.8 - 5.4 = -1.9; no clamping
		{"negative", 10, 10, Male, -1.9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateBodyFatPct(tc.bmi, tc.age, tc.sex)
			if got != tc.want {
				t.Errorf("EstimateBodyFatPct(%v, %d, %s) = %v, want %v", tc.bmi, tc.age, tc.sex, got, tc.want)
			}
		})
	}
}

func TestEstimateBodyFatPct_NotClamped(t *testing.T) {
	if got := EstimateBodyFatPct(0, 1, Male); got >= 0 {
		t.Errorf("EstimateBodyFatPct(0, 1, male) = %v, want a negative value", got)
	}
}
