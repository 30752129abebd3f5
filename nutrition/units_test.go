package nutrition

import (
	"errors"
	"math"
	"testing"
)

func TestUnitConversions_RoundTrip(t *testing.T) {
	for _, x := range []float64{0.1, 70, 500} {
		if got := LbToKg(KgToLb(x)); math.Abs(got-x) > 1e-9 {
			t.Errorf("LbToKg(KgToLb(%v)) = %v", x, got)
		}
		if got := InToCm(CmToIn(x)); math.Abs(got-x) > 1e-9 {
			t.Errorf("InToCm(CmToIn(%v)) = %v", x, got)
		}
	}
}

func TestDisplayValues(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"metric weight unrounded", DisplayWeight(70.25, Metric), "70.25"},
		{"metric height", DisplayHeight(175, Metric), "175"},
		{"imperial weight", DisplayWeight(70, Imperial), "154.3"},  // 154.3234
		{"imperial height", DisplayHeight(175, Imperial), "68.9"}, // 68.897675
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestParseDisplay_RejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "12kg", "NaN", "Inf", "-Inf"} {
		if _, err := ParseDisplayWeight(in, Metric); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("ParseDisplayWeight(%q) err = %v, want ErrInvalidNumber", in, err)
		}
		if _, err := ParseDisplayHeight(in, Imperial); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("ParseDisplayHeight(%q) err = %v, want ErrInvalidNumber", in, err)
		}
	}
}

func TestParseDisplay_Imperial(t *testing.T) {
	kg, err := ParseDisplayWeight(" 154.3234 ", Imperial)
	if err != nil {
		t.Fatalf("ParseDisplayWeight: %v", err)
	}
	if math.Abs(kg-70) > 1e-9 {
		t.Errorf("kg = %v, want 70", kg)
	}
	cm, err := ParseDisplayHeight("69", Imperial)
	if err != nil {
		t.Fatalf("ParseDisplayHeight: %v", err)
	}
	if math.Abs(cm-69/InPerCm) > 1e-9 {
		t.Errorf("cm = %v, want %v", cm, 69/InPerCm)
	}
}

// TestApplyDisplayInput_RejectedKeepsCanonical verifies a bad weight leaves
// the stored weight untouched while a good height still applies.
func TestApplyDisplayInput_RejectedKeepsCanonical(t *testing.T) {
	p := UserProfile{Age: 30, Sex: Male, HeightCM: 175, WeightKG: 70, Activity: Moderate}
	weight, height := "abc", "180"
	got, rejected := ApplyDisplayInput(p, Metric, &weight, &height)
	if got.WeightKG != 70 {
		t.Errorf("WeightKG = %v, want 70", got.WeightKG)
	}
	if got.HeightCM != 180 {
		t.Errorf("HeightCM = %v, want 180", got.HeightCM)
	}
	if len(rejected) != 1 || rejected[0] != "weight" {
		t.Errorf("rejected = %v, want [weight]", rejected)
	}
	if p.HeightCM != 175 {
		t.Error("input profile was mutated")
	}
}

// TestApplyDisplayInput_NoDriftOnToggle: showing a profile in imperial and
// switching back must not change the canonical values when nothing is edited.
func TestApplyDisplayInput_NoDriftOnToggle(t *testing.T) {
	p := UserProfile{Age: 30, Sex: Female, HeightCM: 163.7, WeightKG: 61.234, Activity: Light}
	for i := 0; i < 10; i++ {
		_ = DisplayWeight(p.WeightKG, Imperial)
		_ = DisplayHeight(p.HeightCM, Imperial)
		p, _ = ApplyDisplayInput(p, Imperial, nil, nil)
	}
	if p.WeightKG != 61.234 || p.HeightCM != 163.7 {
		t.Errorf("profile drifted to %+v", p)
	}
}
