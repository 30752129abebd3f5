package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"lg/macro-calc-api/foods"
	"lg/macro-calc-api/nutrition"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

/* ─── evaluate ───────────────────────────────────────────────────────── */

func TestEvaluate_TextOutput(t *testing.T) {
	out, err := run(t, "evaluate", "--goal", "lose", "--delta", "500")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, want := range []string{
		"BMI:            22.9 (Normal weight)",
		"Body fat:       18.2%",
		"BMR:            1649 kcal",
		"TDEE:           2556 kcal",
		"Goal calories:  2056 kcal",
		"P 154g (30%) / C 206g (40%) / F 69g (30%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEvaluate_JSONMaintain(t *testing.T) {
	out, err := run(t, "evaluate", "--json")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	var r nutrition.CalculationResult
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if r.GoalCalories != 2556 {
		t.Errorf("GoalCalories = %d, want 2556 (maintain = TDEE)", r.GoalCalories)
	}
	if r.Macros.ProteinG != 192 || r.Macros.CarbsG != 256 || r.Macros.FatG != 85 {
		t.Errorf("Macros = %+v, want 192/256/85", r.Macros)
	}
}

// TestEvaluate_ImperialInput feeds the imperial display values of 175cm/70kg
// and expects the same BMR.
func TestEvaluate_ImperialInput(t *testing.T) {
	out, err := run(t, "evaluate", "--units", "imperial", "--height", "68.9", "--weight", "154.3", "--json")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	var r nutrition.CalculationResult
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Bmr != 1649 {
		t.Errorf("Bmr = %d, want 1649", r.Bmr)
	}
	if r.Bmi.Value != 22.9 {
		t.Errorf("Bmi = %v, want 22.9", r.Bmi.Value)
	}
}

func TestEvaluate_UnitsFromEnv(t *testing.T) {
	t.Setenv("CALC_UNITS", "imperial")
	out, err := run(t, "evaluate", "--height", "68.9", "--weight", "154.3", "--json")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !strings.Contains(out, `"bmr": 1649`) {
		t.Errorf("expected bmr 1649 with imperial env units, got:\n%s", out)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"bad weight", []string{"evaluate", "--weight", "abc"}, nutrition.ErrInvalidNumber},
		{"unknown activity", []string{"evaluate", "--activity", "couch"}, nutrition.ErrInvalidProfile},
		{"zero age", []string{"evaluate", "--age", "0"}, nutrition.ErrInvalidProfile},
		{"delta too large", []string{"evaluate", "--goal", "lose", "--delta", "1000"}, nutrition.ErrInvalidGoal},
		{"unknown goal", []string{"evaluate", "--goal", "bulk"}, nutrition.ErrInvalidGoal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			if !errors.Is(err, tc.is) {
				t.Errorf("err = %v, want %v", err, tc.is)
			}
		})
	}
}

func TestEvaluate_BadUnits(t *testing.T) {
	if _, err := run(t, "evaluate", "--units", "stones"); err == nil {
		t.Error("expected error for unknown unit system")
	}
}

/* ─── serving / foods ────────────────────────────────────────────────── */

func TestServing_ApplePiece(t *testing.T) {
	out, err := run(t, "serving", "apple_raw", "--unit", "piece")
	if err != nil {
		t.Fatalf("serving: %v", err)
	}
	if !strings.Contains(out, "Apple, raw: 1 × piece (182 g)") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "95 kcal  P 0.5g  C 25.5g  F 0.4g  fiber 4.4g") {
		t.Errorf("unexpected nutrients:\n%s", out)
	}
}

func TestServing_DefaultsToFirstServing(t *testing.T) {
	out, err := run(t, "serving", "chicken_breast_cooked")
	if err != nil {
		t.Fatalf("serving: %v", err)
	}
	if !strings.Contains(out, "1 × g (100 g)") {
		t.Errorf("expected the 100g serving, got:\n%s", out)
	}
	if strings.Contains(out, "fiber") {
		t.Errorf("chicken has no fiber datum, got:\n%s", out)
	}
}

func TestServing_Errors(t *testing.T) {
	if _, err := run(t, "serving", "no_such_food"); !errors.Is(err, foods.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
	if _, err := run(t, "serving", "apple_raw", "--unit", "slice"); !errors.Is(err, foods.ErrUnknownServing) {
		t.Errorf("unknown unit: err = %v, want ErrUnknownServing", err)
	}
	if _, err := run(t, "serving", "apple_raw", "--qty", "-1"); !errors.Is(err, nutrition.ErrInvalidQuantity) {
		t.Errorf("negative qty: err = %v, want ErrInvalidQuantity", err)
	}
}

func TestFoods_Search(t *testing.T) {
	out, err := run(t, "foods", "rice")
	if err != nil {
		t.Fatalf("foods: %v", err)
	}
	if !strings.Contains(out, "brown_rice_cooked") || !strings.Contains(out, "white_rice_cooked") {
		t.Errorf("expected both rice entries, got:\n%s", out)
	}
}

func TestFoods_NoMatchAndShortTerm(t *testing.T) {
	out, err := run(t, "foods", "zzzz")
	if err != nil {
		t.Fatalf("foods: %v", err)
	}
	if !strings.Contains(out, "No foods match") {
		t.Errorf("expected no-match message, got:\n%s", out)
	}
	if _, err := run(t, "foods", "a"); err == nil {
		t.Error("expected error for a one-character term")
	}
}
