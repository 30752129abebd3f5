// Package nutrition is the calculation engine: body metrics, energy
// expenditure, goal calories, macro split and per-serving scaling. Every
// function is pure; callers re-run the pipeline whenever inputs change.
package nutrition

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidNumber   = errors.New("invalid number")
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrInvalidGoal     = errors.New("invalid goal")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

/* ─── Enums ──────────────────────────────────────────────────────────── */

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

func (s Sex) Valid() bool { return s == Male || s == Female }

type Activity string

const (
	Sedentary Activity = "sedentary"
	Light     Activity = "light"
	Moderate  Activity = "moderate"
	Very      Activity = "very"
	Extra     Activity = "extra"
)

// Valid reports whether a has an entry in the activity factor table.
func (a Activity) Valid() bool {
	_, ok := activityFactors[a]
	return ok
}

// UnitSystem is a display preference only. Profiles are always stored in
// kg and cm.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

func (u UnitSystem) Valid() bool { return u == Metric || u == Imperial }

type GoalMode string

const (
	Lose     GoalMode = "lose"
	Maintain GoalMode = "maintain"
	Gain     GoalMode = "gain"
)

/* ─── Value types ────────────────────────────────────────────────────── */

// Nutrient is nutritional content for one reference quantity: either per
// 100g or for a specific serving, never mixed. A nil FiberG means the source
// had no fiber datum, which is not the same as 0g.
type Nutrient struct {
	Kcal     float64  `json:"kcal"`
	ProteinG float64  `json:"protein_g"`
	CarbsG   float64  `json:"carbs_g"`
	FatG     float64  `json:"fat_g"`
	FiberG   *float64 `json:"fiber_g,omitempty"`
}

// Validate rejects negative or non-finite nutrient values.
func (n Nutrient) Validate() error {
	vals := []float64{n.Kcal, n.ProteinG, n.CarbsG, n.FatG}
	if n.FiberG != nil {
		vals = append(vals, *n.FiberG)
	}
	for _, v := range vals {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("nutrient value %v: %w", v, ErrInvalidNumber)
		}
	}
	return nil
}

// UserProfile holds the body stats the engine needs, in canonical units.
type UserProfile struct {
	Age      int      `json:"age"`
	Sex      Sex      `json:"sex"`
	HeightCM float64  `json:"height_cm"`
	WeightKG float64  `json:"weight_kg"`
	Activity Activity `json:"activity"`
}

// Validate checks the profile at the input boundary. The calculation
// functions themselves do not call it.
func (p UserProfile) Validate() error {
	switch {
	case p.Age <= 0:
		return fmt.Errorf("age must be positive: %w", ErrInvalidProfile)
	case !p.Sex.Valid():
		return fmt.Errorf("sex must be male or female: %w", ErrInvalidProfile)
	case !(p.HeightCM > 0) || math.IsInf(p.HeightCM, 0):
		return fmt.Errorf("height_cm must be positive: %w", ErrInvalidProfile)
	case !(p.WeightKG > 0) || math.IsInf(p.WeightKG, 0):
		return fmt.Errorf("weight_kg must be positive: %w", ErrInvalidProfile)
	case !p.Activity.Valid():
		return fmt.Errorf("activity must be one of: sedentary, light, moderate, very, extra: %w", ErrInvalidProfile)
	}
	return nil
}

// Goal is a weight-change direction and daily calorie delta. The delta is
// kept when Mode is Maintain but ignored by CalculateGoalCalories.
type Goal struct {
	Mode            GoalMode `json:"mode"`
	DeltaKcalPerDay float64  `json:"delta_kcal_per_day"`
}

type BmiCategory string

const (
	Underweight  BmiCategory = "Underweight"
	NormalWeight BmiCategory = "Normal weight"
	Overweight   BmiCategory = "Overweight"
	Obesity      BmiCategory = "Obesity"
)

type BmiResult struct {
	Value    float64     `json:"value"`
	Category BmiCategory `json:"category"`
}

type MacroSplit struct {
	P int `json:"p"`
	C int `json:"c"`
	F int `json:"f"`
}

type MacroPlan struct {
	Kcal      int        `json:"kcal"`
	ProteinG  int        `json:"protein_g"`
	CarbsG    int        `json:"carbs_g"`
	FatG      int        `json:"fat_g"`
	SplitsPct MacroSplit `json:"splitsPct"`
}

// CalculationResult is the aggregate output of Evaluate. It is never
// persisted; it is rebuilt from the current profile and goal on demand.
type CalculationResult struct {
	Bmi          BmiResult `json:"bmi"`
	BodyFatPct   float64   `json:"bodyFatPct"`
	Bmr          int       `json:"bmr"`
	Tdee         int       `json:"tdee"`
	GoalCalories int       `json:"goalCalories"`
	Macros       MacroPlan `json:"macros"`
}

/* ─── Rounding ───────────────────────────────────────────────────────── */

// All rounding uses math.Round (half away from zero).

func roundInt(x float64) int { return int(math.Round(x)) }

func round1(x float64) float64 { return math.Round(x*10) / 10 }
