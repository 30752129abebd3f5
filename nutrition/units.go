package nutrition

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// LbPerKg is the pounds-per-kilogram factor used in both directions.
	LbPerKg = 2.20462
	// InPerCm is the inches-per-centimetre factor used in both directions.
	InPerCm = 0.393701
)

func KgToLb(kg float64) float64 { return kg * LbPerKg }
func LbToKg(lb float64) float64 { return lb / LbPerKg }
func CmToIn(cm float64) float64 { return cm * InPerCm }
func InToCm(in float64) float64 { return in / InPerCm }

// RoundDisplay rounds a converted value to 1 decimal for an edit field.
// Canonical values are never passed through it.
func RoundDisplay(x float64) float64 { return round1(x) }

// DisplayWeight formats a canonical kg weight for the given unit system.
// Metric shows the stored value as-is; imperial shows pounds to 1 decimal.
func DisplayWeight(kg float64, sys UnitSystem) string {
	if sys == Imperial {
		return strconv.FormatFloat(RoundDisplay(KgToLb(kg)), 'f', 1, 64)
	}
	return strconv.FormatFloat(kg, 'f', -1, 64)
}

// DisplayHeight formats a canonical cm height for the given unit system.
func DisplayHeight(cm float64, sys UnitSystem) string {
	if sys == Imperial {
		return strconv.FormatFloat(RoundDisplay(CmToIn(cm)), 'f', 1, 64)
	}
	return strconv.FormatFloat(cm, 'f', -1, 64)
}

// parseDisplay parses a user-typed number. Empty, unparsable, NaN and
// infinite input all return ErrInvalidNumber instead of a zero value.
func parseDisplay(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return v, nil
}

// ParseDisplayWeight converts a display-side weight string to canonical kg.
func ParseDisplayWeight(s string, sys UnitSystem) (float64, error) {
	v, err := parseDisplay(s)
	if err != nil {
		return 0, fmt.Errorf("weight: %w", err)
	}
	if sys == Imperial {
		return LbToKg(v), nil
	}
	return v, nil
}

// ParseDisplayHeight converts a display-side height string to canonical cm.
func ParseDisplayHeight(s string, sys UnitSystem) (float64, error) {
	v, err := parseDisplay(s)
	if err != nil {
		return 0, fmt.Errorf("height: %w", err)
	}
	if sys == Imperial {
		return InToCm(v), nil
	}
	return v, nil
}

// ApplyDisplayInput returns p with any supplied display values converted into
// its canonical fields. A nil pointer means the field was not edited. Fields
// that fail to parse keep their previous canonical value and are listed in
// rejected ("weight", "height").
func ApplyDisplayInput(p UserProfile, sys UnitSystem, weight, height *string) (UserProfile, []string) {
	var rejected []string
	if weight != nil {
		if kg, err := ParseDisplayWeight(*weight, sys); err == nil {
			p.WeightKG = kg
		} else {
			rejected = append(rejected, "weight")
		}
	}
	if height != nil {
		if cm, err := ParseDisplayHeight(*height, sys); err == nil {
			p.HeightCM = cm
		} else {
			rejected = append(rejected, "height")
		}
	}
	return p, rejected
}
