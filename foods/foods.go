// Package foods holds the food record type, the built-in per-100g table and
// the rules for combining local and remote search results.
package foods

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"lg/macro-calc-api/nutrition"
)

var (
	ErrUnknownServing = errors.New("unknown serving unit")
	ErrNotFound       = errors.New("food not found")
	ErrInvalidFood    = errors.New("invalid food record")
)

// Source tags where a food record came from.
type Source string

const (
	SourceLocal  Source = "LOCAL"
	SourceGemini Source = "GEMINI"
)

type Category string

const (
	Vegetable Category = "vegetable"
	Fruit     Category = "fruit"
	DryFruit  Category = "dry-fruit"
	Meat      Category = "meat"
	Dairy     Category = "dairy"
	Grain     Category = "grain"
	Other     Category = "other"
)

var validCategories = map[Category]bool{
	Vegetable: true, Fruit: true, DryFruit: true, Meat: true,
	Dairy: true, Grain: true, Other: true,
}

func (c Category) Valid() bool { return validCategories[c] }

// Serving is a named quantity with a fixed gram equivalence ("cup" = 125g).
type Serving struct {
	Unit  string  `json:"unit"`
	Grams float64 `json:"grams"`
}

// FoodItem is one food with nutrients per 100g and its known servings.
type FoodItem struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category Category           `json:"category"`
	Per100g  nutrition.Nutrient `json:"per100g"`
	Servings []Serving          `json:"servings"`
	Source   Source             `json:"source"`
}

// FindServing returns the serving with the given unit.
func (f FoodItem) FindServing(unit string) (Serving, error) {
	for _, s := range f.Servings {
		if s.Unit == unit {
			return s, nil
		}
	}
	return Serving{}, fmt.Errorf("%s has no %q serving: %w", f.ID, unit, ErrUnknownServing)
}

// NutrientsFor scales the food to quantity × the named serving. Quantity may
// be zero but not negative or non-finite. It also returns the total grams.
func (f FoodItem) NutrientsFor(unit string, quantity float64) (nutrition.Nutrient, float64, error) {
	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return nutrition.Nutrient{}, 0, fmt.Errorf("quantity %v: %w", quantity, nutrition.ErrInvalidQuantity)
	}
	s, err := f.FindServing(unit)
	if err != nil {
		return nutrition.Nutrient{}, 0, err
	}
	grams := s.Grams * quantity
	return nutrition.NutrientsForServing(f.Per100g, grams), grams, nil
}

// Normalize cleans a food record that did not come from the built-in table.
// Servings with no unit or non-positive grams are dropped, a {g, 100}
// serving is added when missing and unknown categories become Other.
// Records with a blank name or invalid per-100g values return
// ErrInvalidFood. Source and ID are left to the caller.
func (f FoodItem) Normalize() (FoodItem, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return FoodItem{}, fmt.Errorf("blank name: %w", ErrInvalidFood)
	}
	if err := f.Per100g.Validate(); err != nil {
		return FoodItem{}, fmt.Errorf("%s per100g: %w: %w", f.Name, ErrInvalidFood, err)
	}
	if !f.Category.Valid() {
		f.Category = Other
	}

	servings := make([]Serving, 0, len(f.Servings)+1)
	hasGrams := false
	for _, s := range f.Servings {
		if s.Unit == "" || !(s.Grams > 0) || math.IsInf(s.Grams, 0) {
			continue
		}
		hasGrams = hasGrams || s.Unit == "g"
		servings = append(servings, s)
	}
	if !hasGrams {
		servings = append([]Serving{{Unit: "g", Grams: 100}}, servings...)
	}
	f.Servings = servings
	return f, nil
}

/* ─── Search ─────────────────────────────────────────────────────────── */

// MinSearchLen is the shortest term that triggers a search.
const MinSearchLen = 2

// DefaultLimit caps merged search results.
const DefaultLimit = 10

// SearchLocal returns table foods whose name contains term, case-insensitive.
// Terms shorter than MinSearchLen return nil.
func SearchLocal(term string) []FoodItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if len([]rune(term)) < MinSearchLen {
		return nil
	}
	var out []FoodItem
	for _, f := range table {
		if strings.Contains(strings.ToLower(f.Name), term) {
			out = append(out, f.clone())
		}
	}
	return out
}

// Merge combines remote and local results. Remote items win on a
// case-insensitive name collision and come first; the result is capped at
// limit (DefaultLimit when limit <= 0).
func Merge(external, local []FoodItem, limit int) []FoodItem {
	if limit <= 0 {
		limit = DefaultLimit
	}
	seen := make(map[string]bool, len(external))
	for _, f := range external {
		seen[strings.ToLower(f.Name)] = true
	}

	out := make([]FoodItem, 0, min(limit, len(external)+len(local)))
	out = append(out, external...)
	for _, f := range local {
		if !seen[strings.ToLower(f.Name)] {
			out = append(out, f)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
