package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/macro-calc-api/foods"
	"lg/macro-calc-api/nutrition"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns into DateOnly. NULL zeroes the time.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Stored rows ────────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// profileRow maps to user_profiles. Height and weight are always stored in
// cm and kg; unit_system only controls how they are displayed.
type profileRow struct {
	UserID        int        `db:"user_id"`
	Age           int        `db:"age"`
	Sex           string     `db:"sex"`
	HeightCM      float64    `db:"height_cm"`
	WeightKG      float64    `db:"weight_kg"`
	Activity      string     `db:"activity"`
	GoalMode      string     `db:"goal_mode"`
	GoalDeltaKcal float64    `db:"goal_delta_kcal"`
	UnitSystem    string     `db:"unit_system"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

func (r profileRow) profile() nutrition.UserProfile {
	return nutrition.UserProfile{
		Age:      r.Age,
		Sex:      nutrition.Sex(r.Sex),
		HeightCM: r.HeightCM,
		WeightKG: r.WeightKG,
		Activity: nutrition.Activity(r.Activity),
	}
}

func (r profileRow) goal() nutrition.Goal {
	return nutrition.Goal{Mode: nutrition.GoalMode(r.GoalMode), DeltaKcalPerDay: r.GoalDeltaKcal}
}

// userPreferences maps to user_preferences.
type userPreferences struct {
	UserID int    `json:"-"     db:"user_id"`
	Theme  string `json:"theme" db:"theme"`
}

// foodLogItem maps to food_log_items. Nutrients are stored already scaled to
// the logged amount. FiberG is NULL when the food had no fiber datum.
type foodLogItem struct {
	ID           int          `json:"id"            db:"id"`
	UserID       int          `json:"user_id"       db:"user_id"`
	Date         DateOnly     `json:"date"          db:"date"`
	FoodID       string       `json:"food_id"       db:"food_id"`
	FoodName     string       `json:"food_name"     db:"food_name"`
	Source       string       `json:"source"        db:"source"`
	ServingUnit  string       `json:"serving_unit"  db:"serving_unit"`
	ServingGrams float64      `json:"serving_grams" db:"serving_grams"`
	Quantity     float64      `json:"quantity"      db:"quantity"`
	Grams        float64      `json:"grams"         db:"grams"`
	Kcal         int          `json:"kcal"          db:"kcal"`
	ProteinG     float64      `json:"protein_g"     db:"protein_g"`
	CarbsG       float64      `json:"carbs_g"       db:"carbs_g"`
	FatG         float64      `json:"fat_g"         db:"fat_g"`
	FiberG       *float64     `json:"fiber_g"       db:"fiber_g"`
	CreatedAt    *time.Time   `json:"created_at"    db:"created_at"`
}

// weightEntry maps to weight_log. Bmi is computed from the saved profile
// height when one exists; it is not stored.
type weightEntry struct {
	ID        int                  `json:"id"         db:"id"`
	UserID    int                  `json:"user_id"    db:"user_id"`
	Date      DateOnly             `json:"date"       db:"date"`
	WeightKG  float64              `json:"weight_kg"  db:"weight_kg"`
	CreatedAt *time.Time           `json:"created_at" db:"created_at"`
	Bmi       *nutrition.BmiResult `json:"bmi,omitempty" db:"-"`
}

/* ─── Request / response shapes ──────────────────────────────────────── */

// calculateRequest is the request body for POST /api/calculate.
type calculateRequest struct {
	Profile nutrition.UserProfile `json:"profile"`
	Goal    nutrition.Goal        `json:"goal"`
}

// unitsRequest is the request body for POST /api/units. Weight and height are
// raw display strings; nil means the field was not edited.
type unitsRequest struct {
	Profile    nutrition.UserProfile `json:"profile"`
	UnitSystem nutrition.UnitSystem  `json:"unit_system"`
	Weight     *string               `json:"weight"`
	Height     *string               `json:"height"`
}

// displayValues is the profile as shown in an edit form for one unit system.
type displayValues struct {
	Weight     string `json:"weight"`
	WeightUnit string `json:"weight_unit"`
	Height     string `json:"height"`
	HeightUnit string `json:"height_unit"`
}

type unitsResponse struct {
	Profile    nutrition.UserProfile `json:"profile"`
	UnitSystem nutrition.UnitSystem  `json:"unit_system"`
	Display    displayValues         `json:"display"`
	Rejected   []string              `json:"rejected"`
}

// profileRequest is the request body for PUT /api/profile.
type profileRequest struct {
	Profile    nutrition.UserProfile `json:"profile"`
	Goal       nutrition.Goal        `json:"goal"`
	UnitSystem nutrition.UnitSystem  `json:"unit_system"`
}

// profileResponse is the saved profile plus everything derived from it.
type profileResponse struct {
	Profile    nutrition.UserProfile        `json:"profile"`
	Goal       nutrition.Goal               `json:"goal"`
	UnitSystem nutrition.UnitSystem         `json:"unit_system"`
	Display    displayValues                `json:"display"`
	Result     *nutrition.CalculationResult `json:"result,omitempty"`
}

// foodSearchResponse is the response for GET /api/foods/search. Advisory is
// set when the remote lookup failed and only local results are shown.
type foodSearchResponse struct {
	Query    string           `json:"query"`
	Results  []foods.FoodItem `json:"results"`
	Advisory string           `json:"advisory,omitempty"`
}

// servingNutrientsResponse is a food scaled to a chosen serving × quantity.
type servingNutrientsResponse struct {
	FoodID    string             `json:"food_id,omitempty"`
	Unit      string             `json:"unit,omitempty"`
	Quantity  float64            `json:"quantity,omitempty"`
	Grams     float64            `json:"grams"`
	Nutrients nutrition.Nutrient `json:"nutrients"`
}

// scaleNutrientsRequest is the request body for POST /api/foods/nutrients,
// used for remote items the client already holds.
type scaleNutrientsRequest struct {
	Per100g nutrition.Nutrient `json:"per100g"`
	Grams   *float64           `json:"grams"`
}

// createFoodLogItemRequest is the request body for POST /api/food-log. Either
// FoodID (built-in table) or Food (a remote record) must be set.
type createFoodLogItemRequest struct {
	Date     string          `json:"date"`
	FoodID   string          `json:"food_id"`
	Food     *foods.FoodItem `json:"food"`
	Unit     string          `json:"unit"`
	Quantity *float64        `json:"quantity"`
}

// dailyFoodLog is the response shape for GET /api/food-log/daily.
type dailyFoodLog struct {
	Date         string               `json:"date"`
	Items        []foodLogItem        `json:"items"`
	Totals       nutrition.Nutrient   `json:"totals"`
	Targets      *nutrition.MacroPlan `json:"targets,omitempty"`
	CaloriesLeft *int                 `json:"calories_left,omitempty"`
}
