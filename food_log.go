package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lg/macro-calc-api/foods"
	"lg/macro-calc-api/nutrition"
)

// resolveLoggedFood picks the food a log request refers to: a built-in id,
// or a full record supplied by the client (a remote result). Client records
// are normalized and always tagged GEMINI; only the built-in table is LOCAL.
func resolveLoggedFood(body createFoodLogItemRequest) (foods.FoodItem, string) {
	if body.Food != nil {
		f, err := body.Food.Normalize()
		if err != nil {
			return foods.FoodItem{}, "food must have a name and non-negative per100g values"
		}
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		f.Source = foods.SourceGemini
		return f, ""
	}
	if body.FoodID == "" {
		return foods.FoodItem{}, "food_id or food is required"
	}
	f, err := foods.Lookup(body.FoodID)
	if err != nil {
		return foods.FoodItem{}, "food not found"
	}
	return f, ""
}

// sumNutrients totals logged items. Fiber stays nil unless at least one
// item carried a fiber datum.
func sumNutrients(items []foodLogItem) nutrition.Nutrient {
	var total nutrition.Nutrient
	for _, item := range items {
		total.Kcal += float64(item.Kcal)
		total.ProteinG += item.ProteinG
		total.CarbsG += item.CarbsG
		total.FatG += item.FatG
		if item.FiberG != nil {
			if total.FiberG == nil {
				total.FiberG = new(float64)
			}
			*total.FiberG += *item.FiberG
		}
	}
	return total
}

// getDailyFoodLog returns logged foods and totals for a date, plus the macro
// targets from the saved profile when there is one.
// GET /api/food-log/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailyFoodLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	// An invalid date silently returns no rows.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	items, err := queryMany[foodLogItem](h.db, c,
		`SELECT * FROM food_log_items
		 WHERE user_id = @userID AND date = @date
		 ORDER BY created_at`,
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch food log")
		return
	}
	// Ensure items is an empty array (not null) in JSON
	if items == nil {
		items = []foodLogItem{}
	}

	summary := dailyFoodLog{Date: date, Items: items, Totals: sumNutrients(items)}

	row, err := h.loadProfile(c, userID)
	switch {
	case err == nil:
		if p := row.profile(); p.Validate() == nil {
			result := nutrition.Evaluate(p, row.goal())
			left := result.GoalCalories - int(summary.Totals.Kcal)
			summary.Targets = &result.Macros
			summary.CaloriesLeft = &left
		}
	case !errors.Is(err, pgx.ErrNoRows):
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// createFoodLogItem logs quantity × serving of a food. Nutrients are scaled
// server-side from the per-100g record and stored with the entry.
// POST /api/food-log.
func (h *Handler) createFoodLogItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createFoodLogItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if body.Quantity == nil {
		apiError(c, http.StatusBadRequest, "quantity is required")
		return
	}

	food, msg := resolveLoggedFood(body)
	if msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	if body.Unit == "" && len(food.Servings) > 0 {
		body.Unit = food.Servings[0].Unit
	}
	n, grams, err := food.NutrientsFor(body.Unit, *body.Quantity)
	if err != nil {
		if errors.Is(err, foods.ErrUnknownServing) {
			apiError(c, http.StatusBadRequest, "unknown serving unit for this food")
		} else {
			apiError(c, http.StatusBadRequest, "quantity must be a non-negative number")
		}
		return
	}
	serving, _ := food.FindServing(body.Unit)

	item, err := queryOne[foodLogItem](h.db, c,
		`INSERT INTO food_log_items
			(user_id, date, food_id, food_name, source, serving_unit, serving_grams,
			 quantity, grams, kcal, protein_g, carbs_g, fat_g, fiber_g)
		 VALUES
			(@userID, @date, @foodID, @foodName, @source, @servingUnit, @servingGrams,
			 @quantity, @grams, @kcal, @proteinG, @carbsG, @fatG, @fiberG)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":       userID,
			"date":         body.Date,
			"foodID":       food.ID,
			"foodName":     food.Name,
			"source":       string(food.Source),
			"servingUnit":  serving.Unit,
			"servingGrams": serving.Grams,
			"quantity":     *body.Quantity,
			"grams":        grams,
			"kcal":         int(n.Kcal),
			"proteinG":     n.ProteinG,
			"carbsG":       n.CarbsG,
			"fatG":         n.FatG,
			"fiberG":       n.FiberG,
		})
	if err != nil {
		log.Printf("[createFoodLogItem] insert failed for user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to create food log item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// deleteFoodLogItem removes a logged food by ID.
// DELETE /api/food-log/:id. Returns 204 on success, 404 if not found.
// Ownership is enforced by requiring both id and user_id to match.
func (h *Handler) deleteFoodLogItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	result, err := h.db.Exec(c,
		"DELETE FROM food_log_items WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete food log item")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "food log item not found")
		return
	}

	c.Status(http.StatusNoContent)
}
