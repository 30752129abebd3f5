package main

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/macro-calc-api/foods"
	"lg/macro-calc-api/nutrition"
)

// remoteLookupAdvisory is shown when Gemini could not be reached.
const remoteLookupAdvisory = "Could not fetch results. Displaying local data."

// searchFoods merges Gemini matches with the built-in table.
// GET /api/foods/search?q=term. Terms shorter than two characters return an
// empty list without calling Gemini. A failed remote lookup still returns 200
// with local results and an advisory.
func (h *Handler) searchFoods(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	resp := foodSearchResponse{Query: q, Results: []foods.FoodItem{}}

	if len([]rune(q)) < foods.MinSearchLen {
		c.JSON(http.StatusOK, resp)
		return
	}

	local := foods.SearchLocal(q)
	remote, err := h.lookupRemoteFoods(c.Request.Context(), q)
	if err != nil {
		log.Printf("[searchFoods] remote lookup failed for %q: %v", q, err)
		resp.Advisory = remoteLookupAdvisory
		remote = nil
	}

	resp.Results = foods.Merge(remote, local, h.searchLimit)
	c.JSON(http.StatusOK, resp)
}

// getFood returns a built-in food by id.
// GET /api/foods/:id.
func (h *Handler) getFood(c *gin.Context) {
	f, err := foods.Lookup(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusNotFound, "food not found")
		return
	}
	c.JSON(http.StatusOK, f)
}

// getFoodNutrients scales a built-in food to quantity × serving.
// GET /api/foods/:id/nutrients?unit=piece&qty=2. unit defaults to the food's
// first serving and qty to 1.
func (h *Handler) getFoodNutrients(c *gin.Context) {
	f, err := foods.Lookup(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusNotFound, "food not found")
		return
	}

	unit := c.Query("unit")
	if unit == "" && len(f.Servings) > 0 {
		unit = f.Servings[0].Unit
	}
	qty := 1.0
	if s := c.Query("qty"); s != "" {
		qty, err = strconv.ParseFloat(s, 64)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid qty, expected a number")
			return
		}
	}

	n, grams, err := f.NutrientsFor(unit, qty)
	if err != nil {
		switch {
		case errors.Is(err, foods.ErrUnknownServing):
			apiError(c, http.StatusBadRequest, "unknown serving unit for this food")
		default:
			apiError(c, http.StatusBadRequest, "qty must be a non-negative number")
		}
		return
	}

	c.JSON(http.StatusOK, servingNutrientsResponse{
		FoodID:    f.ID,
		Unit:      unit,
		Quantity:  qty,
		Grams:     grams,
		Nutrients: n,
	})
}

// scaleNutrients scales a per-100g record the client already holds (for
// example a remote result) to a gram amount.
// POST /api/foods/nutrients. Body: {"per100g": {...}, "grams": 182}.
func (h *Handler) scaleNutrients(c *gin.Context) {
	var body scaleNutrientsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Grams == nil || *body.Grams < 0 || math.IsInf(*body.Grams, 0) {
		apiError(c, http.StatusBadRequest, "grams must be a non-negative number")
		return
	}
	if err := body.Per100g.Validate(); err != nil {
		apiError(c, http.StatusBadRequest, "per100g values must be non-negative numbers")
		return
	}

	c.JSON(http.StatusOK, servingNutrientsResponse{
		Grams:     *body.Grams,
		Nutrients: nutrition.NutrientsForServing(body.Per100g, *body.Grams),
	})
}
