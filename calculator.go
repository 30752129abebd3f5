package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/macro-calc-api/nutrition"
)

// displayFor renders a canonical profile's weight and height for the given
// unit system.
func displayFor(p nutrition.UserProfile, sys nutrition.UnitSystem) displayValues {
	d := displayValues{
		Weight:     nutrition.DisplayWeight(p.WeightKG, sys),
		WeightUnit: "kg",
		Height:     nutrition.DisplayHeight(p.HeightCM, sys),
		HeightUnit: "cm",
	}
	if sys == nutrition.Imperial {
		d.WeightUnit, d.HeightUnit = "lbs", "in"
	}
	return d
}

// calculate runs the full pipeline for a profile and goal.
// POST /api/calculate. Body: {"profile": {...}, "goal": {...}}.
// The profile and goal are validated here so the engine never sees an
// unknown activity level or an out-of-range delta.
func (h *Handler) calculate(c *gin.Context) {
	var body calculateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := body.Profile.Validate(); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := body.Goal.Validate(); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, nutrition.Evaluate(body.Profile, body.Goal))
}

// convertUnits applies display-side edits to a canonical profile and returns
// the profile plus its display values for the requested unit system.
// POST /api/units. Unparsable weight/height strings leave the canonical value
// unchanged and are listed under "rejected"; the request still succeeds.
func (h *Handler) convertUnits(c *gin.Context) {
	var body unitsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !body.UnitSystem.Valid() {
		apiError(c, http.StatusBadRequest, "unit_system must be one of: metric, imperial")
		return
	}

	p, rejected := nutrition.ApplyDisplayInput(body.Profile, body.UnitSystem, body.Weight, body.Height)
	if rejected == nil {
		rejected = []string{}
	}

	c.JSON(http.StatusOK, unitsResponse{
		Profile:    p,
		UnitSystem: body.UnitSystem,
		Display:    displayFor(p, body.UnitSystem),
		Rejected:   rejected,
	})
}
