package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/macro-calc-api/nutrition"
)

// toProfileResponse builds the response for a stored profile. The result is
// recomputed on every read; rows that no longer validate (e.g. written
// before a rule change) are returned without one instead of panicking.
func toProfileResponse(row profileRow) profileResponse {
	p, g := row.profile(), row.goal()
	sys := nutrition.UnitSystem(row.UnitSystem)
	if !sys.Valid() {
		sys = nutrition.Metric
	}

	resp := profileResponse{
		Profile:    p,
		Goal:       g,
		UnitSystem: sys,
		Display:    displayFor(p, sys),
	}
	if p.Validate() == nil {
		result := nutrition.Evaluate(p, g)
		resp.Result = &result
	}
	return resp
}

// loadProfile fetches the user's saved profile row.
func (h *Handler) loadProfile(c *gin.Context, userID int) (profileRow, error) {
	return queryOne[profileRow](h.db, c,
		"SELECT * FROM user_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
}

// getProfile returns the saved profile, goal and display unit system with
// the computed BMI/BMR/TDEE/goal/macro result.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	row, err := h.loadProfile(c, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(row))
}

// putProfile validates and saves the full profile, goal and unit system.
// PUT /api/profile. Values are canonical (kg, cm); clients converting from
// imperial go through POST /api/units first. The goal delta is kept even in
// maintain mode so the client can restore it when switching back.
func (h *Handler) putProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body profileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.UnitSystem == "" {
		body.UnitSystem = nutrition.Metric
	}
	if !body.UnitSystem.Valid() {
		apiError(c, http.StatusBadRequest, "unit_system must be one of: metric, imperial")
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

	row, err := queryOne[profileRow](h.db, c,
		`INSERT INTO user_profiles
			(user_id, age, sex, height_cm, weight_kg, activity, goal_mode, goal_delta_kcal, unit_system)
		 VALUES
			(@userID, @age, @sex, @heightCM, @weightKG, @activity, @goalMode, @goalDelta, @unitSystem)
		 ON CONFLICT (user_id) DO UPDATE SET
			age             = EXCLUDED.age,
			sex             = EXCLUDED.sex,
			height_cm       = EXCLUDED.height_cm,
			weight_kg       = EXCLUDED.weight_kg,
			activity        = EXCLUDED.activity,
			goal_mode       = EXCLUDED.goal_mode,
			goal_delta_kcal = EXCLUDED.goal_delta_kcal,
			unit_system     = EXCLUDED.unit_system,
			updated_at      = NOW()
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":     userID,
			"age":        body.Profile.Age,
			"sex":        string(body.Profile.Sex),
			"heightCM":   body.Profile.HeightCM,
			"weightKG":   body.Profile.WeightKG,
			"activity":   string(body.Profile.Activity),
			"goalMode":   string(body.Goal.Mode),
			"goalDelta":  body.Goal.DeltaKcalPerDay,
			"unitSystem": string(body.UnitSystem),
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(row))
}
