package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const defaultTheme = "light"

var validThemes = map[string]bool{
	"light": true,
	"dark":  true,
}

// getPreferences returns the user's theme. Users without a row get the
// default rather than a 404.
// GET /api/preferences.
func (h *Handler) getPreferences(c *gin.Context) {
	userID := c.GetInt("user_id")

	prefs, err := queryOne[userPreferences](h.db, c,
		"SELECT * FROM user_preferences WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if errors.Is(err, pgx.ErrNoRows) {
		prefs = userPreferences{UserID: userID, Theme: defaultTheme}
	} else if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// patchPreferences sets the theme.
// PATCH /api/preferences. Body: {"theme": "light" | "dark"}.
func (h *Handler) patchPreferences(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body struct {
		Theme *string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Theme == nil {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	if !validThemes[*body.Theme] {
		apiError(c, http.StatusBadRequest, "theme must be one of: light, dark")
		return
	}

	prefs, err := queryOne[userPreferences](h.db, c,
		`INSERT INTO user_preferences (user_id, theme) VALUES (@userID, @theme)
		 ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "theme": *body.Theme})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}
