package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	db            *pgxpool.Pool
	cache         foodCache
	geminiAPIKey  string
	geminiBaseURL string // Base URL for the Gemini API (overridable for tests)
	geminiModel   string
	searchLimit   int
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		log.Printf("[queryMany] Query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] Scan error: %v", err)
	}
	return results, err
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. Exits when the URL is unusable since
// every authenticated route depends on it.
func getDBPool(dbURL string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse DB URL: %v\n", err)
		os.Exit(1)
	}
	// Simple protocol avoids "cached plan must not change result type" after migrations.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("DB pool ready!")
	return pool
}

// newHandler wires a Handler from config. The food cache is Redis when an
// address is configured, in-memory otherwise.
func newHandler(cfg config, pool *pgxpool.Pool) *Handler {
	var cache foodCache
	if cfg.RedisAddr != "" {
		cache = newRedisFoodCache(cfg.RedisAddr, cfg.CacheTTL)
	} else {
		cache = newMemoryFoodCache(cfg.CacheTTL)
	}
	return &Handler{
		db:            pool,
		cache:         cache,
		geminiAPIKey:  cfg.GeminiAPIKey,
		geminiBaseURL: cfg.GeminiBaseURL,
		geminiModel:   cfg.GeminiModel,
		searchLimit:   cfg.SearchLimit,
	}
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes: login and the stateless calculator/food surface
	router.POST("/api/login", h.login)
	router.POST("/api/calculate", h.calculate)
	router.POST("/api/units", h.convertUnits)
	router.GET("/api/foods/search", h.searchFoods)
	router.GET("/api/foods/:id", h.getFood)
	router.GET("/api/foods/:id/nutrients", h.getFoodNutrients)
	router.POST("/api/foods/nutrients", h.scaleNutrients)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/profile", h.getProfile)
	api.PUT("/profile", h.putProfile)
	api.GET("/preferences", h.getPreferences)
	api.PATCH("/preferences", h.patchPreferences)
	api.GET("/food-log/daily", h.getDailyFoodLog)
	api.POST("/food-log", h.createFoodLogItem)
	api.DELETE("/food-log/:id", h.deleteFoodLogItem)
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
	api.PUT("/weight-log/:id", h.updateWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)
}
