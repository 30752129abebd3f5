package main

import (
	"reflect"
	"testing"
	"time"
)

// clearConfigEnv blanks every config var; viper treats empty as unset.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DB_URL", "GEMINI_API_KEY", "GEMINI_BASE_URL", "GEMINI_MODEL",
		"REDIS_ADDR", "CACHE_TTL", "SEARCH_LIMIT", "CORS_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.GeminiBaseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("GeminiBaseURL = %q", cfg.GeminiBaseURL)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Errorf("CacheTTL = %v, want 24h", cfg.CacheTTL)
	}
	if cfg.SearchLimit != 10 {
		t.Errorf("SearchLimit = %d, want 10", cfg.SearchLimit)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "90m")
	t.Setenv("SEARCH_LIMIT", "5")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.GeminiAPIKey != "k" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected cfg: %+v", cfg)
	}
	if cfg.CacheTTL != 90*time.Minute {
		t.Errorf("CacheTTL = %v, want 90m", cfg.CacheTTL)
	}
	if cfg.SearchLimit != 5 {
		t.Errorf("SearchLimit = %d, want 5", cfg.SearchLimit)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestNewHandler_PicksCache(t *testing.T) {
	clearConfigEnv(t)
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if _, ok := newHandler(cfg, nil).cache.(*memoryFoodCache); !ok {
		t.Error("expected the in-memory cache without REDIS_ADDR")
	}

	cfg.RedisAddr = "127.0.0.1:1"
	h := newHandler(cfg, nil)
	rc, ok := h.cache.(*redisFoodCache)
	if !ok {
		t.Fatal("expected the Redis cache with REDIS_ADDR")
	}
	rc.client.Close()
}
