package main

import (
	"time"

	"github.com/spf13/viper"
)

// config holds runtime settings. Values come from the environment (after an
// optional .env is loaded) with the defaults below.
type config struct {
	Port          string        `mapstructure:"port"`
	DBURL         string        `mapstructure:"db_url"`
	GeminiAPIKey  string        `mapstructure:"gemini_api_key"`
	GeminiBaseURL string        `mapstructure:"gemini_base_url"`
	GeminiModel   string        `mapstructure:"gemini_model"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	SearchLimit   int           `mapstructure:"search_limit"`
	CORSOrigins   []string      `mapstructure:"cors_origins"`
}

// loadConfig reads configuration from env vars. Every key needs a default so
// viper's AutomaticEnv picks it up during Unmarshal.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetDefault("port", "3000")
	v.SetDefault("db_url", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", "24h")
	v.SetDefault("search_limit", 10)
	v.SetDefault("cors_origins", []string{"*"})
	v.AutomaticEnv()

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
