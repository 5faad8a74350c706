package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// KMAAPIKey authenticates every call against the mid-term forecast feed.
	KMAAPIKey string

	// KMABaseURL is the MidFcstInfoService root; overridable for tests.
	KMABaseURL string

	// HTTPTimeout bounds each outbound feed call. The feed has no retry
	// path, so this is the only thing that ends a stuck request.
	HTTPTimeout time.Duration

	// EvictInterval controls how often the forecast caches are cleared in
	// bulk. Entries have no per-key expiry.
	EvictInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.KMAAPIKey = os.Getenv("KMA_API_KEY")
	cfg.KMABaseURL = getenvDefault("KMA_BASE_URL", "https://apis.data.go.kr/1360000/MidFcstInfoService")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Eviction interval: default 12 hours, matching the feed's twice-daily
	// publication cadence.
	evictStr := getenvDefault("CACHE_EVICT_INTERVAL", "12h")
	evict, err := time.ParseDuration(evictStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_EVICT_INTERVAL: %w", err)
	}
	cfg.EvictInterval = evict

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
