package config

import (
    "os"
    "time"
)

// CacheConfig defines settings for the upstream catalog cache.  When
// Enabled is false or no Redis client is configured, catalog reads go
// straight to the booking API.  Seat lists and the meal catalog get
// separate TTLs: seat availability changes with every booking while the
// meal catalog is effectively static.
type CacheConfig struct {
    Enabled  bool
    SeatsTTL time.Duration
    MealsTTL time.Duration
    Prefix   string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:  getenv("CACHE_ENABLED", "true") == "true",
        SeatsTTL: parseDur(getenv("CACHE_SEATS_TTL", "15s")),
        MealsTTL: parseDur(getenv("CACHE_MEALS_TTL", "10m")),
        Prefix:   getenv("CACHE_PREFIX", "cache"),
    }
}

// Helper functions reused from redis.go and ratelimit.go
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
