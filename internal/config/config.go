package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Tile   TileConfig
	Admin  AdminConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	BaseURL string
}

// TileConfig holds the tile compiler's indexing and sizing parameters.
type TileConfig struct {
	// IndexedZoomLevels are the zoom levels at which records are indexed
	// for lookup. Zoom level 0 must always be present: it is the fallback
	// any requested zoom falls back to when no finer indexed level covers
	// it.
	IndexedZoomLevels []int
	// MaxRecordsPerTile caps how many records a single tile compiles from,
	// newest first.
	MaxRecordsPerTile int
	MinZoom           int
	MaxZoom           int
}

// AdminConfig holds admin account configuration.
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: getEnv("BASE_URL", "http://localhost:8090"),
		},
		Tile: TileConfig{
			IndexedZoomLevels: getEnvIntList("INDEXED_ZOOM_LEVELS", []int{0, 6, 10, 14}),
			MaxRecordsPerTile: getEnvInt("MAX_RECORDS_PER_TILE", 200),
			MinZoom:           getEnvInt("MIN_ZOOM", 0),
			MaxZoom:           getEnvInt("MAX_ZOOM", 22),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a fallback default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: Invalid integer value for %s: %s, using default %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvIntList parses a comma-separated list of integers, falling back to
// defaultValue when the variable is unset. Entries are trimmed; malformed
// entries are skipped with a warning rather than failing startup.
func getEnvIntList(key string, defaultValue []int) []int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			log.Printf("Warning: invalid zoom level %q in %s, skipping", part, key)
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Validate checks if required configuration values are present
func (c *Config) Validate() error {
	// Add validation logic if needed
	return nil
}