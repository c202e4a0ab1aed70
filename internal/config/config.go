// Package config loads process settings from the environment, after an
// optional .env file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by every command.
type Config struct {
	// Engine sources; empty paths select the built-in data
	Profile          string
	ProfileFile      string
	ProductivityFile string
	CatalogFile      string

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json

	// Server
	Addr      string
	RateLimit float64 // requests per second per client
	RateBurst int
	Workers   int // batch concurrency, 0 = GOMAXPROCS
}

// Load reads .env (if present) and the DFMA_* variables. Variables already set
// in the environment win over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Profile:          getEnv("DFMA_PROFILE", "baseline"),
		ProfileFile:      getEnv("DFMA_PROFILE_FILE", ""),
		ProductivityFile: getEnv("DFMA_PRODUCTIVITY_FILE", ""),
		CatalogFile:      getEnv("DFMA_CATALOG_FILE", ""),
		LogLevel:         strings.ToLower(getEnv("DFMA_LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(getEnv("DFMA_LOG_FORMAT", "text")),
		Addr:             getEnv("DFMA_ADDR", ":8080"),
		RateLimit:        getEnvFloat("DFMA_RATE_LIMIT", 5),
		RateBurst:        getEnvInt("DFMA_RATE_BURST", 10),
		Workers:          getEnvInt("DFMA_WORKERS", 0),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
