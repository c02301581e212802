// SPDX-License-Identifier: Apache-2.0

// Package config loads driver configuration from environment variables and
// optional catalog overrides from YAML.
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// Config holds the extraction driver's configuration.
type Config struct {
	// Workers bounds the document parse pool.
	Workers int
	// OutDir receives the extraction.csv/json/xlsx outputs.
	OutDir string
	// CatalogFile optionally points at a YAML catalog override.
	CatalogFile string
	// IncludeExts lists the document file extensions to ingest.
	IncludeExts []string
	// LogLevel is the slog level for the drivers.
	LogLevel slog.Level
}

// Load reads configuration from EPIFIELD_* environment variables, with
// defaults suitable for a local run.
func Load() *Config {
	return &Config{
		Workers:     getEnvAsInt("EPIFIELD_WORKERS", 4),
		OutDir:      getEnv("EPIFIELD_OUT_DIR", "."),
		CatalogFile: getEnv("EPIFIELD_CATALOG_FILE", ""),
		IncludeExts: []string{getEnv("EPIFIELD_DOC_EXT", "txt")},
		LogLevel:    getEnvAsLevel("EPIFIELD_LOG_LEVEL", slog.LevelInfo),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return defaultValue
	}
	return level
}
