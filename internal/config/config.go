// Package config loads CMS core configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the CMS core.
type Config struct {
	// DataDir is the directory holding the SQLite key-value database.
	DataDir string

	// LogLevel is the minimum level emitted by the JSON logger.
	LogLevel string

	// StrictUpdates makes update/delete of a missing entity id an
	// error instead of a silent no-op.
	StrictUpdates bool

	// ValidateOnWrite rejects invalid entities at the mutation API
	// boundary instead of leaving validation to callers.
	ValidateOnWrite bool

	// JournalLimit caps the persisted write journal.
	JournalLimit int
}

// Load reads configuration from environment variables. A .env file in
// the working directory is loaded first when present; real environment
// variables take precedence.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:         getEnv("CMS_DATA_DIR", "data"),
		LogLevel:        getEnv("CMS_LOG_LEVEL", "INFO"),
		StrictUpdates:   getEnvBool("CMS_STRICT_UPDATES", false),
		ValidateOnWrite: getEnvBool("CMS_VALIDATE_ON_WRITE", false),
		JournalLimit:    getEnvInt("CMS_JOURNAL_LIMIT", 200),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
