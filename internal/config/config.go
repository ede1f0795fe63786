package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultDBPath        = "./factors.db"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultFactorsSource = FactorsFromDB
)

// Factor catalogue sources.
const (
	FactorsFromDB      = "db"
	FactorsFromBuiltin = "builtin"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port          string
	DBPath        string
	LogLevel      string
	LogFormat     string
	FactorsSource string

	// DotEnvKeys is the number of variables applied from .env.
	DotEnvKeys int

	warnings []string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path.
func LoadFrom(dotEnvPath string) Config {
	cfg := Config{}

	// Best-effort: production should use real env injection.
	n, err := loadDotEnv(dotEnvPath)
	if err != nil {
		cfg.warn("could not read %s: %v", dotEnvPath, err)
	}
	cfg.DotEnvKeys = n

	cfg.Port = envOr("PORT", defaultPort)
	cfg.DBPath = envOr("DB_PATH", defaultDBPath)
	cfg.LogLevel = strings.ToLower(envOr("LOG_LEVEL", defaultLogLevel))
	cfg.LogFormat = strings.ToLower(envOr("LOG_FORMAT", defaultLogFormat))
	cfg.FactorsSource = strings.ToLower(envOr("FACTORS_SOURCE", defaultFactorsSource))

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		cfg.warn("LOG_FORMAT %q is not supported, using %q", cfg.LogFormat, defaultLogFormat)
		cfg.LogFormat = defaultLogFormat
	}
	if cfg.FactorsSource != FactorsFromDB && cfg.FactorsSource != FactorsFromBuiltin {
		cfg.warn("FACTORS_SOURCE %q is not supported, using %q", cfg.FactorsSource, defaultFactorsSource)
		cfg.FactorsSource = defaultFactorsSource
	}
	if os.Getenv("DB_PATH") == "" && cfg.FactorsSource == FactorsFromDB {
		cfg.warn("DB_PATH is not set, using %s", defaultDBPath)
	}

	return cfg
}

// Warnings returns the problems found while loading, for the caller to log
// once logging is set up.
func (c Config) Warnings() []string {
	return c.warnings
}

func (c *Config) warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
