// Package config holds the environment configuration for the backend.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is parsed once at startup. All values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	// DBFile is the path of the SQLite database file.
	DBFile string `env:"DB_FILE" envDefault:"data/backend.db"`

	// GinMode is the gin framework mode. gin uses debug as the default
	// mode, we use release for security reasons.
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// LogFormat can be explicitly set to "human" for a human readable
	// format. The default is human readable for development and JSON
	// for release.
	LogFormat string `env:"LOG_FORMAT"`

	// CORSAllowOrigins holds the origins allowed for cross-origin
	// requests. Entries are glob patterns, separated by spaces. CORS is
	// disabled when the list is empty.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`

	// EnablePprof mounts the pprof routes under /debug/pprof.
	EnablePprof bool `env:"ENABLE_PPROF"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config

	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
