/*
config.go - Runtime configuration shared by the server and the CLI

PURPOSE:
  Collects the handful of settings both binaries need: where to listen,
  where the SQLite file lives, which reference constants to compute with,
  and how verbose logging should be.

SOURCES (later wins):
  1. Defaults
  2. .env file in the working directory (optional)
  3. Environment variables
  4. Command-line flags (applied by the caller)

ENVIRONMENT:
  NOMINER_PORT        HTTP port (default 8080)
  NOMINER_DB          SQLite path, ":memory:" allowed (default nominer.db)
  NOMINER_CONSTANTS   JSON or TOML constants file, overrides the preset
  NOMINER_PRESET      Built-in constants preset (default co-2025)
  NOMINER_ENV         "production" switches to JSON logs

SEE ALSO:
  - factory/constants.go: presets and constants files
  - cmd/server/main.go, cli/root.go: callers
*/
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Hellzyr/Nominer/factory"
	"github.com/Hellzyr/Nominer/nomina"
)

const (
	DefaultPort   = 8080
	DefaultDBPath = "nominer.db"

	EnvProduction = "production"
)

// Config is the resolved runtime configuration.
type Config struct {
	Port          int
	DBPath        string
	ConstantsFile string
	Preset        string
	Env           string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:   DefaultPort,
		DBPath: DefaultDBPath,
		Preset: factory.DefaultPreset,
	}
}

// Load reads an optional .env file and then the NOMINER_* variables on top
// of the defaults. A missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv applies variables from getenv on top of the defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := getenv("NOMINER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("NOMINER_PORT: invalid port %q", v)
		}
		cfg.Port = port
	}
	if v := getenv("NOMINER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("NOMINER_CONSTANTS"); v != "" {
		cfg.ConstantsFile = v
	}
	if v := getenv("NOMINER_PRESET"); v != "" {
		cfg.Preset = v
	}
	cfg.Env = getenv("NOMINER_ENV")
	return cfg, nil
}

// Constants resolves the reference values: the constants file when one is
// configured, otherwise the named preset.
func (c Config) Constants() (nomina.Constants, error) {
	if c.ConstantsFile != "" {
		return factory.LoadConstantsFile(c.ConstantsFile)
	}
	preset := c.Preset
	if preset == "" {
		preset = factory.DefaultPreset
	}
	return factory.Preset(preset)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

// NewLogger builds the process logger: JSON at info level in production,
// console output at debug level otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	if env == EnvProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
