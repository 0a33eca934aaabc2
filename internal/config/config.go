// Package config loads the gemer tool configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gem-optimizer/internal/optimizer"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "GEMER_CONFIG"

// DefaultPath is read when neither a flag nor EnvPath names a file.
const DefaultPath = "gemer.yaml"

// Config holds everything the CLI reads before a run.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Catalog is a JSON catalog file (optionally .br). Empty uses the
	// built-in one.
	Catalog string `yaml:"catalog"`
	Search  Search `yaml:"search"`
}

// Search tunes the optimizer without changing its results.
type Search struct {
	Workers int  `yaml:"workers"` // 0 = GOMAXPROCS
	Memoize bool `yaml:"memoize"`
}

// Default returns Config with sensible defaults.
func Default() Config {
	def := optimizer.DefaultConfig()
	return Config{
		LogLevel: "info",
		Search: Search{
			Memoize: def.Memoize,
		},
	}
}

// Path picks the config file: the explicit path if set, then EnvPath, then
// DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Optimizer returns the search tuning as optimizer.Config.
func (c Config) Optimizer() optimizer.Config {
	return optimizer.Config{Workers: c.Search.Workers, Memoize: c.Search.Memoize}
}

// ParseLogLevel maps a level name to slog.Level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
