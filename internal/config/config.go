package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/adaptly/calibrant/internal/rating"
	"github.com/adaptly/calibrant/internal/store"
)

// Config is the full process configuration.
type Config struct {
	DBPath      string `koanf:"db_path"`
	LogLevel    string `koanf:"log_level"`
	ArtifactDir string `koanf:"artifact_dir"`

	Rating rating.Config `koanf:"rating"`
}

// New returns the defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Rating:   rating.DefaultConfig(),
	}
}

// Load builds a Config by layering defaults, optional file, and env.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CALIBRANT_CONFIG is set
//  3. env (prefix CALIBRANT_, e.g. CALIBRANT_RATING_GUESS_FLOOR)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("CALIBRANT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// CALIBRANT_DB_PATH -> db_path, CALIBRANT_RATING_K_MIN -> rating.k_min.
	envProvider := env.Provider("CALIBRANT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "calibrant_")
		if rest, ok := strings.CutPrefix(s, "rating_"); ok {
			return "rating." + rest
		}
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = p
	}
	if err := cfg.Rating.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
