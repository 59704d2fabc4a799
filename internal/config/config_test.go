package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CALIBRANT_CONFIG", "")
	t.Setenv("CALIBRANT_DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.InDelta(t, 0.2, cfg.Rating.GuessFloor, 1e-12)
	assert.InDelta(t, 400.0, cfg.Rating.Scale, 1e-12)
}

func TestLoad_EnvOverridesRatingOptions(t *testing.T) {
	t.Setenv("CALIBRANT_CONFIG", "")
	t.Setenv("CALIBRANT_DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("CALIBRANT_LOG_LEVEL", "debug")
	t.Setenv("CALIBRANT_RATING_GUESS_FLOOR", "0.25")
	t.Setenv("CALIBRANT_RATING_K_MAX", "48")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 0.25, cfg.Rating.GuessFloor, 1e-12)
	assert.InDelta(t, 48.0, cfg.Rating.KMax, 1e-12)
	// Untouched options keep their defaults.
	assert.InDelta(t, 8.0, cfg.Rating.KMin, 1e-12)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calibrant.yaml")
	body := []byte("log_level: warn\nrating:\n  scale: 500\n  k_max: 40\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	t.Setenv("CALIBRANT_CONFIG", path)
	t.Setenv("CALIBRANT_DB_PATH", filepath.Join(dir, "test.db"))
	t.Setenv("CALIBRANT_RATING_K_MAX", "64")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.InDelta(t, 500.0, cfg.Rating.Scale, 1e-12)
	// Env wins over the file.
	assert.InDelta(t, 64.0, cfg.Rating.KMax, 1e-12)
}

func TestLoad_RejectsInvalidRatingConfig(t *testing.T) {
	t.Setenv("CALIBRANT_CONFIG", "")
	t.Setenv("CALIBRANT_DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("CALIBRANT_RATING_GUESS_FLOOR", "1.5")

	_, err := Load()
	require.Error(t, err)
}
