package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"WORDS_FILE", "SOLVER_ROUNDS", "SOLVER_MAX_GUESSES", "SOLVER_OPENERS", "SOLVER_COLOR", "LOG_LEVEL", "DAILY_SALT"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3, cfg.Rounds)
	assert.Equal(t, 20, cfg.MaxGuesses)
	assert.Equal(t, []string{"ratio", "mends", "lucky"}, cfg.Openers)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Empty(t, cfg.WordsFile)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "solver.yaml")
	body := "words_file: /tmp/words.txt\nrounds: 5\nopeners: [crane, slote]\ncolor: never\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.txt", cfg.WordsFile)
	assert.Equal(t, 5, cfg.Rounds)
	assert.Equal(t, []string{"crane", "slote"}, cfg.Openers)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 20, cfg.MaxGuesses, "unset keys keep defaults")
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rounds: [oops"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env beats file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rounds: 5\n"), 0o644))
		t.Setenv("SOLVER_ROUNDS", "7")
		t.Setenv("SOLVER_OPENERS", " Crane , slote,")
		t.Setenv("WORDS_FILE", "words.txt")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Rounds)
		assert.Equal(t, []string{"crane", "slote"}, cfg.Openers)
		assert.Equal(t, "words.txt", cfg.WordsFile)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("bad number", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SOLVER_MAX_GUESSES", "many")
		_, err := Load("")
		assert.ErrorContains(t, err, "SOLVER_MAX_GUESSES")
	})

	t.Run("none clears openers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SOLVER_OPENERS", "none")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Empty(t, cfg.Openers)
		require.NoError(t, cfg.Validate())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero rounds", func(c *Config) { c.Rounds = 0 }, "Rounds must be at least 1"},
		{"too many guesses", func(c *Config) { c.MaxGuesses = 5000 }, "MaxGuesses must be at most 1000"},
		{"short opener", func(c *Config) { c.Openers = []string{"abc"} }, "Openers[0] must be 5 letters"},
		{"upper opener", func(c *Config) { c.Openers = []string{"ratio", "MENDS"} }, "Openers[1] must be lowercase letters"},
		{"colour", func(c *Config) { c.Color = "pink" }, "Color must be one of [auto always never]"},
		{"level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel must be one of"},
		{"salt", func(c *Config) { c.DailySalt = "" }, "DailySalt is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList("A, b ,,"))
	assert.Empty(t, SplitList("-"))
	assert.Nil(t, SplitList(""))
}
