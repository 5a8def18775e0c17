// Package config holds the solver's runtime settings.
//
// Precedence, lowest first: DefaultConfig, the YAML file passed to Load,
// environment variables (including a .env file loaded by main), then
// command line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full set of tunables.
type Config struct {
	WordsFile  string   `yaml:"words_file"`
	Rounds     int      `yaml:"rounds" validate:"min=1,max=100"`
	MaxGuesses int      `yaml:"max_guesses" validate:"min=1,max=1000"`
	Openers    []string `yaml:"openers" validate:"dive,len=5,lowercase,alpha"`
	Color      string   `yaml:"color" validate:"oneof=auto always never"`
	LogLevel   string   `yaml:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	DailySalt  string   `yaml:"daily_salt" validate:"required"`
}

// DefaultConfig returns the built-in settings: embedded words, three rounds.
func DefaultConfig() *Config {
	return &Config{
		Rounds:     3,
		MaxGuesses: solver.DefaultMaxGuesses,
		Openers:    append([]string(nil), solver.DefaultOpeners...),
		Color:      ColorAuto,
		LogLevel:   "warn",
		DailySalt:  daily.DefaultSalt,
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides copies recognised environment variables onto c.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("WORDS_FILE"); v != "" {
		c.WordsFile = v
	}
	if v := os.Getenv("SOLVER_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SOLVER_ROUNDS: %w", err)
		}
		c.Rounds = n
	}
	if v := os.Getenv("SOLVER_MAX_GUESSES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SOLVER_MAX_GUESSES: %w", err)
		}
		c.MaxGuesses = n
	}
	if v := os.Getenv("SOLVER_OPENERS"); v != "" {
		c.Openers = SplitList(v)
	}
	if v := os.Getenv("SOLVER_COLOR"); v != "" {
		c.Color = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DAILY_SALT"); v != "" {
		c.DailySalt = v
	}
	return nil
}

// SplitList parses a comma separated list, trimming and lowercasing items.
// "none" or "-" alone means an empty list.
func SplitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "none" || s == "-" {
		return []string{}
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var validate = validator.New()

// Validate checks every field and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		case "len":
			if fe.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be %s letters", fe.Field(), fe.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must have length %s", fe.Field(), fe.Param()))
			}
		case "alpha", "lowercase":
			details.WriteString(fmt.Sprintf("%s must be lowercase letters", fe.Field()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}
