package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/screener"
	"github.com/rs/zerolog"
)

// Environment variables read by LoadConfig.
const (
	EnvMinValuation = "SCREENER_MIN_VALUATION"
	EnvMaxRisk      = "SCREENER_MAX_RISK"
	EnvLogLevel     = "SCREENER_LOG_LEVEL"
)

// Config holds the application defaults.
type Config struct {
	MinValuation float64
	MaxRisk      float64
	LogLevel     string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		MinValuation: screener.DefaultMinValuation,
		MaxRisk:      screener.DefaultMaxRisk,
		LogLevel:     "info",
	}
}

// LoadConfig reads the configuration from the environment, using defaults for
// unset variables.
func LoadConfig() (*Config, error) {
	var errs []error
	def := DefaultConfig()
	cfg := &Config{
		MinValuation: getEnvFloat(EnvMinValuation, def.MinValuation, &errs),
		MaxRisk:      getEnvFloat(EnvMaxRisk, def.MaxRisk, &errs),
		LogLevel:     getEnv(EnvLogLevel, def.LogLevel),
	}
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Criteria().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Criteria returns the default screening criteria.
func (c *Config) Criteria() screener.Criteria {
	return screener.Criteria{MinValuation: c.MinValuation, MaxRisk: c.MaxRisk}
}

// Level returns the configured log level, info if it cannot be parsed.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64, errs *[]error) float64 {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s %q: must be a number", key, value))
		return defaultValue
	}
	return f
}
