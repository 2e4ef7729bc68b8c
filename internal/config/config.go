package config

import (
	"os"
	"strconv"

	"goanova/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AnalysisConfig holds statistical analysis settings
type AnalysisConfig struct {
	// Alpha is the default significance level for verdicts
	Alpha float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Analysis: AnalysisConfig{
			Alpha: 0.05,
		},
	}

	if alphaStr := os.Getenv("ANOVA_ALPHA"); alphaStr != "" {
		alpha, err := strconv.ParseFloat(alphaStr, 64)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse ANOVA_ALPHA")
		}
		config.Analysis.Alpha = alpha
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("server port must not be empty")
	}
	if c.Analysis.Alpha <= 0 || c.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("ANOVA_ALPHA must be in (0, 1)")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
