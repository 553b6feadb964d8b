// Package config provides configuration management for promptplan.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Planner PlannerConfig `mapstructure:"planner"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig configures plan and draft persistence
type StorageConfig struct {
	Dir         string        `mapstructure:"dir"`
	MaxHistory  int           `mapstructure:"max_history"`
	DraftMaxAge time.Duration `mapstructure:"draft_max_age"`
}

// PlannerConfig configures the questionnaire heuristics
type PlannerConfig struct {
	ShortIdeaWords int    `mapstructure:"short_idea_words"`
	ShortIdeaChars int    `mapstructure:"short_idea_chars"`
	CoreQuestions  int    `mapstructure:"core_questions"`
	TemplatesFile  string `mapstructure:"templates_file"`
}

// LoggingConfig configures logging behavior
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".promptplan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "promptplan"))
			v.AddConfigPath(home)
		}
	}

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PROMPTPLAN")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	storageDir := ".promptplan"
	if home, err := os.UserHomeDir(); err == nil {
		storageDir = filepath.Join(home, ".promptplan")
	}

	v.SetDefault("storage.dir", storageDir)
	v.SetDefault("storage.max_history", 20)
	v.SetDefault("storage.draft_max_age", 24*time.Hour)

	v.SetDefault("planner.short_idea_words", 6)
	v.SetDefault("planner.short_idea_chars", 30)
	v.SetDefault("planner.core_questions", 6)
	v.SetDefault("planner.templates_file", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}
	if c.Storage.MaxHistory <= 0 {
		return fmt.Errorf("storage.max_history must be positive")
	}
	if c.Storage.DraftMaxAge <= 0 {
		return fmt.Errorf("storage.draft_max_age must be positive")
	}

	if c.Planner.ShortIdeaWords <= 0 {
		return fmt.Errorf("planner.short_idea_words must be positive")
	}
	if c.Planner.ShortIdeaChars <= 0 {
		return fmt.Errorf("planner.short_idea_chars must be positive")
	}
	if c.Planner.CoreQuestions <= 0 {
		return fmt.Errorf("planner.core_questions must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: console, json")
	}

	return nil
}

// GetLogLevel returns the zerolog level based on config
func (c *Config) GetLogLevel() zerolog.Level {
	switch c.Logging.Level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// IsJSONFormat returns true if logging format is JSON
func (c *Config) IsJSONFormat() bool {
	return c.Logging.Format == "json"
}
