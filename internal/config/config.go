// Package config provides configuration management for the departures tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultDeparturesURL is the MBTA commuter rail departures board.
const DefaultDeparturesURL = "http://developer.mbta.com/lib/gtrtfs/Departures.csv"

// DefaultOrigin is the station the schedule is printed for.
const DefaultOrigin = "South Station"

// Sort modes.
const (
	SortLexical = "lexical"
	SortNumeric = "numeric"
)

// Configuration validation errors.
var (
	ErrMissingURL      = errors.New("source.url is required")
	ErrInvalidTimeout  = errors.New("source.timeout_sec must be non-negative")
	ErrMissingOrigin   = errors.New("schedule.origin is required")
	ErrInvalidSortMode = errors.New("schedule.sort must be 'lexical' or 'numeric'")
	ErrInvalidLogLevel = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SourceConfig describes where departures are fetched from.
type SourceConfig struct {
	URL        string `yaml:"url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// ScheduleConfig controls filtering and ordering.
type ScheduleConfig struct {
	Origin string `yaml:"origin"`
	Sort   string `yaml:"sort"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:        DefaultDeparturesURL,
			TimeoutSec: 30,
		},
		Schedule: ScheduleConfig{
			Origin: DefaultOrigin,
			Sort:   SortLexical,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return ErrMissingURL
	}

	if c.Source.TimeoutSec < 0 {
		return ErrInvalidTimeout
	}

	if c.Schedule.Origin == "" {
		return ErrMissingOrigin
	}

	if c.Schedule.Sort != SortLexical && c.Schedule.Sort != SortNumeric {
		return fmt.Errorf("%w: got %q", ErrInvalidSortMode, c.Schedule.Sort)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Timeout returns the HTTP client timeout. Zero means no timeout.
func (s *SourceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{URL: %s, Origin: %s, Sort: %s}",
		c.Source.URL,
		c.Schedule.Origin,
		c.Schedule.Sort,
	)
}
