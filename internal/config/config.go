// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolo configuration.
type Config struct {
	Shell Shell `yaml:"shell"`
	Book  Book  `yaml:"book"`
}

// Shell holds interactive session settings.
type Shell struct {
	Prompt string `yaml:"prompt"`
	NoTUI  bool   `yaml:"no_tui"`
}

// Book holds contact directory settings.
type Book struct {
	// UpcomingWindowDays is the inclusive day window scanned by the
	// birthdays command.
	UpcomingWindowDays int `yaml:"upcoming_window_days"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Shell: Shell{
			Prompt: "Enter a command: ",
		},
		Book: Book{
			UpcomingWindowDays: 7,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Shell.Prompt == "" {
		return errors.New("config: shell.prompt cannot be empty")
	}
	if c.Book.UpcomingWindowDays <= 0 {
		return fmt.Errorf("config: book.upcoming_window_days must be positive, got %d", c.Book.UpcomingWindowDays)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLO_PROMPT, ROLO_NO_TUI, ROLO_WINDOW.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLO_PROMPT"); v != "" {
		c.Shell.Prompt = v
	}
	if v := os.Getenv("ROLO_NO_TUI"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_NO_TUI %q: %w", v, err)
		}
		c.Shell.NoTUI = b
	}
	if v := os.Getenv("ROLO_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_WINDOW %q: %w", v, err)
		}
		c.Book.UpcomingWindowDays = n
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Shell *rawShell `yaml:"shell"`
	Book  *rawBook  `yaml:"book"`
}

type rawShell struct {
	Prompt *string `yaml:"prompt"`
	NoTUI  *bool   `yaml:"no_tui"`
}

type rawBook struct {
	UpcomingWindowDays *int `yaml:"upcoming_window_days"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Shell != nil {
		if layer.Shell.Prompt != nil {
			c.Shell.Prompt = *layer.Shell.Prompt
		}
		if layer.Shell.NoTUI != nil {
			c.Shell.NoTUI = *layer.Shell.NoTUI
		}
	}
	if layer.Book != nil {
		if layer.Book.UpcomingWindowDays != nil {
			c.Book.UpcomingWindowDays = *layer.Book.UpcomingWindowDays
		}
	}
}
