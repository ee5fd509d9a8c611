package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the config file is looked up when no --config flag
// is given.
const DefaultPath = ".t21dir/config.yaml"

// Config holds all t21dir configuration.
type Config struct {
	// Where listings come from
	Source SourceConfig `yaml:"source"`

	// Interactive browser
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig configures the interactive browser.
type UIConfig struct {
	SearchDebounce string    `yaml:"search_debounce"`
	DarkMode       *bool     `yaml:"dark_mode,omitempty"` // nil = detect from terminal
	PageSizes      PageSizes `yaml:"page_sizes"`
}

// PageSizes is the load-more increment per list.
type PageSizes struct {
	Financial   int `yaml:"financial"`
	Therapy     int `yaml:"therapy"`
	Inspiration int `yaml:"inspiration"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:    SourceSupabase,
			DataDir: "data",
			Timeout: "30s",
		},
		UI: UIConfig{
			SearchDebounce: "300ms",
			PageSizes: PageSizes{
				Financial:   10,
				Therapy:     10,
				Inspiration: 12,
			},
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  ".t21dir/t21dir.log",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. A .env file in the working directory is read first, and
// environment variables always win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// Hosted store credentials
	if url := os.Getenv("SUPABASE_URL"); url != "" {
		c.Source.URL = url
	}
	if key := os.Getenv("SUPABASE_ANON_KEY"); key != "" {
		c.Source.AnonKey = key
	}

	if kind := os.Getenv("T21_SOURCE"); kind != "" {
		c.Source.Kind = SourceKind(strings.ToLower(kind))
	}
	if dir := os.Getenv("T21_DATA_DIR"); dir != "" {
		c.Source.DataDir = dir
	}
	if dsn := os.Getenv("T21_DATABASE_DSN"); dsn != "" {
		c.Source.DSN = dsn
	}

	if level := os.Getenv("T21_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv("T21_DARK_MODE"); v != "" {
		if dark, err := strconv.ParseBool(v); err == nil {
			c.UI.DarkMode = &dark
		}
	}
}

// GetSearchDebounce returns the search quiet period as a duration.
func (c *Config) GetSearchDebounce() time.Duration {
	d, err := time.ParseDuration(c.UI.SearchDebounce)
	if err != nil || d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
