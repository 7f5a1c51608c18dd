// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/pinyuchen/shiftwish/internal/slot"
)

// Column policy names.
const (
	PolicyLabeled = "labeled" // 3 named shifts matched by time-label tokens
	PolicyOrdinal = "ordinal" // N shifts matched by slot id suffix
)

// Config holds the application configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Columns ColumnsConfig `toml:"columns"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// APIConfig holds the backend endpoint settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"` // Apps Script web app URL
	Library string `toml:"library"`  // deployment discriminator, optional
}

// ColumnsConfig selects the column policy for the schedule grid.
type ColumnsConfig struct {
	Policy string `toml:"policy"` // "labeled" or "ordinal"
	Count  int    `toml:"count"`  // number of ordinal columns
}

// StorageConfig holds the local identity store settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha" or "latte", empty picks by terminal background
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{},
		Columns: ColumnsConfig{
			Policy: PolicyLabeled,
			Count:  8,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shiftwish.db"
	}
	return filepath.Join(home, ".local", "share", "shiftwish", "shiftwish.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "shiftwish", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SHIFTWISH_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("SHIFTWISH_LIBRARY"); v != "" {
		cfg.API.Library = v
	}
	if v := os.Getenv("SHIFTWISH_COLUMNS_POLICY"); v != "" {
		cfg.Columns.Policy = v
	}
	if v := os.Getenv("SHIFTWISH_COLUMNS_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Columns.Count = n
		}
	}
	if v := os.Getenv("SHIFTWISH_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SHIFTWISH_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Columns.Policy {
	case PolicyLabeled, PolicyOrdinal:
	default:
		return fmt.Errorf("columns.policy must be %q or %q, got %q",
			PolicyLabeled, PolicyOrdinal, c.Columns.Policy)
	}
	if c.Columns.Policy == PolicyOrdinal && c.Columns.Count < 1 {
		return errors.New("columns.count must be at least 1")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// Policy builds the column policy configured for this deployment.
func (c *Config) Policy() slot.Policy {
	if c.Columns.Policy == PolicyOrdinal {
		return slot.NewOrdinalPolicy(c.Columns.Count)
	}
	return slot.DefaultLabelPolicy()
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
