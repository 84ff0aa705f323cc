package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultTimeLayout mirrors the en-US short date/time rendering.
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// Config holds panel configuration stored at ~/.pagepanel/config.
type Config struct {
	SiteURL    string `yaml:"site_url"`
	Email      string `yaml:"email,omitempty"`
	APIToken   string `yaml:"api_token,omitempty"`
	AccountID  string `yaml:"account_id,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
	SpaceName  string `yaml:"space_name,omitempty"`
	PageID     string `yaml:"page_id,omitempty"`
	TimeLayout string `yaml:"time_layout,omitempty"`
	LogPath    string `yaml:"log_path,omitempty"`
}

// envOverrides holds values read from the environment; empty ones are ignored.
type envOverrides struct {
	SiteURL  string `env:"PAGEPANEL_SITE_URL"`
	Email    string `env:"PAGEPANEL_EMAIL"`
	APIToken string `env:"PAGEPANEL_API_TOKEN"`
	Theme    string `env:"PAGEPANEL_THEME"`
}

// Dir returns the directory holding the config and log files.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pagepanel")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Load reads and parses the config file, then applies environment overrides.
// Returns error if missing, insecure or incomplete.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and enumerated values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SiteURL) == "" {
		return fmt.Errorf("config missing site_url")
	}
	switch c.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want light or dark)", c.Theme)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.SiteURL != "" {
		c.SiteURL = overrides.SiteURL
	}
	if overrides.Email != "" {
		c.Email = overrides.Email
	}
	if overrides.APIToken != "" {
		c.APIToken = overrides.APIToken
	}
	if overrides.Theme != "" {
		c.Theme = overrides.Theme
	}
	return nil
}

// ResolvedTimeLayout returns the configured time layout or the default.
func (c *Config) ResolvedTimeLayout() string {
	if c == nil || strings.TrimSpace(c.TimeLayout) == "" {
		return DefaultTimeLayout
	}
	return c.TimeLayout
}

// ResolvedLogPath returns the configured log path or ~/.pagepanel/panel.log.
func (c *Config) ResolvedLogPath() string {
	if c == nil || strings.TrimSpace(c.LogPath) == "" {
		return filepath.Join(Dir(), "panel.log")
	}
	return c.LogPath
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
