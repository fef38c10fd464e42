package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/localplatform/localplatform/internal/server"
	"gopkg.in/yaml.v3"
)

// DefaultConfigDir is where LoadConfig looks for YAML files.
const DefaultConfigDir = "config"

// Config holds the application configuration
type Config struct {
	Server    server.Config   `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Storage   StorageConfig   `yaml:"storage"`
	Frontend  FrontendConfig  `yaml:"frontend"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
	Launcher  LauncherConfig  `yaml:"launcher"`
}

// Default returns the configuration used when no files or env vars are present.
func Default() *Config {
	return &Config{
		Server:    server.DefaultConfig(),
		Logging:   DefaultLoggingConfig(),
		Storage:   DefaultStorageConfig(),
		Frontend:  DefaultFrontendConfig(),
		Lifecycle: DefaultLifecycleConfig(),
		Launcher:  DefaultLauncherConfig(),
	}
}

// LoadConfig loads configuration from files and environment variables.
// Order: defaults -> config.yml -> config.local.yml -> ApplyDefaults ->
// ApplyEnvOverrides -> ResolvePaths -> Validate.
//
// Relative paths resolve against the parent of configDir, so data/ and logs/
// end up next to config/, not inside it.
func LoadConfig(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir
	}
	cfg := Default()

	if err := loadFile(filepath.Join(configDir, "config.yml"), cfg); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(configDir, "config.local.yml"), cfg); err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(filepath.Clean(configDir))
	if err := ApplyServiceConfigs(baseDir,
		&cfg.Server,
		&cfg.Logging,
		&cfg.Storage,
		&cfg.Frontend,
		&cfg.Lifecycle,
		&cfg.Launcher,
	); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	if cfg.Launcher.StartupURL == "" {
		cfg.Launcher.StartupURL = cfg.Server.BaseURL()
	}
	return cfg, nil
}

// loadFile overlays filename onto cfg. A missing file is skipped; an
// unreadable one is logged and skipped; malformed YAML is an error.
func loadFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		slog.Warn("Error reading config file", "file", filename, "error", err)
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}
	return nil
}

// EnsureDataDir creates the document store root.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.Storage.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Overrides holds command-line values that win over files and env.
// Zero fields leave the loaded value alone.
type Overrides struct {
	Port      int
	DataDir   string
	NoBrowser bool
}

// ApplyOverrides applies o on top of a loaded configuration. A startup URL
// derived from the old address follows the new port.
func (c *Config) ApplyOverrides(o Overrides) error {
	derived := c.Launcher.StartupURL == c.Server.BaseURL()

	if o.Port != 0 {
		c.Server.HTTPPort = o.Port
	}
	if o.DataDir != "" {
		abs, err := filepath.Abs(o.DataDir)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		c.Storage.DataDir = abs
	}
	if o.NoBrowser {
		c.Launcher.Enabled = false
	}

	if derived {
		c.Launcher.StartupURL = c.Server.BaseURL()
	}
	return c.Server.Validate()
}
