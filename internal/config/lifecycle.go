package config

import (
	"errors"
	"os"
	"time"
)

// LifecycleConfig controls shutdown-on-disconnect.
type LifecycleConfig struct {
	Enabled      bool          `yaml:"enabled"`
	GraceDelay   time.Duration `yaml:"grace_delay"`
	PingInterval time.Duration `yaml:"ping_interval"` // 0 disables ping frames
}

// DefaultLifecycleConfig returns default lifecycle configuration.
func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{
		Enabled:      true,
		GraceDelay:   500 * time.Millisecond,
		PingInterval: 30 * time.Second,
	}
}

func (c *LifecycleConfig) ApplyDefaults() {
	if c.GraceDelay == 0 {
		c.GraceDelay = DefaultLifecycleConfig().GraceDelay
	}
}

// ApplyEnvOverrides is a no-op; lifecycle has no env overrides.
func (c *LifecycleConfig) ApplyEnvOverrides() { _ = c }

// ResolvePaths is a no-op; lifecycle has no paths.
func (c *LifecycleConfig) ResolvePaths(_ string) { _ = c }

func (c *LifecycleConfig) Validate() error {
	if c.GraceDelay < 0 {
		return errors.New("lifecycle.grace_delay cannot be negative")
	}
	if c.PingInterval < 0 {
		return errors.New("lifecycle.ping_interval cannot be negative")
	}
	return nil
}

// LauncherConfig controls opening the UI in a browser at startup.
type LauncherConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Delay       time.Duration `yaml:"delay"`
	BrowserPath string        `yaml:"browser_path"`
	// StartupURL defaults to the server's own base URL.
	StartupURL string `yaml:"startup_url"`
}

// DefaultLauncherConfig returns default launcher configuration.
func DefaultLauncherConfig() LauncherConfig {
	return LauncherConfig{
		Enabled: true,
		Delay:   time.Second,
	}
}

func (c *LauncherConfig) ApplyDefaults() {
	if c.Delay == 0 {
		c.Delay = DefaultLauncherConfig().Delay
	}
}

func (c *LauncherConfig) ApplyEnvOverrides() {
	if val := os.Getenv("LOCALPLATFORM_NO_BROWSER"); val == "true" || val == "1" {
		c.Enabled = false
	}
	if val := os.Getenv("LOCALPLATFORM_BROWSER"); val != "" {
		c.BrowserPath = val
	}
}

// ResolvePaths leaves BrowserPath alone: a bare name is looked up on $PATH.
func (c *LauncherConfig) ResolvePaths(_ string) { _ = c }

func (c *LauncherConfig) Validate() error {
	if c.Delay < 0 {
		return errors.New("launcher.delay cannot be negative")
	}
	return nil
}
