package config

import (
	"errors"
	"os"
)

// StorageConfig locates the document store on disk.
type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

// DefaultStorageConfig returns default storage configuration.
func DefaultStorageConfig() StorageConfig {
	return StorageConfig{DataDir: "local_data"}
}

func (c *StorageConfig) ApplyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultStorageConfig().DataDir
	}
}

func (c *StorageConfig) ApplyEnvOverrides() {
	if val := os.Getenv("LOCALPLATFORM_DATA_DIR"); val != "" {
		c.DataDir = val
	}
}

func (c *StorageConfig) ResolvePaths(baseDir string) {
	c.DataDir = resolvePath(baseDir, c.DataDir)
}

func (c *StorageConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("storage.data_dir cannot be empty")
	}
	return nil
}

// FrontendConfig locates the static UI. Dir holds app/ (served at /) and
// sdk/ (served at /sdk/).
type FrontendConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultFrontendConfig returns default frontend configuration.
func DefaultFrontendConfig() FrontendConfig {
	return FrontendConfig{Dir: "frontend"}
}

func (c *FrontendConfig) ApplyDefaults() {
	if c.Dir == "" {
		c.Dir = DefaultFrontendConfig().Dir
	}
}

func (c *FrontendConfig) ApplyEnvOverrides() {
	if val := os.Getenv("LOCALPLATFORM_FRONTEND_DIR"); val != "" {
		c.Dir = val
	}
}

func (c *FrontendConfig) ResolvePaths(baseDir string) {
	c.Dir = resolvePath(baseDir, c.Dir)
}

func (c *FrontendConfig) Validate() error { return nil }
