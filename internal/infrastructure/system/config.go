// Package system provides infrastructure for tool-level configuration.
// This covers the optional per-project config file (.entrig.yaml at the
// project root) that tells the layout resolver where things live.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ProjectConfigFile is looked up in the project root.
const ProjectConfigFile = ".entrig.yaml"

// Config represents the per-project configuration file.
type Config struct {
	// NativeDir is the iOS project directory relative to the project root
	NativeDir string `yaml:"native_dir"`

	// AppMetadataFile is the Expo app config relative to the project root
	AppMetadataFile string `yaml:"app_metadata_file"`

	// ReservedDirs are never picked as the app directory during a scan
	ReservedDirs []string `yaml:"reserved_dirs"`
}

// ConfigLoader loads project configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new project config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns the layout every Expo prebuild produces.
func DefaultConfig() *Config {
	return &Config{
		NativeDir:       "ios",
		AppMetadataFile: "app.json",
		ReservedDirs:    []string{"Pods", "build"},
	}
}

// PathFor returns the config file path for a project root.
func PathFor(projectRoot string) string {
	return filepath.Join(projectRoot, ProjectConfigFile)
}

// Load loads the project configuration from the specified path.
// If the file does not exist, returns DefaultConfig(). Fields left empty in
// the file keep their defaults.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is the project config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse project config: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project config %s: %w", path, err)
	}

	return &config, nil
}

// Validate rejects paths that escape the project root.
func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"native_dir":        c.NativeDir,
		"app_metadata_file": c.AppMetadataFile,
	} {
		if filepath.IsAbs(value) {
			return fmt.Errorf("%s must be relative to the project root, got %q", name, value)
		}
		if clean := filepath.Clean(value); clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%s must stay inside the project root, got %q", name, value)
		}
	}
	return nil
}

// IsReserved reports whether dir must be skipped when scanning for the app.
func (c *Config) IsReserved(dir string) bool {
	for _, reserved := range c.ReservedDirs {
		if dir == reserved {
			return true
		}
	}
	return false
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.NativeDir == "" {
		c.NativeDir = defaults.NativeDir
	}
	if c.AppMetadataFile == "" {
		c.AppMetadataFile = defaults.AppMetadataFile
	}
	if c.ReservedDirs == nil {
		c.ReservedDirs = defaults.ReservedDirs
	}
}
