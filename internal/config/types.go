package config

import (
	"path/filepath"
)

// AbilityConfig is the top-level configuration structure for the ability CLI.
type AbilityConfig struct {
	Host HostConfig `mapstructure:"host" yaml:"host"`
	Log  LogConfig  `mapstructure:"log" yaml:"log"`

	// ConfigPath is the directory the configuration was loaded from. Relative
	// directories in Host resolve against it.
	ConfigPath string `mapstructure:"-" yaml:"-"`
}

// HostConfig configures the file-backed host.
type HostConfig struct {
	Version       string `mapstructure:"version" yaml:"version"`             // Version the host reports to the version gate (default: 6.9.0)
	AbilitiesDir  string `mapstructure:"abilitiesDir" yaml:"abilitiesDir"`   // Directory holding ability definitions (default: abilities)
	CategoriesDir string `mapstructure:"categoriesDir" yaml:"categoriesDir"` // Directory holding category definitions (default: categories)
}

// LogConfig configures CLI logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn or error (default: warn)
}

// AbilitiesPath returns the absolute ability definitions directory.
func (c AbilityConfig) AbilitiesPath() string {
	return c.resolve(c.Host.AbilitiesDir)
}

// CategoriesPath returns the absolute category definitions directory.
func (c AbilityConfig) CategoriesPath() string {
	return c.resolve(c.Host.CategoriesDir)
}

func (c AbilityConfig) resolve(dir string) string {
	if filepath.IsAbs(dir) || c.ConfigPath == "" {
		return dir
	}
	return filepath.Join(c.ConfigPath, dir)
}
