package config

import (
	"github.com/spf13/viper"
)

const (
	// DefaultHostVersion is the version reported by the file-backed host
	DefaultHostVersion = "6.9.0"

	// DefaultAbilitiesDir is the ability definitions directory, relative to the config path
	DefaultAbilitiesDir = "abilities"

	// DefaultCategoriesDir is the category definitions directory, relative to the config path
	DefaultCategoriesDir = "categories"

	// DefaultLogLevel keeps stderr quiet unless something is wrong
	DefaultLogLevel = "warn"
)

// GetDefaultConfig returns default configuration
func GetDefaultConfig() AbilityConfig {
	return AbilityConfig{
		Host: HostConfig{
			Version:       DefaultHostVersion,
			AbilitiesDir:  DefaultAbilitiesDir,
			CategoriesDir: DefaultCategoriesDir,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func setDefaults(v *viper.Viper) {
	defaults := GetDefaultConfig()
	v.SetDefault("host.version", defaults.Host.Version)
	v.SetDefault("host.abilitiesDir", defaults.Host.AbilitiesDir)
	v.SetDefault("host.categoriesDir", defaults.Host.CategoriesDir)
	v.SetDefault("log.level", defaults.Log.Level)
}
