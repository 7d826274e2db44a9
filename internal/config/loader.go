package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ability/pkg/logging"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	userConfigDir  = ".config/ability"
	configFileName = "config.yaml"

	// EnvPrefix prefixes every environment override, e.g. ABILITY_LOG_LEVEL.
	EnvPrefix = "ABILITY"
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

func newViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadConfig loads configuration from a single specified directory.
// The directory should contain config.yaml and the definition subdirectories.
// A missing config.yaml is not an error; defaults and environment overrides
// still apply.
func LoadConfig(fs afero.Fs, configPath string) (AbilityConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	v := newViper(fs)

	exists, err := afero.Exists(fs, configFilePath)
	if err != nil {
		return AbilityConfig{}, &ConfigurationError{FilePath: configFilePath, ErrorType: ErrorTypeIO, Message: err.Error()}
	}
	if exists {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			return AbilityConfig{}, &ConfigurationError{FilePath: configFilePath, ErrorType: ErrorTypeParse, Message: err.Error()}
		}
		logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	} else {
		logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
	}

	var cfg AbilityConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AbilityConfig{}, &ConfigurationError{FilePath: configFilePath, ErrorType: ErrorTypeParse, Message: err.Error()}
	}
	cfg.ConfigPath = configPath

	if err := ValidateConfig(cfg); err != nil {
		return AbilityConfig{}, &ConfigurationError{FilePath: configFilePath, ErrorType: ErrorTypeValidation, Message: err.Error()}
	}
	return cfg, nil
}
