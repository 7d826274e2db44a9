package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		env         map[string]string
		expected    AbilityConfig
		expectError bool
		errorType   string
	}{
		{
			name:     "missing config file uses defaults",
			expected: GetDefaultConfig(),
		},
		{
			name: "file overrides defaults",
			configYAML: `host:
  version: 6.8.1
  abilitiesDir: defs
log:
  level: debug
`,
			expected: AbilityConfig{
				Host: HostConfig{Version: "6.8.1", AbilitiesDir: "defs", CategoriesDir: DefaultCategoriesDir},
				Log:  LogConfig{Level: "debug"},
			},
		},
		{
			name:       "environment overrides file",
			configYAML: "log:\n  level: info\n",
			env:        map[string]string{"ABILITY_LOG_LEVEL": "error", "ABILITY_HOST_VERSION": "7.0.0"},
			expected: AbilityConfig{
				Host: HostConfig{Version: "7.0.0", AbilitiesDir: DefaultAbilitiesDir, CategoriesDir: DefaultCategoriesDir},
				Log:  LogConfig{Level: "error"},
			},
		},
		{
			name:        "malformed yaml",
			configYAML:  "host: [unterminated\n",
			expectError: true,
			errorType:   ErrorTypeParse,
		},
		{
			name:        "invalid log level",
			configYAML:  "log:\n  level: chatty\n",
			expectError: true,
			errorType:   ErrorTypeValidation,
		},
		{
			name:        "empty directory",
			configYAML:  "host:\n  abilitiesDir: \"\"\n",
			expectError: true,
			errorType:   ErrorTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			fs := afero.NewMemMapFs()
			configPath := "/home/user/.config/ability"
			require.NoError(t, fs.MkdirAll(configPath, 0o755))
			if tt.configYAML != "" {
				require.NoError(t, afero.WriteFile(fs, filepath.Join(configPath, "config.yaml"), []byte(tt.configYAML), 0o644))
			}

			cfg, err := LoadConfig(fs, configPath)
			if tt.expectError {
				require.Error(t, err)
				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.errorType, cfgErr.ErrorType)
				return
			}

			require.NoError(t, err)
			tt.expected.ConfigPath = configPath
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestAbilityConfig_Paths(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.ConfigPath = "/etc/ability"

	assert.Equal(t, "/etc/ability/abilities", cfg.AbilitiesPath())
	assert.Equal(t, "/etc/ability/categories", cfg.CategoriesPath())

	cfg.Host.AbilitiesDir = "/srv/abilities"
	assert.Equal(t, "/srv/abilities", cfg.AbilitiesPath())
}

func TestGetDefaultConfigPathOrPanic(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", ".config", "ability"), GetDefaultConfigPathOrPanic())
}
