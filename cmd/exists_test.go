package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ability/internal/cli"
)

func TestExistsCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedCode int
	}{
		{
			name:         "registered ability",
			args:         []string{"exists", "test-plugin/rest"},
			expectedCode: ExitCodeSuccess,
		},
		{
			name:         "unregistered ability",
			args:         []string{"exists", "missing/ability"},
			expectedCode: ExitCodeError,
		},
		{
			name:         "registered category",
			args:         []string{"category", "exists", "math"},
			expectedCode: ExitCodeSuccess,
		},
		{
			name:         "unregistered category",
			args:         []string{"category", "exists", "missing"},
			expectedCode: ExitCodeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := executeCommand(fixtureRegistry(t).Opener(), "", tt.args...)
			assert.Equal(t, tt.expectedCode, getExitCode(err))
			if err != nil {
				assert.True(t, cli.IsSilent(err))
			}
			assert.Empty(t, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestExistsCommand_RequiresName(t *testing.T) {
	_, _, err := executeCommand(fixtureRegistry(t).Opener(), "", "exists")
	require.Error(t, err)
	assert.False(t, cli.IsSilent(err))
}
