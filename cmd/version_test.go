package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	versionCmd := newVersionCmd()

	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
	assert.NotNil(t, versionCmd.Run)
}

func TestVersionCommandExecution(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{
			name:     "release version",
			version:  "1.2.3-test",
			expected: "ability version 1.2.3-test\n",
		},
		{
			name:     "empty version",
			version:  "",
			expected: "ability version \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCmd(fixtureRegistry(t).Opener())
			root.Version = tt.version

			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetArgs([]string{"version"})

			require.NoError(t, root.Execute())
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestVersionCommand_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand(fixtureRegistry(t).Opener(), "", "version", "extra")
	assert.Error(t, err)
}
