package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommand(t *testing.T) {
	stdout, _, err := executeCommand(fixtureRegistry(t).Opener(), "", "get", "test-plugin/rest", "--format=json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "test-plugin/rest",
		"label": "REST",
		"category": "site",
		"description": "Exposed over REST.",
		"input_schema": "null",
		"output_schema": "null",
		"readonly": "1",
		"destructive": "",
		"idempotent": "",
		"show_in_rest": "1"
	}`, stdout)
}

func TestGetCommand_Fields(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "schema field",
			args:     []string{"other/count", "--field=input_schema"},
			expected: `{"required":["count"],"type":"object"}` + "\n",
		},
		{
			name:     "absent annotation",
			args:     []string{"other/count", "--field=destructive"},
			expected: "\n",
		},
		{
			name:     "single field as json",
			args:     []string{"test-plugin/hidden", "--field=label", "--format=json"},
			expected: "\"Hidden\"\n",
		},
		{
			name:     "selected fields as yaml",
			args:     []string{"test-plugin/hidden", "--fields=name,show_in_rest", "--format=yaml"},
			expected: "name: test-plugin/hidden\nshow_in_rest: \"0\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(fixtureRegistry(t).Opener(), "", append([]string{"get"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestGetCommand_Table(t *testing.T) {
	stdout, _, err := executeCommand(fixtureRegistry(t).Opener(), "", "get", "test-plugin/rest")
	require.NoError(t, err)
	assert.Contains(t, stdout, "input_schema")
	assert.Contains(t, stdout, "Exposed over REST.")
}

func TestGetCommand_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr string
	}{
		{
			name:        "not found",
			args:        []string{"missing/ability"},
			expectedErr: `Ability "missing/ability" not found.`,
		},
		{
			name:        "unsupported format",
			args:        []string{"test-plugin/rest", "--format=count"},
			expectedErr: `Invalid value specified for 'format': "count". Valid values: table, csv, json, yaml.`,
		},
		{
			name:        "missing name",
			args:        nil,
			expectedErr: "accepts 1 arg(s), received 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(fixtureRegistry(t).Opener(), "", append([]string{"get"}, tt.args...)...)
			assert.EqualError(t, err, tt.expectedErr)
			assert.Empty(t, stdout)
		})
	}
}
