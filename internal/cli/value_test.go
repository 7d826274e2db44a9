package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteValue(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		value    any
		expected string
	}{
		{
			name:     "json object",
			format:   OutputFormatJSON,
			value:    map[string]any{"b": 2, "a": "<x>"},
			expected: "{\n  \"a\": \"<x>\",\n  \"b\": 2\n}\n",
		},
		{
			name:     "json string",
			format:   OutputFormatJSON,
			value:    "hello",
			expected: "\"hello\"\n",
		},
		{
			name:     "json null",
			format:   OutputFormatJSON,
			value:    nil,
			expected: "null\n",
		},
		{
			name:     "yaml object",
			format:   OutputFormatYAML,
			value:    map[string]any{"count": 3, "name": "test"},
			expected: "count: 3\nname: test\n",
		},
		{
			name:     "yaml list",
			format:   OutputFormatYAML,
			value:    []any{"a", "b"},
			expected: "- a\n- b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteValue(&buf, tt.format, tt.value))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteValue_VarExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteValue(&buf, OutputFormatVarExport, map[string]any{"z": 1, "a": "x"}))

	out := buf.String()
	assert.Contains(t, out, "(map[string]interface {})")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"a"`)), bytes.Index(buf.Bytes(), []byte(`"z"`)))
	assert.NotContains(t, out, "0xc")
}

func TestWriteValue_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteValue(&buf, OutputFormatTable, "x")
	assert.EqualError(t, err, `Invalid value specified for 'format': "table". Valid values: json, yaml, var_export.`)
	assert.Empty(t, buf.String())
}
