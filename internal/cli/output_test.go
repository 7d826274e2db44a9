package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		valid   []OutputFormat
		wantErr bool
	}{
		{name: "table for list", format: "table", valid: ListFormats},
		{name: "ids for list", format: "ids", valid: ListFormats},
		{name: "ids not for category list", format: "ids", valid: CategoryListFormats, wantErr: true},
		{name: "count not for get", format: "count", valid: GetFormats, wantErr: true},
		{name: "var_export for run", format: "var_export", valid: RunFormats},
		{name: "table not for run", format: "table", valid: RunFormats, wantErr: true},
		{name: "empty", format: "", valid: ListFormats, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.valid)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, f := range tt.valid {
				assert.Contains(t, err.Error(), string(f))
			}
		})
	}
}

func TestUnsupportedFormatError(t *testing.T) {
	err := ValidateOutputFormat("xml", RunFormats)
	assert.EqualError(t, err, `Invalid value specified for 'format': "xml". Valid values: json, yaml, var_export.`)
}
