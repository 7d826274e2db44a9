package cli

import (
	"fmt"
	"strings"
)

// OutputFormat represents the supported output formats for CLI commands.
type OutputFormat string

const (
	// OutputFormatTable renders an ASCII table
	OutputFormatTable OutputFormat = "table"
	// OutputFormatCSV renders a header row followed by one row per record
	OutputFormatCSV OutputFormat = "csv"
	// OutputFormatJSON renders indented JSON
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML renders YAML
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatCount prints the number of records
	OutputFormatCount OutputFormat = "count"
	// OutputFormatIDs prints record identifiers separated by spaces
	OutputFormatIDs OutputFormat = "ids"
	// OutputFormatVarExport prints a Go-syntax dump of a result value
	OutputFormatVarExport OutputFormat = "var_export"
)

// Format sets accepted by each command.
var (
	ListFormats         = []OutputFormat{OutputFormatTable, OutputFormatCSV, OutputFormatJSON, OutputFormatYAML, OutputFormatCount, OutputFormatIDs}
	GetFormats          = []OutputFormat{OutputFormatTable, OutputFormatCSV, OutputFormatJSON, OutputFormatYAML}
	RunFormats          = []OutputFormat{OutputFormatJSON, OutputFormatYAML, OutputFormatVarExport}
	CategoryListFormats = []OutputFormat{OutputFormatTable, OutputFormatCSV, OutputFormatJSON, OutputFormatYAML, OutputFormatCount}
)

// ValidateOutputFormat checks format against the formats a command accepts.
// The error lists the valid values.
func ValidateOutputFormat(format string, valid []OutputFormat) error {
	for _, f := range valid {
		if OutputFormat(format) == f {
			return nil
		}
	}
	return &UnsupportedFormatError{Format: format, Valid: valid}
}

// UnsupportedFormatError reports a --format value the command does not accept.
type UnsupportedFormatError struct {
	Format string
	Valid  []OutputFormat
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Invalid value specified for 'format': %q. Valid values: %s.", e.Format, JoinFormats(e.Valid))
}

// JoinFormats renders formats as a comma separated list for help texts.
func JoinFormats(formats []OutputFormat) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
