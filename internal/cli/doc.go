// Package cli provides the output and error conventions shared by the ability
// commands.
//
// # Output
//
// Formatter renders records, ordered maps of field name to display string,
// in one of the supported formats:
//   - table: ASCII table; a single record is shown as Field/Value rows
//   - csv: header row followed by one row per record
//   - json: indented JSON, an array for lists and an object for one record
//   - yaml: YAML with the same shape as json
//   - count: the number of records
//   - ids: identifiers joined by single spaces
//
// Each command accepts its own subset of formats (ListFormats, GetFormats,
// RunFormats, CategoryListFormats). --field prints the raw value of one field
// and --fields selects and orders columns; an unknown name is reported as
// InvalidFieldError.
//
// WriteValue renders the free-form result of an ability run as json, yaml or
// var_export, a Go-syntax dump with sorted keys.
//
// # Errors and Messages
//
// Fatal errors are printed once as "Error: <message>" by FormatError.
// ExitStatusError ends a command with a non-zero status and no output, for
// commands that answer through their exit code.
package cli
