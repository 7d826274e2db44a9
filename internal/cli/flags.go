package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// OutputFlags holds the formatter flag values shared by the listing and
// inspection commands.
type OutputFlags struct {
	// Format is the --format value
	Format string
	// Field is the --field value
	Field string
	// Fields is the raw comma separated --fields value
	Fields string
}

// RegisterOutputFlags registers --format, --field and --fields on cmd.
//
// The registered flags are:
//   - --format: Output format, one of valid, default defaultFormat
//   - --field: Print the value of a single field
//   - --fields: Limit the output to specific fields (comma separated)
func RegisterOutputFlags(cmd *cobra.Command, flags *OutputFlags, defaultFormat OutputFormat, valid []OutputFormat) {
	cmd.Flags().StringVar(&flags.Format, "format", string(defaultFormat), "Output format ("+JoinFormats(valid)+")")
	cmd.Flags().StringVar(&flags.Field, "field", "", "Print the value of a single field")
	cmd.Flags().StringVar(&flags.Fields, "fields", "", "Limit the output to specific fields (comma separated)")
	_ = cmd.RegisterFlagCompletionFunc("format", FormatCompletion(valid))
}

// FormatCompletion completes --format values.
func FormatCompletion(valid []OutputFormat) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(valid))
		for _, f := range valid {
			if strings.HasPrefix(string(f), toComplete) {
				names = append(names, string(f))
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// ToFormatterOptions validates the format and converts the flags into
// formatter options.
func (f *OutputFlags) ToFormatterOptions(valid []OutputFormat) (FormatterOptions, error) {
	if err := ValidateOutputFormat(f.Format, valid); err != nil {
		return FormatterOptions{}, err
	}
	return FormatterOptions{
		Format: OutputFormat(f.Format),
		Field:  strings.TrimSpace(f.Field),
		Fields: SplitFields(f.Fields),
	}, nil
}

// Requested returns every field name named by --field and --fields.
func (f *OutputFlags) Requested() []string {
	requested := SplitFields(f.Fields)
	if field := strings.TrimSpace(f.Field); field != "" {
		requested = append(requested, field)
	}
	return requested
}

// SplitFields splits a comma separated field list, dropping blanks.
func SplitFields(s string) []string {
	var fields []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			fields = append(fields, part)
		}
	}
	return fields
}
