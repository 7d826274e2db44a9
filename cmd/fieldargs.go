package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ability/internal/input"
)

// inputUsage is appended to the help of commands taking payload fields.
const inputUsage = `
Input is built from --input and from any other --<field>=<value> flag, which
sets that field to the string value. A field flag without a value is set to
"true". Field flags override keys of the same name in --input.`

// parseFieldArgs parses the raw arguments of a command that disables cobra's
// flag parsing. It returns the single positional argument and the payload
// fields in the order given. pflag.ErrHelp is returned when help was asked for.
func parseFieldArgs(cmd *cobra.Command, args []string) (string, []input.Field, error) {
	// Merges the persistent root flags into cmd.Flags().
	cmd.InheritedFlags()

	fields, err := input.SplitFieldArgs(cmd.Flags(), args)
	if err != nil {
		return "", nil, err
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return "", nil, pflag.ErrHelp
	}

	positional := cmd.Flags().Args()
	if err := cobra.ExactArgs(1)(cmd, positional); err != nil {
		return "", nil, err
	}
	return positional[0], fields, nil
}
