package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ability/internal/cli"
	"ability/internal/input"
	"ability/internal/registry"
)

type runOptions struct {
	input  string
	format string
}

// newRunCmd creates the command executing an ability.
func newRunCmd(s *session) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <name> [--input=<json>] [--<field>=<value>...]",
		Short: "Run an ability",
		Long: `Run a registered ability and print its result.

Pass --input=- to read the JSON input from standard input.` + inputUsage,
		Example: `  ability run core/get-site-info
  ability run demo/greet --name=Ada --format=yaml
  echo '{"name":"Ada"}' | ability run demo/greet --input=-`,
		DisableFlagParsing: true,
		ValidArgsFunction:  s.completeAbilityNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, fields, err := parseFieldArgs(cmd, args)
			if errors.Is(err, pflag.ErrHelp) {
				return cmd.Help()
			}
			if err != nil {
				return err
			}
			return runAbility(cmd, s, opts, name, fields)
		},
	}

	cmd.Flags().StringVar(&opts.input, input.FlagInput, "", "Input as a JSON object, or - to read it from stdin")
	cmd.Flags().StringVar(&opts.format, input.FlagFormat, string(cli.OutputFormatJSON), "Output format ("+cli.JoinFormats(cli.RunFormats)+")")
	_ = cmd.RegisterFlagCompletionFunc(input.FlagFormat, cli.FormatCompletion(cli.RunFormats))

	return cmd
}

func runAbility(cmd *cobra.Command, s *session, opts *runOptions, name string, fields []input.Field) error {
	reg, err := s.registry(cmd)
	if err != nil {
		return err
	}

	if err := cli.ValidateOutputFormat(opts.format, cli.RunFormats); err != nil {
		return err
	}

	a, err := registry.LookupAbility(reg, name)
	if err != nil {
		return err
	}

	payload, err := input.BuildFromStdin(opts.input, fields, cmd.InOrStdin())
	if err != nil {
		return err
	}

	result, err := reg.ExecuteAbility(cmd.Context(), a, payload)
	if err != nil {
		return err
	}

	return cli.WriteValue(cmd.OutOrStdout(), cli.OutputFormat(opts.format), result)
}
