package cmd

import (
	"github.com/spf13/cobra"

	"ability/internal/ability"
	"ability/internal/cli"
	"ability/internal/registry"
)

// newGetCmd creates the command showing a single ability.
func newGetCmd(s *session) *cobra.Command {
	output := &cli.OutputFlags{}

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show details of an ability",
		Long: `Show every field of a registered ability, including its input and
output schemas rendered as JSON.`,
		Example: `  ability get core/get-site-info
  ability get core/get-site-info --field=input_schema`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: s.completeAbilityNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.registry(cmd)
			if err != nil {
				return err
			}

			formatOpts, err := output.ToFormatterOptions(cli.GetFormats)
			if err != nil {
				return err
			}

			a, err := registry.LookupAbility(reg, args[0])
			if err != nil {
				return err
			}

			formatOpts.Defaults = ability.DetailFields
			formatOpts.Available = ability.DetailFields
			return cli.NewFormatter(cmd.OutOrStdout(), formatOpts).DisplayItem(ability.DetailRecord(a))
		},
	}

	cli.RegisterOutputFlags(cmd, output, cli.OutputFormatTable, cli.GetFormats)

	return cmd
}
