package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ability/internal/cli"
	"ability/internal/input"
	"ability/internal/registry"
)

// newValidateCmd creates the command validating input against an ability's
// input schema.
func newValidateCmd(s *session) *cobra.Command {
	var rawInput string

	cmd := &cobra.Command{
		Use:   "validate <name> [--input=<json>] [--<field>=<value>...]",
		Short: "Validate input against an ability's input schema",
		Long: `Validate input for an ability without running it. Schema defaults are
applied before validation, the same way they are when the ability runs.` + inputUsage,
		Example: `  ability validate demo/greet --name=Ada
  ability validate demo/add --input='{"a": 1, "b": 2}'`,
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

			reg, err := s.registry(cmd)
			if err != nil {
				return err
			}

			a, err := registry.LookupAbility(reg, name)
			if err != nil {
				return err
			}

			payload, err := input.BuildStrict(rawInput, fields)
			if err != nil {
				return err
			}

			if err := reg.ValidateInput(a, reg.NormalizeInput(a, payload)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Input is valid."))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawInput, input.FlagInput, "", "Input as a JSON object")

	return cmd
}
