package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ability/internal/cli"
	"ability/internal/input"
	"ability/internal/registry"
	"ability/pkg/logging"
)

// newCanRunCmd creates the command checking whether an ability may run.
func newCanRunCmd(s *session) *cobra.Command {
	var rawInput string

	cmd := &cobra.Command{
		Use:   "can-run <name> [--input=<json>] [--<field>=<value>...]",
		Short: "Check whether the ability may run with the given input",
		Long: `Check the ability's permission for the given input.

Exits 0 when the ability may run and 1 otherwise, without printing anything.
A failing permission check also exits 1; run with --debug to see why.
An unknown ability is an error.` + inputUsage,
		Example: `  if ability can-run core/get-site-info; then
    ability run core/get-site-info
  fi`,
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

			allowed, err := reg.CheckPermission(cmd.Context(), a, payload)
			if err != nil {
				logging.Debug("CanRun", "Permission check for %q failed: %v", name, err)
				return cli.NewExitStatusError(ExitCodeError)
			}
			if !allowed {
				return cli.NewExitStatusError(ExitCodeError)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rawInput, input.FlagInput, "", "Input as a JSON object")

	return cmd
}
