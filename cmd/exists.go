package cmd

import (
	"github.com/spf13/cobra"

	"ability/internal/cli"
)

// newExistsCmd creates the command reporting whether an ability is registered.
func newExistsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <name>",
		Short: "Check whether an ability is registered",
		Long: `Check whether an ability is registered. Exits 0 when it is and 1 when it
is not, without printing anything.`,
		Example: `  ability exists core/get-site-info && echo registered`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: s.completeAbilityNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.registry(cmd)
			if err != nil {
				return err
			}
			if !reg.AbilityExists(args[0]) {
				return cli.NewExitStatusError(ExitCodeError)
			}
			return nil
		},
	}
}
