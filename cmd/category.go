package cmd

import (
	"github.com/spf13/cobra"

	"ability/internal/ability"
	"ability/internal/cli"
	"ability/internal/registry"
)

// newCategoryCmd creates the category command group.
func newCategoryCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Inspect ability categories",
		Long:  `List and inspect the categories abilities are grouped into.`,
	}

	cmd.AddCommand(newCategoryListCmd(s))
	cmd.AddCommand(newCategoryGetCmd(s))
	cmd.AddCommand(newCategoryExistsCmd(s))

	return cmd
}

func newCategoryListCmd(s *session) *cobra.Command {
	output := &cli.OutputFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered categories",
		Long: `List the categories registered with the host, in registration order.

Default fields: slug, label, description.
Optional fields: meta.`,
		Example: `  ability category list
  ability category list --format=count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.registry(cmd)
			if err != nil {
				return err
			}

			formatOpts, err := output.ToFormatterOptions(cli.CategoryListFormats)
			if err != nil {
				return err
			}

			categories := reg.ListCategories()
			records := make([]*cli.Record, 0, len(categories))
			for _, c := range categories {
				records = append(records, ability.CategoryRecord(c))
			}

			formatOpts.Defaults = ability.CategoryListFields
			formatOpts.Available = ability.CategoryFields
			formatOpts.IDField = ability.FieldSlug
			formatOpts.Truncate = []string{ability.FieldDescription, ability.FieldMeta}
			return cli.NewFormatter(cmd.OutOrStdout(), formatOpts).DisplayItems(records)
		},
	}

	cli.RegisterOutputFlags(cmd, output, cli.OutputFormatTable, cli.CategoryListFormats)

	return cmd
}

func newCategoryGetCmd(s *session) *cobra.Command {
	output := &cli.OutputFlags{}

	cmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show details of a category",
		Long: `Show every field of a registered category. The meta field is rendered as
JSON, and as {} when the category has no meta.`,
		Example: `  ability category get site
  ability category get site --field=meta`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: s.completeCategorySlugs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.registry(cmd)
			if err != nil {
				return err
			}

			formatOpts, err := output.ToFormatterOptions(cli.GetFormats)
			if err != nil {
				return err
			}

			c, err := registry.LookupCategory(reg, args[0])
			if err != nil {
				return err
			}

			formatOpts.Defaults = ability.CategoryFields
			formatOpts.Available = ability.CategoryFields
			return cli.NewFormatter(cmd.OutOrStdout(), formatOpts).DisplayItem(ability.CategoryRecord(c))
		},
	}

	cli.RegisterOutputFlags(cmd, output, cli.OutputFormatTable, cli.GetFormats)

	return cmd
}

func newCategoryExistsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <slug>",
		Short: "Check whether a category is registered",
		Long: `Check whether a category is registered. Exits 0 when it is and 1 when it
is not, without printing anything.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: s.completeCategorySlugs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.registry(cmd)
			if err != nil {
				return err
			}
			if !reg.CategoryExists(args[0]) {
				return cli.NewExitStatusError(ExitCodeError)
			}
			return nil
		},
	}
}
