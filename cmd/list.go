package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	"ability/internal/ability"
	"ability/internal/cli"
)

type listOptions struct {
	output     cli.OutputFlags
	category   string
	namespace  string
	showInREST string
}

// newListCmd creates the command listing registered abilities.
func newListCmd(s *session) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered abilities",
		Long: `List the abilities registered with the host, in registration order.

Filters combine: an ability is listed only if it matches every filter given.

Default fields: name, label, category, description.
Optional fields: readonly, destructive, idempotent, show_in_rest.`,
		Example: `  ability list
  ability list --category=site --format=json
  ability list --namespace=core --show-in-rest=true --field=name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, s, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only list abilities in this category")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "Only list abilities in this namespace (the name part before \"/\")")
	cmd.Flags().StringVar(&opts.showInREST, "show-in-rest", "", "Only list abilities whose REST exposure matches this boolean")
	_ = cmd.RegisterFlagCompletionFunc("category", s.completeCategorySlugs)
	cli.RegisterOutputFlags(cmd, &opts.output, cli.OutputFormatTable, cli.ListFormats)

	return cmd
}

func runList(cmd *cobra.Command, s *session, opts *listOptions) error {
	reg, err := s.registry(cmd)
	if err != nil {
		return err
	}

	formatOpts, err := opts.output.ToFormatterOptions(cli.ListFormats)
	if err != nil {
		return err
	}

	abilities := opts.filter(cmd).Apply(reg.ListAbilities())

	requested := opts.output.Requested()
	records := make([]*cli.Record, 0, len(abilities))
	for _, a := range abilities {
		records = append(records, ability.ListRecord(a, requested))
	}

	formatOpts.Defaults = ability.DefaultFields
	formatOpts.Available = slices.Concat(ability.DefaultFields, ability.OptionalFields)
	formatOpts.IDField = ability.FieldName
	formatOpts.Truncate = []string{ability.FieldDescription}

	return cli.NewFormatter(cmd.OutOrStdout(), formatOpts).DisplayItems(records)
}

// filter builds the list filter from the flags given on the command line.
// A flag that was not given does not filter, even when its value is empty.
func (o *listOptions) filter(cmd *cobra.Command) ability.Filter {
	var f ability.Filter
	if cmd.Flags().Changed("category") {
		f.Category = &o.category
	}
	if cmd.Flags().Changed("namespace") {
		f.Namespace = &o.namespace
	}
	if cmd.Flags().Changed("show-in-rest") {
		f.ShowInREST = &o.showInREST
	}
	return f
}
