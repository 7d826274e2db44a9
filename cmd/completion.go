package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"ability/internal/registry"
)

// completeAbilityNames completes the <name> argument of ability commands.
// Completion stays quiet when the registry cannot be opened.
func (s *session) completeAbilityNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := s.open(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, a := range reg.ListAbilities() {
		if strings.HasPrefix(a.Name, toComplete) {
			names = append(names, a.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeCategorySlugs completes category slugs, both as the <slug>
// argument and as the value of --category.
func (s *session) completeCategorySlugs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := s.open(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return categorySlugs(reg, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func categorySlugs(reg registry.Registry, prefix string) []string {
	var slugs []string
	for _, c := range reg.ListCategories() {
		if strings.HasPrefix(c.Slug, prefix) {
			slugs = append(slugs, c.Slug)
		}
	}
	return slugs
}
