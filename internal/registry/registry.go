package registry

import (
	"context"

	"ability/internal/ability"
)

// Registry is the host-owned view of registered abilities and categories.
//
// Listing operations return entries in the host's enumeration order; callers
// must not re-sort them. The Get operations report absence with a false second
// return value rather than an error.
//
// An input value of nil means no input was supplied, which is different from
// an empty map.
type Registry interface {
	// ListAbilities returns every registered ability.
	ListAbilities() []*ability.Ability

	// GetAbility looks up an ability by its "namespace/slug" name.
	GetAbility(name string) (*ability.Ability, bool)

	// AbilityExists reports whether name is registered.
	AbilityExists(name string) bool

	// ExecuteAbility runs a with input and returns its result value.
	ExecuteAbility(ctx context.Context, a *ability.Ability, input map[string]any) (any, error)

	// CheckPermission reports whether the current caller may run a with input.
	CheckPermission(ctx context.Context, a *ability.Ability, input map[string]any) (bool, error)

	// ValidateInput checks input against a's input schema. The input should
	// already be normalized.
	ValidateInput(a *ability.Ability, input any) error

	// NormalizeInput applies schema defaults to input.
	NormalizeInput(a *ability.Ability, input map[string]any) any

	// ListCategories returns every registered category.
	ListCategories() []*ability.Category

	// GetCategory looks up a category by slug.
	GetCategory(slug string) (*ability.Category, bool)

	// CategoryExists reports whether slug is registered.
	CategoryExists(slug string) bool
}

// Opener constructs the Registry for one command invocation. Commands call it
// after their flags are parsed, so configuration flags are already applied.
type Opener func(ctx context.Context) (Registry, error)

// LookupAbility resolves name through r, turning absence into a NotFoundError.
func LookupAbility(r Registry, name string) (*ability.Ability, error) {
	a, ok := r.GetAbility(name)
	if !ok || a == nil {
		return nil, NewAbilityNotFoundError(name)
	}
	return a, nil
}

// LookupCategory resolves slug through r, turning absence into a NotFoundError.
func LookupCategory(r Registry, slug string) (*ability.Category, error) {
	c, ok := r.GetCategory(slug)
	if !ok || c == nil {
		return nil, NewCategoryNotFoundError(slug)
	}
	return c, nil
}
