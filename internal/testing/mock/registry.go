package mock

import (
	"context"
	"sync"

	"ability/internal/ability"
	"ability/internal/registry"
)

// Call records one host operation made against a Registry.
type Call struct {
	Op    string
	Name  string
	Input any
}

// Registry is a scriptable registry.Registry.
type Registry struct {
	Abilities  []*ability.Ability
	Categories []*ability.Category

	ExecuteFunc    func(ctx context.Context, a *ability.Ability, input map[string]any) (any, error)
	PermissionFunc func(ctx context.Context, a *ability.Ability, input map[string]any) (bool, error)
	ValidateFunc   func(a *ability.Ability, input any) error
	NormalizeFunc  func(a *ability.Ability, input map[string]any) any

	mu    sync.Mutex
	calls []Call
}

var _ registry.Registry = (*Registry)(nil)

// Calls returns the recorded host operations in call order.
func (r *Registry) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

func (r *Registry) record(op, name string, input any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Op: op, Name: name, Input: input})
}

func (r *Registry) ListAbilities() []*ability.Ability {
	return r.Abilities
}

func (r *Registry) GetAbility(name string) (*ability.Ability, bool) {
	for _, a := range r.Abilities {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

func (r *Registry) AbilityExists(name string) bool {
	_, ok := r.GetAbility(name)
	return ok
}

func (r *Registry) ExecuteAbility(ctx context.Context, a *ability.Ability, input map[string]any) (any, error) {
	r.record(registry.OpExecute, a.Name, input)
	if r.ExecuteFunc != nil {
		return r.ExecuteFunc(ctx, a, input)
	}
	return nil, nil
}

func (r *Registry) CheckPermission(ctx context.Context, a *ability.Ability, input map[string]any) (bool, error) {
	r.record(registry.OpPermission, a.Name, input)
	if r.PermissionFunc != nil {
		return r.PermissionFunc(ctx, a, input)
	}
	return true, nil
}

func (r *Registry) ValidateInput(a *ability.Ability, input any) error {
	r.record(registry.OpValidate, a.Name, input)
	if r.ValidateFunc != nil {
		return r.ValidateFunc(a, input)
	}
	return nil
}

func (r *Registry) NormalizeInput(a *ability.Ability, input map[string]any) any {
	r.record(registry.OpNormalize, a.Name, input)
	if r.NormalizeFunc != nil {
		return r.NormalizeFunc(a, input)
	}
	if input == nil {
		return nil
	}
	return input
}

func (r *Registry) ListCategories() []*ability.Category {
	return r.Categories
}

func (r *Registry) GetCategory(slug string) (*ability.Category, bool) {
	for _, c := range r.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return nil, false
}

func (r *Registry) CategoryExists(slug string) bool {
	_, ok := r.GetCategory(slug)
	return ok
}

// Opener returns a registry.Opener that always yields r.
func (r *Registry) Opener() registry.Opener {
	return func(context.Context) (registry.Registry, error) {
		return r, nil
	}
}
