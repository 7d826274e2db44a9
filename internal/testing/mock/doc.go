// Package mock provides a scriptable registry.Registry for command tests.
//
// Registry serves a fixed list of abilities and categories and delegates the
// host operations (execute, permission, validate, normalize) to optional
// function fields. Unset hooks fall back to permissive defaults: execution
// returns nil, permission is granted, validation passes and normalization
// returns the input unchanged. Every host call is recorded in Calls.
//
// Example:
//
//	reg := &mock.Registry{
//	    Abilities: []*ability.Ability{{Name: "test/greet", Label: "Greet"}},
//	    ExecuteFunc: func(ctx context.Context, a *ability.Ability, input map[string]any) (any, error) {
//	        return map[string]any{"greeting": "hello"}, nil
//	    },
//	}
package mock
