package host

import (
	"context"
	"fmt"
	"slices"
	"text/template"

	"ability/internal/ability"
	"ability/internal/registry"
	"ability/pkg/logging"
	pkgstrings "ability/pkg/strings"
)

// Host is an in-process, file-backed registry of abilities and categories.
// It is populated once, by Load or the Add methods, and read-only afterwards.
type Host struct {
	version   string
	validator *definitionValidator

	abilities  []*ability.Ability
	entries    map[string]*entry
	categories []*ability.Category
	bySlug     map[string]*ability.Category
}

// entry holds what the host needs to run one ability.
type entry struct {
	ability      *ability.Ability
	inputSchema  *schema
	outputSchema *schema
	permission   *template.Template
	executor     executor
}

var _ registry.Registry = (*Host)(nil)

// New creates an empty host reporting version.
func New(version string) *Host {
	return &Host{
		version:   version,
		validator: newDefinitionValidator(),
		entries:   make(map[string]*entry),
		bySlug:    make(map[string]*ability.Category),
	}
}

// Version returns the version the host reports.
func (h *Host) Version() string {
	return h.version
}

// CheckVersion verifies the host is new enough to provide abilities.
func (h *Host) CheckVersion() error {
	return CheckVersion(h.version)
}

// AddCategory validates and registers a category.
func (h *Host) AddCategory(def CategoryDefinition) error {
	if err := h.validator.Struct(def); err != nil {
		return err
	}
	if _, exists := h.bySlug[def.Slug]; exists {
		return fmt.Errorf("category %q is already registered", def.Slug)
	}

	c := def.toCategory()
	h.categories = append(h.categories, c)
	h.bySlug[c.Slug] = c
	return nil
}

// AddAbility validates and registers an ability. dir is the working directory
// for command executors.
func (h *Host) AddAbility(def AbilityDefinition, dir string) error {
	if err := h.validator.Struct(def); err != nil {
		return err
	}
	if _, exists := h.entries[def.Name]; exists {
		return fmt.Errorf("ability %q is already registered", def.Name)
	}
	if def.Category != "" {
		if _, ok := h.bySlug[def.Category]; !ok {
			return fmt.Errorf("ability %q references unknown category %q", def.Name, def.Category)
		}
	}

	inputSchema, err := compileSchema(def.Name+"/input", def.InputSchema)
	if err != nil {
		return fmt.Errorf("input_schema: %w", err)
	}
	outputSchema, err := compileSchema(def.Name+"/output", def.OutputSchema)
	if err != nil {
		return fmt.Errorf("output_schema: %w", err)
	}

	e := &entry{
		ability:      def.toAbility(),
		inputSchema:  inputSchema,
		outputSchema: outputSchema,
	}

	if def.Permission != "" {
		e.permission, err = parseTemplate(def.Name+"#permission", def.Permission)
		if err != nil {
			return fmt.Errorf("permission: %w", err)
		}
	}

	if def.Execute.Template != "" {
		tmpl, err := parseTemplate(def.Name+"#execute", def.Execute.Template)
		if err != nil {
			return fmt.Errorf("execute.template: %w", err)
		}
		e.executor = &templateExecutor{tmpl: tmpl}
	} else {
		e.executor = &commandExecutor{
			argv:    def.Execute.Command,
			dir:     dir,
			timeout: def.Execute.TimeoutDuration(),
		}
	}

	h.abilities = append(h.abilities, e.ability)
	h.entries[def.Name] = e
	return nil
}

// ListAbilities returns the abilities in registration order.
func (h *Host) ListAbilities() []*ability.Ability {
	return slices.Clone(h.abilities)
}

// GetAbility looks up an ability by name.
func (h *Host) GetAbility(name string) (*ability.Ability, bool) {
	e, ok := h.entries[name]
	if !ok {
		return nil, false
	}
	return e.ability, true
}

// AbilityExists reports whether name is registered.
func (h *Host) AbilityExists(name string) bool {
	_, ok := h.entries[name]
	return ok
}

// ListCategories returns the categories in registration order.
func (h *Host) ListCategories() []*ability.Category {
	return slices.Clone(h.categories)
}

// GetCategory looks up a category by slug.
func (h *Host) GetCategory(slug string) (*ability.Category, bool) {
	c, ok := h.bySlug[slug]
	return c, ok
}

// CategoryExists reports whether slug is registered.
func (h *Host) CategoryExists(slug string) bool {
	_, ok := h.bySlug[slug]
	return ok
}

// NormalizeInput applies the input schema's defaults. Absent input takes the
// schema-level default when one is declared. A nil result means no input.
func (h *Host) NormalizeInput(a *ability.Ability, input map[string]any) any {
	e, ok := h.entries[a.Name]
	if !ok || e.inputSchema == nil {
		if input == nil {
			return nil
		}
		return input
	}

	if input == nil {
		if def, ok := e.inputSchema.defaultValue(); ok {
			return def
		}
		return nil
	}
	return e.inputSchema.normalize(input)
}

// ValidateInput checks normalized input against the input schema. An ability
// without a schema accepts only absent input.
func (h *Host) ValidateInput(a *ability.Ability, input any) error {
	e, err := h.entry(a)
	if err != nil {
		return err
	}

	if e.inputSchema == nil {
		if input == nil {
			return nil
		}
		return registry.NewHostError(registry.OpValidate, a.Name, "Ability %q does not accept input.", a.Name)
	}

	if err := e.inputSchema.validate(input); err != nil {
		return &registry.HostError{
			Op:     registry.OpValidate,
			Name:   a.Name,
			Reason: fmt.Sprintf("Ability %q has invalid input. Reason: %v", a.Name, err),
			Err:    err,
		}
	}
	return nil
}

// CheckPermission normalizes and validates input, then evaluates the
// ability's permission template. An ability without one is always permitted.
func (h *Host) CheckPermission(_ context.Context, a *ability.Ability, input map[string]any) (bool, error) {
	e, err := h.entry(a)
	if err != nil {
		return false, err
	}

	normalized := h.NormalizeInput(a, input)
	if err := h.ValidateInput(a, normalized); err != nil {
		return false, err
	}
	return h.permitted(e, normalized)
}

// ExecuteAbility runs a. An empty input map counts as no input for abilities
// without an input schema. The result is checked against the output schema
// when one is declared.
func (h *Host) ExecuteAbility(ctx context.Context, a *ability.Ability, input map[string]any) (any, error) {
	e, err := h.entry(a)
	if err != nil {
		return nil, err
	}
	if e.inputSchema == nil && len(input) == 0 {
		input = nil
	}

	normalized := h.NormalizeInput(a, input)
	if err := h.ValidateInput(a, normalized); err != nil {
		return nil, err
	}

	allowed, err := h.permitted(e, normalized)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, registry.NewHostError(registry.OpPermission, a.Name, "Ability %q does not have necessary permission.", a.Name)
	}

	logging.Debug("Host", "Executing %s", a.Name)
	result, err := e.executor.Execute(ctx, e.ability, normalized)
	if err != nil {
		return nil, err
	}

	if e.outputSchema != nil {
		if err := e.outputSchema.validate(result); err != nil {
			return nil, &registry.HostError{
				Op:     registry.OpExecute,
				Name:   a.Name,
				Reason: fmt.Sprintf("Ability %q has invalid output. Reason: %v", a.Name, err),
				Err:    err,
			}
		}
	}
	return result, nil
}

func (h *Host) entry(a *ability.Ability) (*entry, error) {
	if a == nil {
		return nil, registry.NewAbilityNotFoundError("")
	}
	e, ok := h.entries[a.Name]
	if !ok {
		return nil, registry.NewAbilityNotFoundError(a.Name)
	}
	return e, nil
}

func (h *Host) permitted(e *entry, input any) (bool, error) {
	if e.permission == nil {
		return true, nil
	}

	name := e.ability.Name
	out, err := renderTemplate(e.permission, e.ability, input)
	if err != nil {
		return false, &registry.HostError{
			Op:     registry.OpPermission,
			Name:   name,
			Reason: fmt.Sprintf("Ability %q permission check failed: %v", name, err),
			Err:    err,
		}
	}

	allowed, err := pkgstrings.ParseBool(out)
	if err != nil {
		return false, registry.NewHostError(registry.OpPermission, name, "Ability %q permission check returned %q, expected a boolean.", name, out)
	}
	return allowed, nil
}
