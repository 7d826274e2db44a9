package ability

import (
	"strings"
)

// Ability is a host-registered unit of functionality.
type Ability struct {
	// Name is the "namespace/slug" identifier.
	Name        string `json:"name" yaml:"name"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	// Category is the slug of the owning category; empty when none is declared.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	// InputSchema and OutputSchema are opaque JSON-schema values; nil when undeclared.
	InputSchema  any  `json:"input_schema,omitempty" yaml:"input_schema,omitempty"`
	OutputSchema any  `json:"output_schema,omitempty" yaml:"output_schema,omitempty"`
	Meta         Meta `json:"meta" yaml:"meta"`
}

// Namespace returns the part of the name before the first "/". A name without
// a separator has an empty namespace.
func (a *Ability) Namespace() string {
	ns, _, found := strings.Cut(a.Name, "/")
	if !found {
		return ""
	}
	return ns
}

// Annotations returns the execution hints declared under meta["annotations"].
func (a *Ability) Annotations() Annotations {
	annotations, ok := a.Meta.Map(MetaKeyAnnotations)
	if !ok {
		return Annotations{}
	}
	return Annotations{
		ReadOnly:    boolFromMap(annotations, AnnotationReadOnly),
		Destructive: boolFromMap(annotations, AnnotationDestructive),
		Idempotent:  boolFromMap(annotations, AnnotationIdempotent),
	}
}

// ShowInREST reports meta["show_in_rest"], defaulting to false when the key is
// absent or not a boolean.
func (a *Ability) ShowInREST() bool {
	if v := a.Meta.Bool(MetaKeyShowInREST); v != nil {
		return *v
	}
	return false
}

// Category groups abilities. It is identified by its slug.
type Category struct {
	Slug        string `json:"slug" yaml:"slug"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Meta        Meta   `json:"meta" yaml:"meta"`
}

// Well-known meta keys.
const (
	MetaKeyAnnotations = "annotations"
	MetaKeyShowInREST  = "show_in_rest"
)

// Annotation keys inside meta["annotations"].
const (
	AnnotationReadOnly    = "readonly"
	AnnotationDestructive = "destructive"
	AnnotationIdempotent  = "idempotent"
)

// Annotations describes an ability's execution semantics. A nil field means
// the host did not declare the hint; it is never treated as false.
type Annotations struct {
	ReadOnly    *bool
	Destructive *bool
	Idempotent  *bool
}

func boolFromMap(m map[string]any, key string) *bool {
	b, ok := m[key].(bool)
	if !ok {
		return nil
	}
	return &b
}
