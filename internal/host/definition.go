package host

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"ability/internal/ability"
	"ability/internal/config"
)

// DefaultTimeout bounds an ability execution when its definition sets none.
const DefaultTimeout = 30 * time.Second

var (
	abilityNamePattern  = regexp.MustCompile(`^[a-z0-9-]+/[a-z0-9-]+$`)
	categorySlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// AbilityDefinition is the on-disk form of an ability.
type AbilityDefinition struct {
	Name         string            `yaml:"name" json:"name" validate:"required,ability_name"`
	Label        string            `yaml:"label" json:"label" validate:"required"`
	Description  string            `yaml:"description" json:"description" validate:"required"`
	Category     string            `yaml:"category,omitempty" json:"category,omitempty" validate:"omitempty,category_slug"`
	InputSchema  any               `yaml:"input_schema,omitempty" json:"input_schema,omitempty"`
	OutputSchema any               `yaml:"output_schema,omitempty" json:"output_schema,omitempty"`
	Meta         ability.Meta      `yaml:"meta,omitempty" json:"meta,omitempty"`
	Permission   string            `yaml:"permission,omitempty" json:"permission,omitempty"`
	Execute      ExecuteDefinition `yaml:"execute" json:"execute"`
}

// ExecuteDefinition selects how an ability runs. Exactly one of Template and
// Command is set.
type ExecuteDefinition struct {
	// Template is a text/template rendered with .input and .ability.
	Template string `yaml:"template,omitempty" json:"template,omitempty" validate:"required_without=Command,excluded_with=Command"`
	// Command is an argv receiving the input as JSON on stdin. It needs at
	// least the program and no empty elements.
	Command []string `yaml:"command,omitempty" json:"command,omitempty" validate:"required_without=Template,excluded_with=Template,omitempty,min=1,dive,required"`
	// Timeout is a Go duration string; empty means DefaultTimeout.
	Timeout string `yaml:"timeout,omitempty" json:"timeout,omitempty" validate:"omitempty,duration"`
}

// TimeoutDuration returns the parsed timeout, or DefaultTimeout when unset.
func (d ExecuteDefinition) TimeoutDuration() time.Duration {
	if d.Timeout == "" {
		return DefaultTimeout
	}
	timeout, err := time.ParseDuration(d.Timeout)
	if err != nil || timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}

// CategoryDefinition is the on-disk form of a category.
type CategoryDefinition struct {
	Slug        string       `yaml:"slug" json:"slug" validate:"required,category_slug"`
	Label       string       `yaml:"label" json:"label" validate:"required"`
	Description string       `yaml:"description" json:"description" validate:"required"`
	Meta        ability.Meta `yaml:"meta,omitempty" json:"meta,omitempty"`
}

func (d *AbilityDefinition) toAbility() *ability.Ability {
	return &ability.Ability{
		Name:         d.Name,
		Label:        d.Label,
		Description:  d.Description,
		Category:     d.Category,
		InputSchema:  d.InputSchema,
		OutputSchema: d.OutputSchema,
		Meta:         d.Meta,
	}
}

func (d *CategoryDefinition) toCategory() *ability.Category {
	return &ability.Category{
		Slug:        d.Slug,
		Label:       d.Label,
		Description: d.Description,
		Meta:        d.Meta,
	}
}

// definitionValidator checks definitions and reports failures by their
// on-disk field names.
type definitionValidator struct {
	validate *validator.Validate
}

func newDefinitionValidator() *definitionValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("ability_name", func(fl validator.FieldLevel) bool {
		return abilityNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("category_slug", func(fl validator.FieldLevel) bool {
		return categorySlugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d > 0
	})
	return &definitionValidator{validate: v}
}

// Struct validates def, returning config.ValidationErrors on failure.
func (dv *definitionValidator) Struct(def any) error {
	err := dv.validate.Struct(def)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var errs config.ValidationErrors
	for _, fe := range fieldErrs {
		errs.Add(fieldPath(fe), validationMessage(fe), fe.Value())
	}
	return errs
}

// fieldPath drops the struct name from the namespace: "execute.template".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return fmt.Sprintf("is required when %s is not set", strings.ToLower(fe.Param()))
	case "excluded_with":
		return fmt.Sprintf("cannot be combined with %s", strings.ToLower(fe.Param()))
	case "ability_name":
		return "must be namespace/slug using lowercase letters, digits and dashes"
	case "category_slug":
		return "must use lowercase letters, digits and single dashes"
	case "duration":
		return "must be a positive duration such as 30s"
	default:
		return fmt.Sprintf("failed the %s check", fe.Tag())
	}
}
