package registry

import (
	"errors"
	"fmt"
)

// Resource types used in NotFoundError.
const (
	ResourceAbility  = "Ability"
	ResourceCategory = "Category"
)

// NotFoundError reports an ability name or category slug that the host does
// not know about.
type NotFoundError struct {
	// ResourceType is ResourceAbility or ResourceCategory.
	ResourceType string

	// ResourceName is the name or slug that was looked up.
	ResourceName string

	// Message replaces the default message when set.
	Message string
}

// Error returns the custom message if set, otherwise a message of the form
// `Ability "name" not found.`.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %q not found.", e.ResourceType, e.ResourceName)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
//
// Example:
//
//	a, err := registry.LookupAbility(reg, name)
//	if registry.IsNotFound(err) {
//	    return cli.ExitStatusError{Code: 1}
//	}
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NewAbilityNotFoundError creates a NotFoundError for an ability name.
func NewAbilityNotFoundError(name string) *NotFoundError {
	return &NotFoundError{ResourceType: ResourceAbility, ResourceName: name}
}

// NewCategoryNotFoundError creates a NotFoundError for a category slug.
func NewCategoryNotFoundError(slug string) *NotFoundError {
	return &NotFoundError{ResourceType: ResourceCategory, ResourceName: slug}
}

// Host operations named in HostError.
const (
	OpExecute    = "execute"
	OpValidate   = "validate"
	OpPermission = "permission"
	OpNormalize  = "normalize"
)

// HostError is a failure reported by the host while executing, validating or
// checking permission for an ability. Its message is shown to the user
// verbatim.
type HostError struct {
	// Op is the failing operation, one of the Op constants.
	Op string

	// Name is the ability name.
	Name string

	// Reason is the host's message.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *HostError) Error() string {
	return e.Reason
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// IsHostError reports whether err is or wraps a HostError.
func IsHostError(err error) bool {
	var hostErr *HostError
	return errors.As(err, &hostErr)
}

// NewHostError creates a HostError with a formatted reason.
func NewHostError(op, name, format string, args ...any) *HostError {
	return &HostError{Op: op, Name: name, Reason: fmt.Sprintf(format, args...)}
}
