package config

import (
	"fmt"
	"path/filepath"
)

// Error types reported in ConfigurationError.
const (
	ErrorTypeIO         = "io"
	ErrorTypeParse      = "parse"
	ErrorTypeValidation = "validation"
)

// ConfigurationError represents a structured error that occurs during configuration loading
type ConfigurationError struct {
	FilePath  string // Full path to the file that caused the error
	ErrorType string // Type of error (io, parse, validation)
	Message   string // Human-readable error message
}

// Error implements the error interface
func (ce *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration in %s (%s): %s", filepath.Base(ce.FilePath), ce.ErrorType, ce.Message)
}
