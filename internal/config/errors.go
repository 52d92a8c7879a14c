package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnsupportedFormat indicates an unrecognized file extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrDuplicateField indicates two fields share a name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrInvalidField indicates a field definition that is neither a
	// template mask nor the grouping variant.
	ErrInvalidField = errors.New("invalid field definition")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
