package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidColorFormat matches any InvalidColorFormatError via errors.Is.
	ErrInvalidColorFormat = stdErrors.New("invalid color format")
	// ErrUnrecognizedOption matches any UnrecognizedOptionError via errors.Is.
	ErrUnrecognizedOption = stdErrors.New("unrecognized option")
)

// ParseError represents a configuration file decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidColorFormatError reports a color that is not a 6-digit hex string.
type InvalidColorFormatError struct {
	Value string
	Err   error
}

// NewInvalidColorFormatError constructs an InvalidColorFormatError.
func NewInvalidColorFormatError(value string, err error) error {
	return &InvalidColorFormatError{Value: value, Err: err}
}

func (e *InvalidColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid color format %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid color format %q: expected 6 hex digits with optional leading '#'", e.Value)
}

// Is lets errors.Is match against ErrInvalidColorFormat.
func (e *InvalidColorFormatError) Is(target error) bool {
	return target == ErrInvalidColorFormat
}

// Unwrap exposes the underlying error.
func (e *InvalidColorFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnrecognizedOptionError reports an enumerated tag outside its closed set.
type UnrecognizedOptionError struct {
	Option  string
	Value   string
	Allowed []string
}

// NewUnrecognizedOptionError constructs an UnrecognizedOptionError for the named option.
func NewUnrecognizedOptionError(option, value string, allowed []string) error {
	return &UnrecognizedOptionError{Option: option, Value: value, Allowed: allowed}
}

func (e *UnrecognizedOptionError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("unrecognized %s %q", e.Option, e.Value)
	}
	return fmt.Sprintf("unrecognized %s %q (allowed: %s)", e.Option, e.Value, strings.Join(e.Allowed, ", "))
}

// Is lets errors.Is match against ErrUnrecognizedOption.
func (e *UnrecognizedOptionError) Is(target error) bool {
	return target == ErrUnrecognizedOption
}
