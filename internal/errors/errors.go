// Package errors provides a lightweight structured error type (DocCheckError)
// for category-based classification in the check pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a DocCheck error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Content enumeration and prelude loading errors. Both are fatal to the
	// run: no partial report is emitted when these occur.
	CategoryScan        ErrorCategory = "scan"
	CategoryBoilerplate ErrorCategory = "boilerplate"

	// External compiler integration errors
	CategoryCompiler ErrorCategory = "compiler"

	// Harness-level errors: the tool itself is broken, not the documentation.
	CategoryInfrastructure ErrorCategory = "infrastructure"

	// Runtime errors (watch mode, history store, publishing)
	CategoryGit      ErrorCategory = "git"
	CategoryWatch    ErrorCategory = "watch"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// DocCheckError is a structured error with category, severity, and context
type DocCheckError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocCheckError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocCheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocCheckError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocCheckError) WithContext(key string, value any) *DocCheckError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// IsFatal reports whether the error should abort the run outright.
func (e *DocCheckError) IsFatal() bool {
	return e.Severity == SeverityFatal
}

// New creates a new DocCheckError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocCheckError {
	return &DocCheckError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DocCheckError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocCheckError {
	return &DocCheckError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}
