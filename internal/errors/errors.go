// Package errors provides a lightweight structured error type (ObjdocError)
// used to classify failures of a generation run for logging and CLI output.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of an objdoc error for classification
type ErrorCategory string

const (
	// Input documents
	CategoryParse  ErrorCategory = "parse"
	CategorySchema ErrorCategory = "schema"

	// Template and output
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Invocation and runtime
	CategoryConfig   ErrorCategory = "config"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// ObjdocError is a structured error with category, severity and context
type ObjdocError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ObjdocError
type ContextFields map[string]any

// Error implements the error interface
func (e *ObjdocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ObjdocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ObjdocError) WithContext(key string, value any) *ObjdocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ObjdocError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ObjdocError {
	return &ObjdocError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ObjdocError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ObjdocError {
	return &ObjdocError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first ObjdocError in err's chain.
func As(err error) (*ObjdocError, bool) {
	var oe *ObjdocError
	if stderrors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}

// IsCategory checks if an error (or anything it wraps) belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if oe, ok := As(err); ok {
		return oe.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not an ObjdocError
func GetCategory(err error) ErrorCategory {
	if oe, ok := As(err); ok {
		return oe.Category
	}
	return CategoryInternal
}
