package annotate

import (
	"errors"
	"fmt"
)

// TypingError is the single error kind for every resolution failure:
// unresolvable descriptors, malformed metadata wrappers, unsupported
// unions, and contract violations by registered strategies. Failures are
// raised synchronously at the point of resolution and never downgraded to
// a default type.
type TypingError struct {
	// Message is the human-readable explanation of the failure.
	Message string

	// Descriptor is the textual form of the annotation being resolved,
	// if known.
	Descriptor string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *TypingError) Error() string {
	msg := "typing error: " + e.Message
	if e.Descriptor != "" {
		msg += fmt.Sprintf(" (annotation: %s)", e.Descriptor)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection.
func (e *TypingError) Unwrap() error {
	return e.Err
}

// NewTypingError creates a TypingError for the given descriptor. A nil
// descriptor is allowed for failures not tied to a specific annotation.
func NewTypingError(message string, desc TypeDescriptor) *TypingError {
	e := &TypingError{Message: message}
	if desc != nil {
		e.Descriptor = desc.String()
	}
	return e
}

// WrapTypingError creates a TypingError wrapping an underlying error.
func WrapTypingError(message string, desc TypeDescriptor, err error) *TypingError {
	e := NewTypingError(message, desc)
	e.Err = err
	return e
}

// IsTypingError reports whether err is, or wraps, a TypingError.
func IsTypingError(err error) bool {
	var e *TypingError
	return errors.As(err, &e)
}
