// Package errors provides structured error types for the depdag tool.
//
// The core graph package reports failures with plain sentinel errors. This
// package sits above it and gives manifests, queries and the CLI:
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Missing files or vertices
//   - CYCLE_DETECTED, DUPLICATE_VERTEX: Graph contract violations
//   - UNKNOWN_OPERATION: A query named an operation that does not exist
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidManifest, "vertex %d has no name", i)
//	if errors.Is(err, errors.ErrCodeInvalidManifest) {
//	    // Handle validation error
//	}
//
//	// Map errors coming out of the graph engine
//	if err := v.DependsOn(names...); err != nil {
//	    return errors.FromGraphError(err, "declaring %s", v.Name())
//	}
package errors

import (
	"errors"
	"fmt"

	"github.com/matzehuels/depdag/pkg/depdag"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidName     Code = "INVALID_NAME"

	// Resource not found errors
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeVertexNotFound Code = "VERTEX_NOT_FOUND"

	// Graph contract errors
	ErrCodeCycleDetected   Code = "CYCLE_DETECTED"
	ErrCodeDuplicateVertex Code = "DUPLICATE_VERTEX"

	// Query errors
	ErrCodeUnknownOperation Code = "UNKNOWN_OPERATION"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// FromGraphError wraps an error returned by the depdag package with the code
// matching its sentinel: CYCLE_DETECTED, DUPLICATE_VERTEX, or INTERNAL_ERROR
// for anything else. A nil err yields nil.
func FromGraphError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	code := ErrCodeInternal
	switch {
	case errors.Is(err, depdag.ErrCycleDetected):
		code = ErrCodeCycleDetected
	case errors.Is(err, depdag.ErrDuplicateVertex):
		code = ErrCodeDuplicateVertex
	}
	return Wrap(code, err, format, args...)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and its causes without code
// prefixes. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}
