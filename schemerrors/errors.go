// Package schemerrors provides structured error types for schemock.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InvalidReferenceError: structurally malformed $ref strings
//   - ParseError: YAML/JSON parsing failures while loading a registry
//
// Only malformed references are fatal during resolution; every other anomaly
// (unresolved references, exceeded nesting depth, untyped schemas) degrades
// to an in-band sentinel node rather than an error.
//
// # Usage with errors.Is
//
//	resolved, err := r.Resolve(schema, resolver.DirectionRequest)
//	if err != nil {
//	    var refErr *schemerrors.InvalidReferenceError
//	    if errors.As(err, &refErr) {
//	        fmt.Printf("bad reference: %s\n", refErr.Ref)
//	    }
//	}
package schemerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidReference indicates a structurally malformed $ref string.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")
)

// InvalidReferenceError represents a $ref string that is too short to address
// a components registry entry. A well-formed local reference such as
// "#/components/schemas/Pet" yields at least 4 path segments; anything shorter
// cannot be resolved and aborts resolution of the schema tree.
type InvalidReferenceError struct {
	// Ref is the offending reference string
	Ref string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidReferenceError) Error() string {
	msg := "invalid reference"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as InvalidReferenceError has no underlying cause.
func (e *InvalidReferenceError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// ParseError represents a failure to parse a document while building a
// components registry.
type ParseError struct {
	// Format is the document format that failed to parse ("yaml" or "json")
	Format string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg += fmt.Sprintf(" (%s)", e.Format)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
