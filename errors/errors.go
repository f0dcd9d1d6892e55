// Package errors provides error handling for vitae.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, error wrapping, and user-facing hints, and defines the sentinel
// errors used across the filtering pipeline.
//
// Usage:
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMissingField) {
//	    // handle a document missing a required field
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the vitae data contract.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidMonth indicates a month value that is neither numeric nor a
	// recognized month name
	ErrInvalidMonth = New("invalid month")

	// ErrMissingField indicates a required date or identity field is absent
	// from a document being processed
	ErrMissingField = New("missing field")

	// ErrUnresolvedReference indicates an institution or participant
	// reference required for output could not be resolved
	ErrUnresolvedReference = New("unresolved reference")

	// ErrNotFound indicates the requested document does not exist
	ErrNotFound = New("not found")
)

// IsInvalidMonth checks if an error is or wraps ErrInvalidMonth
func IsInvalidMonth(err error) bool {
	return err != nil && Is(err, ErrInvalidMonth)
}

// IsMissingField checks if an error is or wraps ErrMissingField
func IsMissingField(err error) bool {
	return err != nil && Is(err, ErrMissingField)
}

// IsUnresolvedReference checks if an error is or wraps ErrUnresolvedReference
func IsUnresolvedReference(err error) bool {
	return err != nil && Is(err, ErrUnresolvedReference)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewMissingFieldError creates a missing-field error naming the field and
// the document it was expected in
func NewMissingFieldError(field, docID string) error {
	return Wrapf(ErrMissingField, "field %q in document %q", field, docID)
}

// NewUnresolvedReferenceError creates an unresolved-reference error with a
// formatted message
func NewUnresolvedReferenceError(format string, args ...interface{}) error {
	return Wrap(ErrUnresolvedReference, Newf(format, args...).Error())
}
