// Package errors provides error handling for ONTX.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidArgument) {
//	    // handle bad input
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

// Common sentinel errors for use across ONTX.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidArgument indicates a nil or zero-value argument where a real
	// entity, container or factory is required. Queries never treat missing
	// arguments as empty input.
	ErrInvalidArgument = New("invalid argument")

	// ErrNotMutable indicates a change script targeted a container that does
	// not accept mutations
	ErrNotMutable = New("container is not mutable")

	// ErrPlannerConsumed indicates a terminal planner was asked to re-plan;
	// a fresh instance is required after any mutation
	ErrPlannerConsumed = New("planner already ran; create a new instance to re-plan")
)

// IsInvalidArgumentError checks if an error is or wraps ErrInvalidArgument
func IsInvalidArgumentError(err error) bool {
	return err != nil && Is(err, ErrInvalidArgument)
}

// NewInvalidArgumentError creates an invalid-argument error with a formatted message
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidArgument, Newf(format, args...).Error())
}
