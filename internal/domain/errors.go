package domain

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed calculation errors
var (
	ErrValidation     = errors.New("validation error")
	ErrInvalidHorizon = errors.New("invalid horizon")
	ErrOutOfRange     = errors.New("out of range")
)

// ValidationError reports a malformed or out-of-domain input field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidHorizonError reports a non-positive or logically impossible time horizon.
// It is also a validation failure.
type InvalidHorizonError struct {
	Field  string
	Reason string
}

func (e *InvalidHorizonError) Error() string {
	return fmt.Sprintf("invalid horizon %s: %s", e.Field, e.Reason)
}

func (e *InvalidHorizonError) Is(target error) bool {
	return target == ErrInvalidHorizon || target == ErrValidation
}

// OutOfRangeError reports an input whose magnitude would make the projection
// numerically meaningless (for example 1200 typed into a percent field)
type OutOfRangeError struct {
	Field  string
	Value  string
	Reason string
}

func (e *OutOfRangeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s out of range (%s): %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s out of range: %s", e.Field, e.Reason)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewInvalidHorizonError creates a new InvalidHorizonError
func NewInvalidHorizonError(field, reason string) error {
	return &InvalidHorizonError{Field: field, Reason: reason}
}

// NewOutOfRangeError creates a new OutOfRangeError
func NewOutOfRangeError(field, value, reason string) error {
	return &OutOfRangeError{Field: field, Value: value, Reason: reason}
}

// ErrorField extracts the offending field name from any of the typed errors
func ErrorField(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	var he *InvalidHorizonError
	if errors.As(err, &he) {
		return he.Field
	}
	var oe *OutOfRangeError
	if errors.As(err, &oe) {
		return oe.Field
	}
	return ""
}

// ErrorType returns the taxonomy name of err, or "internal" for untyped errors
func ErrorType(err error) string {
	switch {
	case errors.Is(err, ErrInvalidHorizon):
		return "invalid_horizon"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "internal"
	}
}
