package domain

import (
	"errors"
	"fmt"
)

// ValidationError marks bad or missing required input. The caller can
// recover by correcting the input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError with the given reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError marks a failed model call or a response that violated the
// declared schema. The whole operation may be retried by the caller; no
// automatic retry happens below this boundary.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream call failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// DataCorruptionError marks a roster source that could not be parsed even
// after both cleanup passes. Fatal for that load; the roster degrades to
// unavailable.
type DataCorruptionError struct {
	Source string
	Err    error
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("roster source %s is corrupted: %v", e.Source, e.Err)
}

func (e *DataCorruptionError) Unwrap() error {
	return e.Err
}

// ParseError marks a stored session payload that is missing or not valid
// JSON. Surfaced to the user as a request to redo the analysis.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return "result not found, please redo the analysis"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
