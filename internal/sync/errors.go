package sync

import (
	"errors"
	"fmt"
	"strings"
)

// PreconditionError represents a violated precondition the user has to
// resolve before the operation can run, such as a non-empty deploy target
// or a protected file turning up in a pull source.
type PreconditionError struct {
	Path   string // The path violating the precondition
	Reason string // Human-readable description of the violation
}

// NewPreconditionError creates a new PreconditionError.
func NewPreconditionError(path, reason string) *PreconditionError {
	return &PreconditionError{
		Path:   path,
		Reason: reason,
	}
}

// Error implements the error interface for PreconditionError.
func (e *PreconditionError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// ConfigFailure records one configuration that could not be deployed
// during a batch deploy.
type ConfigFailure struct {
	Name string // Name of the configuration that failed
	Err  error  // The error it failed with
}

// Error implements the error interface for ConfigFailure.
func (e *ConfigFailure) Error() string {
	return fmt.Sprintf("could not deploy config '%s': %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ConfigFailure) Unwrap() error {
	return e.Err
}

// BatchError aggregates the per-configuration failures of a batch deploy.
// The deploy keeps going past individual failures, so one error can carry
// several of them.
type BatchError struct {
	Failures []*ConfigFailure // Individual configuration failures
	Total    int              // Total number of configurations attempted
}

// Add records a configuration failure.
func (e *BatchError) Add(failure *ConfigFailure) {
	e.Failures = append(e.Failures, failure)
}

// Error implements the error interface for BatchError.
func (e *BatchError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("deploy failed for %d/%d configs", len(e.Failures), e.Total))
	for _, failure := range e.Failures {
		sb.WriteString(fmt.Sprintf("\n  - %s", failure.Error()))
	}
	return sb.String()
}

// Unwrap returns the configuration failures for error unwrapping support.
// This allows errors.Is and errors.As to traverse the error chain.
func (e *BatchError) Unwrap() []error {
	if len(e.Failures) == 0 {
		return nil
	}

	errs := make([]error, len(e.Failures))
	for i, failure := range e.Failures {
		errs[i] = failure
	}
	return errs
}

// IsPreconditionError checks if the error is or wraps a PreconditionError.
func IsPreconditionError(err error) bool {
	if err == nil {
		return false
	}
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// IsBatchError checks if the error is or wraps a BatchError.
func IsBatchError(err error) bool {
	if err == nil {
		return false
	}
	var be *BatchError
	return errors.As(err, &be)
}
