package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface keeps the handler layer free of per-type
// switch statements.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a project or communication was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrStore        = errors.New("store failure")
	ErrCollaborator = errors.New("collaborator failure")
)

func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StoreError represents a failed read or write of the project store, e.g.
// a malformed JSON document. Fatal for the operation; surfaced to the caller.
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *StoreError) StatusCode() int      { return http.StatusInternalServerError }
func (e *StoreError) Unwrap() error        { return e.Cause }
func (e *StoreError) Is(target error) bool { return target == ErrStore }

// CollaboratorError represents an AI collaborator failure: the service was
// unreachable or its response failed schema validation. Surfaced to the
// caller without retry.
type CollaboratorError struct {
	Message string
	Cause   error
}

func (e *CollaboratorError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *CollaboratorError) StatusCode() int      { return http.StatusBadGateway }
func (e *CollaboratorError) Unwrap() error        { return e.Cause }
func (e *CollaboratorError) Is(target error) bool { return target == ErrCollaborator }
