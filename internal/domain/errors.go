package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeConflict   ErrorCode = "CONFLICT"
	CodeStorage    ErrorCode = "STORAGE_ERROR"
	CodeInternal   ErrorCode = "INTERNAL_ERROR"

	// Quiz specific errors
	CodeInsufficientPool     ErrorCode = "INSUFFICIENT_POOL"
	CodeInsufficientUniverse ErrorCode = "INSUFFICIENT_UNIVERSE"

	// AI collaborator errors
	CodeMissingAPIKey ErrorCode = "MISSING_API_KEY"
	CodeUpstream      ErrorCode = "UPSTREAM_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail entry rendered alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewConflictError(message string) *DomainError {
	return NewError(CodeConflict, message, nil)
}

// NewStorageError passes the underlying persistence message through to the caller.
func NewStorageError(err error) *DomainError {
	msg := "storage failure"
	if err != nil {
		msg = err.Error()
	}
	return NewError(CodeStorage, msg, err)
}

func NewInsufficientPoolError(scope Scope) *DomainError {
	if scope.IsMistakes() {
		return NewError(CodeInsufficientPool, MsgInsufficientMistakes, nil)
	}
	return NewError(CodeInsufficientPool, MsgInsufficientPool, nil)
}

func NewInsufficientUniverseError() *DomainError {
	return NewError(CodeInsufficientUniverse, MsgInsufficientUniverse, nil)
}

func NewMissingAPIKeyError() *DomainError {
	return NewError(CodeMissingAPIKey, "API key is not configured; set it on the settings page", nil)
}

// NewUpstreamError surfaces an AI collaborator failure verbatim.
func NewUpstreamError(err error) *DomainError {
	msg := "AI request failed"
	if err != nil {
		msg = err.Error()
	}
	return NewError(CodeUpstream, msg, err)
}

// ErrorCodeOf returns the code of a DomainError in err's chain, or "" if there is none.
func ErrorCodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ErrDuplicateSetName is returned by repositories when a word set name is already taken.
var ErrDuplicateSetName = errors.New("word set name already exists")

// ErrNotFound is returned by repositories when the addressed row does not exist.
var ErrNotFound = errors.New("record not found")
