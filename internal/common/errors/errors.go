// Package errors provides standardized error handling for the test-data and
// payload automation suite.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Data resolution errors
const (
	ErrCodeUnknownDocumentKey  ErrorCode = "UNKNOWN_DOCUMENT_KEY"
	ErrCodeDocumentUnavailable ErrorCode = "DOCUMENT_UNAVAILABLE"
	ErrCodeRowNotFound         ErrorCode = "ROW_NOT_FOUND"
	ErrCodeFixtureEmpty        ErrorCode = "FIXTURE_EMPTY"

	ErrCodeUnsupportedDateFormat ErrorCode = "UNSUPPORTED_DATE_FORMAT"
	ErrCodeInvalidHourValue      ErrorCode = "INVALID_HOUR_VALUE"
	ErrCodeTimezoneUnavailable   ErrorCode = "TIMEZONE_UNAVAILABLE"

	ErrCodeCounterUnavailable ErrorCode = "COUNTER_UNAVAILABLE"

	ErrCodeRegistryInvalid ErrorCode = "REGISTRY_INVALID"

	ErrCodeInputValidationFailed   ErrorCode = "INPUT_VALIDATION_FAILED"
	ErrCodePayloadValidationFailed ErrorCode = "PAYLOAD_VALIDATION_FAILED"

	ErrCodeSubmissionFailed   ErrorCode = "SUBMISSION_FAILED"
	ErrCodeSubmissionRejected ErrorCode = "SUBMISSION_REJECTED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// CodeOf returns the error code carried by err, or "" when err is not a
// StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// ==========================
// 2. Error Constructors
// ==========================

// NewUnknownDocumentKeyError reports a document key that is not in the registry.
// Unknown keys are a programming error in the calling test, never retryable.
func NewUnknownDocumentKeyError(key string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownDocumentKey,
		Message:   fmt.Sprintf("document key %q is not registered", key),
		Retryable: false,
		Metadata:  map[string]interface{}{"documentKey": key},
		Timestamp: time.Now().UTC(),
	}
}

// NewDocumentUnavailableError wraps a storage read failure for a registered
// document. The underlying I/O error is propagated unchanged via Unwrap.
func NewDocumentUnavailableError(key, path string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentUnavailable,
		Message:   fmt.Sprintf("document %q could not be read", key),
		Details:   cause.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"documentKey": key, "path": path},
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewRowNotFoundError reports a fixture lookup that matched no row.
func NewRowNotFoundError(path, testCaseID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRowNotFound,
		Message:   fmt.Sprintf("no fixture row matches test case %q", testCaseID),
		Retryable: false,
		Metadata:  map[string]interface{}{"fixture": path, "testCaseId": testCaseID},
		Timestamp: time.Now().UTC(),
	}
}

// NewFixtureEmptyError reports a fixture with no data rows after the header.
func NewFixtureEmptyError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeFixtureEmpty,
		Message:   fmt.Sprintf("fixture %q has no data rows", path),
		Retryable: false,
		Metadata:  map[string]interface{}{"fixture": path},
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedDateFormatError reports a date format string the engine does not
// recognize. No best-effort fallback formatting is attempted.
func NewUnsupportedDateFormatError(format string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedDateFormat,
		Message:   fmt.Sprintf("unsupported date format %q", format),
		Retryable: false,
		Metadata:  map[string]interface{}{"format": format},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidHourValueError reports an appointment hour outside the accepted
// range after rollover normalization.
func NewInvalidHourValueError(field string, value int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidHourValue,
		Message:   fmt.Sprintf("hour value %d for %s is out of range", value, field),
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field, "value": value},
		Timestamp: time.Now().UTC(),
	}
}

// NewTimezoneUnavailableError reports a missing tzdata entry for the business
// timezone.
func NewTimezoneUnavailableError(name string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTimezoneUnavailable,
		Message:   fmt.Sprintf("timezone %q could not be loaded", name),
		Details:   cause.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"timezone": name},
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewCounterUnavailableError wraps a failure to read or write the shared
// sequence counter file.
func NewCounterUnavailableError(path string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCounterUnavailable,
		Message:   fmt.Sprintf("sequence counter %q could not be accessed", path),
		Details:   cause.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"path": path},
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewRegistryInvalidError reports a document registry that failed schema
// validation or could not be parsed.
func NewRegistryInvalidError(path, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryInvalid,
		Message:   fmt.Sprintf("document registry %q is invalid", path),
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"registry": path},
		Timestamp: time.Now().UTC(),
	}
}

// NewInputValidationError reports scenario input that failed schema validation.
func NewInputValidationError(scenario, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   fmt.Sprintf("input for scenario %q failed validation", scenario),
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"scenario": scenario},
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadValidationError reports a rendered payload that failed its JSON
// schema check.
func NewPayloadValidationError(documentKey, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadValidationFailed,
		Message:   fmt.Sprintf("rendered payload for %q failed validation", documentKey),
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"documentKey": documentKey},
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionFailedError wraps a transport-level failure (connection refused,
// timeout). Retryable: the target environment may simply be catching up.
func NewSubmissionFailedError(endpoint string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionFailed,
		Message:   fmt.Sprintf("submission to %q failed", endpoint),
		Details:   cause.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"endpoint": endpoint},
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewSubmissionRejectedError reports a non-2xx response from the target system.
func NewSubmissionRejectedError(endpoint string, status int, body string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionRejected,
		Message:   fmt.Sprintf("submission to %q rejected with status %d", endpoint, status),
		Details:   body,
		Retryable: false,
		Metadata:  map[string]interface{}{"endpoint": endpoint, "status": status},
		Timestamp: time.Now().UTC(),
	}
}
