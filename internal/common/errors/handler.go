package errors

import (
	"errors"
	"time"
)

// Reporter normalizes and logs scenario failures so that test output always
// names the offending document key, placeholder, or format string.
type Reporter struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewReporter(logger Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Report logs err with its structured metadata and returns the normalized
// StandardError so callers can fail their test with the same diagnostics.
func (r *Reporter) Report(scenario string, err error) *StandardError {
	stdErr := Normalize(err)

	fields := map[string]interface{}{
		"scenario":  scenario,
		"errorCode": string(stdErr.Code),
		"retryable": stdErr.Retryable,
	}
	if stdErr.Details != "" {
		fields["details"] = stdErr.Details
	}
	for k, v := range stdErr.Metadata {
		fields[k] = v
	}

	if stdErr.Retryable {
		r.logger.Warn(stdErr.Message, fields)
	} else {
		r.logger.Error(stdErr.Message, fields)
	}
	return stdErr
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}
