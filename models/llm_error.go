package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of pipeline failure classifications.
type ErrorKind string

const (
	// Transient: the only kind eligible for retry with backoff.
	ERROR_KIND_SERVICE_UNAVAILABLE ErrorKind = "SERVICE_UNAVAILABLE"
	// Terminal kinds: stop retries, notify the caller, fall back.
	ERROR_KIND_RATE_LIMIT_EXCEEDED ErrorKind = "RATE_LIMIT_EXCEEDED"
	ERROR_KIND_CREDENTIAL_INVALID  ErrorKind = "CREDENTIAL_INVALID"
	// Silent kinds: logged only, fall back without a notice.
	ERROR_KIND_MALFORMED_RESPONSE      ErrorKind = "MALFORMED_RESPONSE"
	ERROR_KIND_UNUSABLE_CONTENT        ErrorKind = "UNUSABLE_CONTENT"
	ERROR_KIND_GENERIC_REQUEST_FAILURE ErrorKind = "GENERIC_REQUEST_FAILURE"
)

// LLMError carries a classified pipeline failure with the HTTP status and
// message it was derived from, replacing string-tagged errors.
type LLMError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *LLMError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status: %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewLLMError builds a classified error.
func NewLLMError(kind ErrorKind, statusCode int, message string) *LLMError {
	return &LLMError{Kind: kind, StatusCode: statusCode, Message: message}
}

// KindOf extracts the classification from err. Unclassified errors count as
// generic request failures.
func KindOf(err error) ErrorKind {
	var llmErr *LLMError
	if errors.As(err, &llmErr) {
		return llmErr.Kind
	}
	return ERROR_KIND_GENERIC_REQUEST_FAILURE
}
