package errors

import (
	stderrors "errors"
	"fmt"
)

// APIError is the typed error raised by the API client pipeline.
//
// The Message strings produced by the constructors below are part of the
// client contract: callers and tests match on them.
type APIError struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 for non-HTTP failures).
	StatusCode int
	// Reason is the status reason phrase reported by the server.
	Reason string
	// URL is the URL that was contacted.
	URL string
	// Message is the contract error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewConfiguration creates a configuration error for an invalid
// constructor argument.
func NewConfiguration(message string) *APIError {
	return &APIError{
		Code:    CodeConfiguration,
		Message: message,
	}
}

// NewTransport creates the unexpected error raised when the transport
// layer fails before a response is received.
func NewTransport(url string, cause error) *APIError {
	return &APIError{
		Code:    CodeUnexpected,
		URL:     url,
		Message: fmt.Sprintf("Error when contacting '%s'", url),
		Cause:   cause,
	}
}

// NewUnexpected creates an unexpected error with a free-form message,
// e.g. for a response body that could not be parsed.
func NewUnexpected(message string, cause error) *APIError {
	return &APIError{
		Code:    CodeUnexpected,
		Message: message,
		Cause:   cause,
	}
}

// NewRedirection creates a redirection error for a 3xx response.
func NewRedirection(statusCode int, reason, url string) *APIError {
	return newHTTP(CodeRedirection, statusCode, reason, url)
}

// NewBadRequest creates a bad-request error for a 4xx response.
func NewBadRequest(statusCode int, reason, url string) *APIError {
	return newHTTP(CodeBadRequest, statusCode, reason, url)
}

// NewServer creates a server error for a 5xx response.
func NewServer(statusCode int, reason, url string) *APIError {
	return newHTTP(CodeServer, statusCode, reason, url)
}

// NewUnexpectedStatus creates an unexpected error for a status code
// outside the canonical 2xx-5xx classes.
func NewUnexpectedStatus(statusCode int, reason, url string) *APIError {
	return newHTTP(CodeUnexpected, statusCode, reason, url)
}

func newHTTP(code ErrorCode, statusCode int, reason, url string) *APIError {
	return &APIError{
		Code:       code,
		StatusCode: statusCode,
		Reason:     reason,
		URL:        url,
		Message:    fmt.Sprintf("%d Error: %s for url: %s", statusCode, reason, url),
	}
}

// Classify converts an HTTP status code into a typed error.
// Returns nil for 2xx status codes. Any code outside the 2xx-5xx classes
// (1xx, out-of-range values) is treated as unexpected.
func Classify(statusCode int, reason, url string) *APIError {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode >= 300 && statusCode < 400:
		return NewRedirection(statusCode, reason, url)
	case statusCode >= 400 && statusCode < 500:
		return NewBadRequest(statusCode, reason, url)
	case statusCode >= 500 && statusCode < 600:
		return NewServer(statusCode, reason, url)
	default:
		return NewUnexpectedStatus(statusCode, reason, url)
	}
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	return hasCode(err, CodeConfiguration)
}

// IsUnexpected checks if an error is an unexpected error.
func IsUnexpected(err error) bool {
	return hasCode(err, CodeUnexpected)
}

// IsRedirection checks if an error is a redirection error.
func IsRedirection(err error) bool {
	return hasCode(err, CodeRedirection)
}

// IsBadRequest checks if an error is a bad-request error.
func IsBadRequest(err error) bool {
	return hasCode(err, CodeBadRequest)
}

// IsServer checks if an error is a server error.
func IsServer(err error) bool {
	return hasCode(err, CodeServer)
}

// StatusCode extracts the HTTP status code from an error.
// Returns 0 when the error is not an *APIError or carries no status.
func StatusCode(err error) int {
	var e *APIError
	if stderrors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func hasCode(err error, code ErrorCode) bool {
	var e *APIError
	return stderrors.As(err, &e) && e.Code == code
}
