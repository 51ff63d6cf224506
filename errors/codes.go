package errors

// ErrorCode classifies API client errors.
type ErrorCode int

const (
	// CodeConfiguration indicates an invalid client configuration,
	// detected at construction time before any call is made.
	CodeConfiguration ErrorCode = iota
	// CodeUnexpected indicates a transport-level failure or a status code
	// outside the canonical 2xx-5xx classes.
	CodeUnexpected
	// CodeRedirection indicates a 3xx response.
	CodeRedirection
	// CodeBadRequest indicates a 4xx response.
	CodeBadRequest
	// CodeServer indicates a 5xx response.
	CodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case CodeConfiguration:
		return "configuration"
	case CodeUnexpected:
		return "unexpected"
	case CodeRedirection:
		return "redirection"
	case CodeBadRequest:
		return "bad_request"
	case CodeServer:
		return "server"
	default:
		return "unknown"
	}
}
