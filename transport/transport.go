package transport

import "context"

// BasicAuth is a username/password pair passed to the HTTP layer.
type BasicAuth struct {
	Username string
	Password string
}

// Request describes one outbound HTTP request. It is assembled per logical
// call and never persisted.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// URL is the fully resolved request URL.
	URL string
	// Headers are the merged request headers.
	Headers map[string]string
	// Params are URL query parameters.
	Params map[string]string
	// Body is the wire-ready request body produced by the formatter.
	Body []byte
	// ContentType is set alongside Body when the formatter declares one.
	ContentType string
	// BasicAuth carries the username/password pair, if configured.
	BasicAuth *BasicAuth
}

// Response is the raw result of an HTTP request, consumed once per call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Reason is the status reason phrase.
	Reason string
	// URL is the final request URL, including query parameters.
	URL string
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Requester sends a single HTTP request and returns the raw response.
// Implementations return an error only for transport-level failures;
// non-2xx responses are returned as a Response for the caller to classify.
type Requester interface {
	Do(ctx context.Context, req Request) (*Response, error)
}
