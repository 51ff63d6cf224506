package codec

import (
	"fmt"

	"github.com/kbukum/apikit/transport"
)

// RequestFormatter maps a logical payload to a wire-ready body.
type RequestFormatter interface {
	// Format serializes data and returns the body bytes together with the
	// Content-Type to send, which may be empty.
	Format(data any) (body []byte, contentType string, err error)
}

// ResponseHandler maps a raw response to a logical payload.
type ResponseHandler interface {
	Handle(resp *transport.Response) (any, error)
}

// NoOpFormatter passes raw bodies through unchanged. It accepts nil,
// []byte, and string payloads.
type NoOpFormatter struct{}

// Format returns the payload bytes without transformation.
func (NoOpFormatter) Format(data any) ([]byte, string, error) {
	switch v := data.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return v, "", nil
	case string:
		return []byte(v), "text/plain", nil
	default:
		return nil, "", fmt.Errorf("codec: unsupported body type %T", data)
	}
}

// NoOpHandler returns the raw response as the payload.
type NoOpHandler struct{}

// Handle returns the response unmodified.
func (NoOpHandler) Handle(resp *transport.Response) (any, error) {
	return resp, nil
}
