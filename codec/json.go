package codec

import (
	"encoding/json"
	"fmt"

	"github.com/kbukum/apikit/errors"
	"github.com/kbukum/apikit/transport"
)

// JSONFormatter serializes payloads as JSON.
type JSONFormatter struct{}

// Format marshals data and declares an application/json body.
func (JSONFormatter) Format(data any) ([]byte, string, error) {
	if data == nil {
		return nil, "", nil
	}
	body, err := json.Marshal(data)
	if err != nil {
		return nil, "", fmt.Errorf("codec: encode request body: %w", err)
	}
	return body, "application/json", nil
}

// JSONHandler decodes response bodies as JSON. An empty body (e.g. a 204
// response) yields a nil payload.
type JSONHandler struct{}

// Handle unmarshals the response body into a generic value.
func (JSONHandler) Handle(resp *transport.Response) (any, error) {
	if len(resp.Body) == 0 {
		return nil, nil
	}
	var payload any
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, errors.NewUnexpected(
			fmt.Sprintf("unable to decode response data for url: %s", resp.URL), err)
	}
	return payload, nil
}
