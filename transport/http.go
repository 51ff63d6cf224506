package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/apikit/version"
)

const defaultTimeout = 30 * time.Second

// HTTPRequester is the net/http-backed Requester used by default.
type HTTPRequester struct {
	client          *http.Client
	requestIDHeader string
}

// HTTPOption configures an HTTPRequester.
type HTTPOption func(*HTTPRequester)

// WithTimeout sets the per-request timeout. Zero keeps the default of 30s.
func WithTimeout(d time.Duration) HTTPOption {
	return func(r *HTTPRequester) {
		if d > 0 {
			r.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(r *HTTPRequester) {
		if c != nil {
			r.client = c
		}
	}
}

// WithRequestIDHeader attaches a generated UUID to every outbound request
// under the given header name, unless the caller already set one.
func WithRequestIDHeader(name string) HTTPOption {
	return func(r *HTTPRequester) {
		r.requestIDHeader = name
	}
}

// NewHTTPRequester creates a Requester backed by net/http.
func NewHTTPRequester(opts ...HTTPOption) *HTTPRequester {
	r := &HTTPRequester{
		client: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do sends the request and reads the full response body.
func (r *HTTPRequester) Do(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	if len(req.Params) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Params {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if req.ContentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", version.UserAgent())
	}
	if req.BasicAuth != nil {
		httpReq.SetBasicAuth(req.BasicAuth.Username, req.BasicAuth.Password)
	}
	if r.requestIDHeader != "" && httpReq.Header.Get(r.requestIDHeader) == "" {
		httpReq.Header.Set(r.requestIDHeader, uuid.NewString())
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		URL:        resp.Request.URL.String(),
		Headers:    flattenHeaders(resp.Header),
		Body:       data,
	}, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (r *HTTPRequester) Unwrap() *http.Client {
	return r.client
}

// reasonPhrase extracts the reason phrase from the status line, falling
// back to the canonical text for the status code.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
