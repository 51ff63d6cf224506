package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/apikit/auth"
	"github.com/kbukum/apikit/codec"
	"github.com/kbukum/apikit/errors"
	"github.com/kbukum/apikit/logger"
	"github.com/kbukum/apikit/strategy"
	"github.com/kbukum/apikit/transport"
)

// Client is the base REST API client. It holds per-instance defaults and
// drives the request pipeline for every logical CRUD call.
//
// A Client is read-only during calls; mutators are not safe for concurrent
// use. Clone gives each goroutine (or each scoped strategy substitution)
// its own configuration.
type Client struct {
	baseURL    string
	authMethod auth.Method
	handler    codec.ResponseHandler
	formatter  codec.RequestFormatter
	strat      strategy.Strategy
	requester  transport.Requester
	log        *logger.Logger
	tracer     trace.Tracer

	defaultHeaders map[string]string
	defaultParams  map[string]string
	defaultBasic   *transport.BasicAuth
}

// New creates a Client. The authentication method's contributions are
// merged into the default headers, query params, and basic-auth pair.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:        cfg.BaseURL,
		authMethod:     cfg.Authentication,
		handler:        cfg.ResponseHandler,
		formatter:      cfg.RequestFormatter,
		strat:          cfg.Strategy,
		requester:      cfg.Requester,
		defaultHeaders: mergeMaps(cfg.Headers, cfg.Authentication.Headers()),
		defaultParams:  mergeMaps(cfg.Params, cfg.Authentication.QueryParams()),
		defaultBasic:   cfg.Authentication.BasicAuth(),
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.NewDefault("apiclient")
	}

	return c, nil
}

// Create sends a POST request with a formatted body.
func (c *Client) Create(ctx context.Context, url string, data any, opts ...CallOption) (any, error) {
	return c.call(ctx, http.MethodPost, url, data, true, opts)
}

// Read sends a GET request.
func (c *Client) Read(ctx context.Context, url string, opts ...CallOption) (any, error) {
	return c.call(ctx, http.MethodGet, url, nil, false, opts)
}

// Update sends a PATCH request with a formatted body.
func (c *Client) Update(ctx context.Context, url string, data any, opts ...CallOption) (any, error) {
	return c.call(ctx, http.MethodPatch, url, data, true, opts)
}

// Replace sends a PUT request with a formatted body.
func (c *Client) Replace(ctx context.Context, url string, data any, opts ...CallOption) (any, error) {
	return c.call(ctx, http.MethodPut, url, data, true, opts)
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, url string, opts ...CallOption) (any, error) {
	return c.call(ctx, http.MethodDelete, url, nil, false, opts)
}

// call drives the per-call pipeline: merge defaults, format the body,
// dispatch through the active strategy, classify, and delegate.
func (c *Client) call(ctx context.Context, method, rawURL string, data any, withBody bool, opts []CallOption) (any, error) {
	co := &callOptions{}
	for _, opt := range opts {
		opt(co)
	}

	target := c.resolveURL(rawURL)
	ctx, span := c.startSpan(ctx, method, target)

	payload, err := c.execute(ctx, method, target, data, withBody, co)
	endSpan(span, err)
	return payload, err
}

func (c *Client) execute(ctx context.Context, method, target string, data any, withBody bool, co *callOptions) (any, error) {
	req := transport.Request{
		Method:    method,
		URL:       target,
		Headers:   mergeMaps(c.defaultHeaders, co.headers),
		Params:    mergeMaps(c.defaultParams, co.params),
		BasicAuth: c.defaultBasic,
	}

	if withBody {
		body, contentType, err := c.formatter.Format(data)
		if err != nil {
			c.log.Error(fmt.Sprintf("An error occurred when contacting %s", target),
				logger.Fields(logger.FieldError, err.Error(), logger.FieldMethod, method))
			return nil, errors.NewTransport(target, err)
		}
		req.Body = body
		req.ContentType = contentType
	}

	return c.strat.Execute(ctx, req, c.dispatch)
}

// dispatch performs one underlying HTTP call: send, classify, delegate.
// Strategies invoke it once per page.
func (c *Client) dispatch(ctx context.Context, req transport.Request) (any, error) {
	resp, err := c.requester.Do(ctx, req)
	if err != nil {
		c.log.Error(fmt.Sprintf("An error occurred when contacting %s", req.URL),
			logger.Fields(logger.FieldError, err.Error(), logger.FieldMethod, req.Method))
		return nil, errors.NewTransport(req.URL, err)
	}

	if apiErr := errors.Classify(resp.StatusCode, resp.Reason, resp.URL); apiErr != nil {
		fields := logger.Fields(logger.FieldStatusCode, resp.StatusCode, logger.FieldMethod, req.Method)
		if apiErr.Code == errors.CodeServer {
			c.log.Warn(apiErr.Message, fields)
		} else {
			c.log.Error(apiErr.Message, fields)
		}
		return nil, apiErr
	}

	return c.handler.Handle(resp)
}

// resolveURL prefixes relative URLs with the configured base URL.
func (c *Client) resolveURL(raw string) string {
	if c.baseURL == "" || strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(raw, "/")
}

// --- configuration accessors and mutators ---

// DefaultHeaders returns a copy of the default headers.
func (c *Client) DefaultHeaders() map[string]string {
	return mergeMaps(c.defaultHeaders, nil)
}

// SetDefaultHeaders replaces the default headers. Setting twice overwrites
// rather than merges.
func (c *Client) SetDefaultHeaders(headers map[string]string) {
	c.defaultHeaders = mergeMaps(headers, nil)
}

// DefaultQueryParams returns a copy of the default query parameters.
func (c *Client) DefaultQueryParams() map[string]string {
	return mergeMaps(c.defaultParams, nil)
}

// SetDefaultQueryParams replaces the default query parameters.
func (c *Client) SetDefaultQueryParams(params map[string]string) {
	c.defaultParams = mergeMaps(params, nil)
}

// DefaultBasicAuth returns a copy of the basic-auth pair, or nil.
func (c *Client) DefaultBasicAuth() *transport.BasicAuth {
	if c.defaultBasic == nil {
		return nil
	}
	ba := *c.defaultBasic
	return &ba
}

// SetDefaultBasicAuth replaces the basic-auth pair.
func (c *Client) SetDefaultBasicAuth(ba *transport.BasicAuth) {
	if ba == nil {
		c.defaultBasic = nil
		return
	}
	copied := *ba
	c.defaultBasic = &copied
}

// RequestStrategy returns the active request strategy.
func (c *Client) RequestStrategy() strategy.Strategy {
	return c.strat
}

// SetRequestStrategy replaces the request strategy on this instance.
// For call-scoped substitution use WithRequestStrategy instead.
func (c *Client) SetRequestStrategy(s strategy.Strategy) {
	if s != nil {
		c.strat = s
	}
}

// --- cloning and scoped strategy substitution ---

// Clone returns an independent copy of the client configuration. The
// default maps are copied; the strategy, requester, handler, and formatter
// references are shared.
func (c *Client) Clone() *Client {
	clone := *c
	clone.defaultHeaders = mergeMaps(c.defaultHeaders, nil)
	clone.defaultParams = mergeMaps(c.defaultParams, nil)
	if c.defaultBasic != nil {
		ba := *c.defaultBasic
		clone.defaultBasic = &ba
	}
	return &clone
}

// WithRequestStrategy returns a clone carrying the substituted strategy.
// The receiver keeps its own strategy.
func (c *Client) WithRequestStrategy(s strategy.Strategy) *Client {
	clone := c.Clone()
	clone.SetRequestStrategy(s)
	return clone
}

// PaginatedByParams returns a clone whose calls follow a query-parameter
// cursor until next returns nil, yielding a []any of page payloads.
func (c *Client) PaginatedByParams(next strategy.NextPageParams) *Client {
	return c.WithRequestStrategy(&strategy.QueryParamPaginated{NextPage: next})
}

// PaginatedByURL returns a clone whose calls follow a URL cursor until
// next returns "", yielding a []any of page payloads.
func (c *Client) PaginatedByURL(next strategy.NextPageURL) *Client {
	return c.WithRequestStrategy(&strategy.URLPaginated{NextPage: next})
}

// mergeMaps shallow-merges extra over base into a fresh map. Call-supplied
// values win per key; unrelated base keys are preserved.
func mergeMaps(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
