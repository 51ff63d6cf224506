package apiclient

import (
	"time"

	"github.com/kbukum/apikit/auth"
	"github.com/kbukum/apikit/codec"
	"github.com/kbukum/apikit/errors"
	"github.com/kbukum/apikit/logger"
	"github.com/kbukum/apikit/strategy"
	"github.com/kbukum/apikit/transport"
)

const defaultTimeout = 30 * time.Second

// Config configures a Client. Authentication, ResponseHandler, and
// RequestFormatter are required; everything else has a default.
type Config struct {
	// BaseURL is prepended to relative call URLs. Absolute URLs pass through.
	BaseURL string

	// Authentication supplies the auth material merged into the client
	// defaults at construction.
	Authentication auth.Method

	// ResponseHandler extracts the logical payload from a raw response.
	ResponseHandler codec.ResponseHandler

	// RequestFormatter turns a logical payload into the wire-ready body.
	RequestFormatter codec.RequestFormatter

	// Strategy maps a logical call to underlying HTTP calls.
	// Defaults to strategy.Single.
	Strategy strategy.Strategy

	// Requester sends the HTTP requests. Defaults to transport.NewHTTPRequester.
	Requester transport.Requester

	// Headers are default headers applied to all calls.
	Headers map[string]string

	// Params are default query parameters applied to all calls.
	Params map[string]string

	// Timeout is the per-request timeout of the default requester.
	// Defaults to 30s. Ignored when a custom Requester is supplied.
	Timeout time.Duration
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Strategy == nil {
		c.Strategy = strategy.Single{}
	}
	if c.Requester == nil {
		c.Requester = transport.NewHTTPRequester(transport.WithTimeout(c.Timeout))
	}
}

// Validate checks the capability contracts. Each missing argument fails
// with its own configuration error, before any call is made.
func (c *Config) Validate() error {
	if c.Authentication == nil {
		return errors.NewConfiguration("apiclient: authentication method must not be nil")
	}
	if c.ResponseHandler == nil {
		return errors.NewConfiguration("apiclient: response handler must not be nil")
	}
	if c.RequestFormatter == nil {
		return errors.NewConfiguration("apiclient: request formatter must not be nil")
	}
	return nil
}

// Option configures a Client beyond its Config.
type Option func(*Client)

// WithLogger replaces the client logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}
