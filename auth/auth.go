package auth

import "github.com/kbukum/apikit/transport"

// Method supplies per-client authentication material. The client merges
// the returned values into its defaults at construction time.
type Method interface {
	// Headers returns headers to merge into the client defaults.
	Headers() map[string]string
	// QueryParams returns query parameters to merge into the client defaults.
	QueryParams() map[string]string
	// BasicAuth returns the username/password pair, or nil.
	BasicAuth() *transport.BasicAuth
}

// None is the no-op authentication method.
type None struct{}

// Headers returns no headers.
func (None) Headers() map[string]string { return nil }

// QueryParams returns no query parameters.
func (None) QueryParams() map[string]string { return nil }

// BasicAuth returns no credentials.
func (None) BasicAuth() *transport.BasicAuth { return nil }

// Header authenticates by sending a token in a request header.
// The zero values of Parameter and Realm produce "Authorization: Bearer <token>".
type Header struct {
	// Token is the credential value.
	Token string
	// Parameter is the header name. Defaults to "Authorization".
	Parameter string
	// Realm is the scheme prefix. Defaults to "Bearer".
	Realm string
}

// Headers returns the authorization header.
func (h Header) Headers() map[string]string {
	parameter := h.Parameter
	if parameter == "" {
		parameter = "Authorization"
	}
	realm := h.Realm
	if realm == "" {
		realm = "Bearer"
	}
	return map[string]string{parameter: realm + " " + h.Token}
}

// QueryParams returns no query parameters.
func (Header) QueryParams() map[string]string { return nil }

// BasicAuth returns no credentials.
func (Header) BasicAuth() *transport.BasicAuth { return nil }

// QueryParameter authenticates by sending a token as a query parameter,
// e.g. ?apikey=secret.
type QueryParameter struct {
	// Parameter is the query parameter name.
	Parameter string
	// Token is the credential value.
	Token string
}

// Headers returns no headers.
func (QueryParameter) Headers() map[string]string { return nil }

// QueryParams returns the credential parameter.
func (q QueryParameter) QueryParams() map[string]string {
	return map[string]string{q.Parameter: q.Token}
}

// BasicAuth returns no credentials.
func (QueryParameter) BasicAuth() *transport.BasicAuth { return nil }

// Basic authenticates with HTTP basic auth.
type Basic struct {
	Username string
	Password string
}

// Headers returns no headers; the transport layer encodes the pair.
func (Basic) Headers() map[string]string { return nil }

// QueryParams returns no query parameters.
func (Basic) QueryParams() map[string]string { return nil }

// BasicAuth returns the username/password pair.
func (b Basic) BasicAuth() *transport.BasicAuth {
	return &transport.BasicAuth{Username: b.Username, Password: b.Password}
}
