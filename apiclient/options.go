package apiclient

// callOptions collects per-call headers and query parameters.
type callOptions struct {
	headers map[string]string
	params  map[string]string
}

// CallOption configures a single logical call.
type CallOption func(*callOptions)

// WithHeader adds a header to the call, overriding the client default for
// the same key.
func WithHeader(key, value string) CallOption {
	return func(co *callOptions) {
		if co.headers == nil {
			co.headers = make(map[string]string)
		}
		co.headers[key] = value
	}
}

// WithHeaders adds a set of headers to the call.
func WithHeaders(headers map[string]string) CallOption {
	return func(co *callOptions) {
		if co.headers == nil {
			co.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			co.headers[k] = v
		}
	}
}

// WithParam adds a query parameter to the call, overriding the client
// default for the same key.
func WithParam(key, value string) CallOption {
	return func(co *callOptions) {
		if co.params == nil {
			co.params = make(map[string]string)
		}
		co.params[key] = value
	}
}

// WithParams adds a set of query parameters to the call.
func WithParams(params map[string]string) CallOption {
	return func(co *callOptions) {
		if co.params == nil {
			co.params = make(map[string]string, len(params))
		}
		for k, v := range params {
			co.params[k] = v
		}
	}
}
