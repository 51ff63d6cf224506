// Package apiclient provides the base client for building REST API
// clients: it injects authentication, formats request bodies, classifies
// responses into a typed error taxonomy, and dispatches every logical
// call through a pluggable request strategy.
//
// # Basic Usage
//
//	client, err := apiclient.New(apiclient.Config{
//	    BaseURL:          "https://api.example.com",
//	    Authentication:   auth.Header{Token: "my-token"},
//	    ResponseHandler:  codec.JSONHandler{},
//	    RequestFormatter: codec.JSONFormatter{},
//	})
//
//	todos, err := client.Read(ctx, "/todos")
//
// # Pagination
//
//	paged := client.PaginatedByParams(func(payload any, params map[string]string) map[string]string {
//	    // return the next page's query params, or nil when exhausted
//	})
//	pages, err := paged.Read(ctx, "/todos")
//
// The paginated client is a clone; the original client keeps its single
// call strategy.
package apiclient
