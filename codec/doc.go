// Package codec provides the request formatter and response handler
// extension points of the API client: a formatter turns a logical payload
// into a wire-ready body, a handler extracts the logical payload from a
// raw response.
package codec
