// Package transport defines the boundary between the API client and the
// HTTP layer. The client builds a Request per logical call and hands it to
// a Requester; tests substitute a fake Requester instead of patching a
// global call site.
package transport
