// Package errors provides the typed error taxonomy for API client calls.
// Every failure in the request pipeline is represented as an *APIError
// carrying an ErrorCode, the HTTP status code (when one was received),
// and the URL that was contacted.
package errors
