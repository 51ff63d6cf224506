// Package auth provides the authentication methods consumed by the API
// client. A Method contributes default headers, query parameters, or a
// basic-auth pair when the client is constructed; it holds no other state.
package auth
