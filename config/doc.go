// Package config loads declarative API client configuration from a YAML
// file with .env overlay, validates it, and builds an apiclient.Config
// with the declared authentication method.
package config
