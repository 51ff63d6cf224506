// Package logger wraps zerolog with the structured fields used across the
// API client. The client logs every classified failure through it.
package logger
