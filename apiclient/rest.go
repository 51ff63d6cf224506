package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
)

// Get performs a Read and converts the handled payload into type T.
func Get[T any](ctx context.Context, c *Client, url string, opts ...CallOption) (T, error) {
	return typed[T](c.Read(ctx, url, opts...))
}

// Post performs a Create and converts the handled payload into type T.
func Post[T any](ctx context.Context, c *Client, url string, data any, opts ...CallOption) (T, error) {
	return typed[T](c.Create(ctx, url, data, opts...))
}

// Put performs a Replace and converts the handled payload into type T.
func Put[T any](ctx context.Context, c *Client, url string, data any, opts ...CallOption) (T, error) {
	return typed[T](c.Replace(ctx, url, data, opts...))
}

// Patch performs an Update and converts the handled payload into type T.
func Patch[T any](ctx context.Context, c *Client, url string, data any, opts ...CallOption) (T, error) {
	return typed[T](c.Update(ctx, url, data, opts...))
}

// Delete performs a Delete and converts the handled payload into type T.
func Delete[T any](ctx context.Context, c *Client, url string, opts ...CallOption) (T, error) {
	return typed[T](c.Delete(ctx, url, opts...))
}

// typed converts a handled payload into T, going through JSON when the
// payload is not already a T (the JSON handler yields generic values).
func typed[T any](payload any, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if payload == nil {
		return out, nil
	}
	if v, ok := payload.(T); ok {
		return v, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("apiclient: encode payload: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("apiclient: decode payload: %w", err)
	}
	return out, nil
}
