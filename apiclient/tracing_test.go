package apiclient

import (
	"context"
	"testing"
)

func TestWithTracing_WrapsCallsTransparently(t *testing.T) {
	// The default global provider is a no-op; the pipeline result must be
	// identical with tracing enabled.
	req := &fakeRequester{}
	c, _ := newTestClient(t, req, WithTracing())

	if _, err := c.Read(context.Background(), "https://api.example.com/things"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.calls) != 1 {
		t.Errorf("expected 1 call, got %d", len(req.calls))
	}
}

func TestWithTracer_NilTracerDisablesSpans(t *testing.T) {
	req := &fakeRequester{}
	c, _ := newTestClient(t, req)
	if c.tracer != nil {
		t.Fatal("expected no tracer by default")
	}
	if _, err := c.Read(context.Background(), "https://api.example.com/things"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
