package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPRequester_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("X-Custom"); got != "value" {
			t.Errorf("expected X-Custom=value, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "apikit/") {
			t.Errorf("expected apikit user agent, got %q", got)
		}
		w.WriteHeader(201)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	r := NewHTTPRequester()
	resp, err := r.Do(context.Background(), Request{
		Method:      http.MethodPost,
		URL:         srv.URL + "/things",
		Headers:     map[string]string{"X-Custom": "value"},
		Params:      map[string]string{"page": "2"},
		Body:        []byte(`{"foo":"bar"}`),
		ContentType: "application/json",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
	if resp.Reason != "Created" {
		t.Errorf("expected reason Created, got %q", resp.Reason)
	}
	if !strings.Contains(resp.URL, "page=2") {
		t.Errorf("expected final URL to carry query params, got %q", resp.URL)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("unexpected body %q", resp.Body)
	}
	if !resp.IsSuccess() {
		t.Error("expected IsSuccess=true")
	}
}

func TestHTTPRequester_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "uname" || pass != "secret" {
			t.Errorf("expected basic auth uname/secret, got %q/%q ok=%v", user, pass, ok)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	r := NewHTTPRequester()
	_, err := r.Do(context.Background(), Request{
		Method:    http.MethodGet,
		URL:       srv.URL,
		BasicAuth: &BasicAuth{Username: "uname", Password: "secret"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPRequester_RequestIDHeader(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	r := NewHTTPRequester(WithRequestIDHeader("X-Request-ID"))
	if _, err := r.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == "" {
		t.Error("expected a generated request ID")
	}

	// A caller-supplied ID must not be overwritten.
	if _, err := r.Do(context.Background(), Request{
		Method:  http.MethodGet,
		URL:     srv.URL,
		Headers: map[string]string{"X-Request-ID": "fixed"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "fixed" {
		t.Errorf("expected caller request ID to win, got %q", seen)
	}
}

func TestHTTPRequester_TransportFailure(t *testing.T) {
	r := NewHTTPRequester(WithTimeout(time.Second))
	_, err := r.Do(context.Background(), Request{
		Method: http.MethodGet,
		URL:    "http://127.0.0.1:1",
	})
	if err == nil {
		t.Fatal("expected a transport error")
	}
}

func TestHTTPRequester_NonOKStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer srv.Close()

	r := NewHTTPRequester()
	resp, err := r.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	if err != nil {
		t.Fatalf("classification is the caller's job, got error: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
	if resp.Reason != "Internal Server Error" {
		t.Errorf("expected reason phrase, got %q", resp.Reason)
	}
}
