package codec

import (
	"reflect"
	"testing"

	"github.com/kbukum/apikit/errors"
	"github.com/kbukum/apikit/transport"
)

func TestNoOpFormatter(t *testing.T) {
	f := NoOpFormatter{}

	body, ct, err := f.Format(nil)
	if err != nil || body != nil || ct != "" {
		t.Errorf("nil payload: got %v %q %v", body, ct, err)
	}

	body, ct, err = f.Format([]byte("raw"))
	if err != nil || string(body) != "raw" || ct != "" {
		t.Errorf("bytes payload: got %v %q %v", body, ct, err)
	}

	body, ct, err = f.Format("text")
	if err != nil || string(body) != "text" || ct != "text/plain" {
		t.Errorf("string payload: got %v %q %v", body, ct, err)
	}

	if _, _, err = f.Format(map[string]string{"foo": "bar"}); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestJSONFormatter(t *testing.T) {
	f := JSONFormatter{}

	body, ct, err := f.Format(map[string]string{"foo": "bar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"foo":"bar"}` {
		t.Errorf("unexpected body %q", body)
	}
	if ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	if _, _, err = f.Format(make(chan int)); err == nil {
		t.Error("expected error for unmarshalable type")
	}
}

func TestNoOpHandler_ReturnsRawResponse(t *testing.T) {
	resp := &transport.Response{StatusCode: 200, Body: []byte("anything")}
	payload, err := NoOpHandler{}.Handle(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != resp {
		t.Error("expected the raw response to be returned unmodified")
	}
}

func TestJSONHandler(t *testing.T) {
	h := JSONHandler{}

	payload, err := h.Handle(&transport.Response{
		StatusCode: 200,
		Body:       []byte(`{"userId":3,"id":45,"completed":false}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"userId": float64(3), "id": float64(45), "completed": false}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("expected %v, got %v", want, payload)
	}
}

func TestJSONHandler_EmptyBody(t *testing.T) {
	payload, err := JSONHandler{}.Handle(&transport.Response{StatusCode: 204})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != nil {
		t.Errorf("expected nil payload for empty body, got %v", payload)
	}
}

func TestJSONHandler_MalformedBody(t *testing.T) {
	_, err := JSONHandler{}.Handle(&transport.Response{
		StatusCode: 200,
		URL:        "https://api.example.com/todos",
		Body:       []byte("not-json"),
	})
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	if !errors.IsUnexpected(err) {
		t.Errorf("expected unexpected error, got %v", err)
	}
}
