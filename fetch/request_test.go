package fetch

import (
	"net/http"
	"testing"

	"github.com/kbukum/fetchkit/errors"
)

func TestNewRequest_QueryPlacement(t *testing.T) {
	for _, m := range []Method{MethodGet, MethodHead, MethodDelete} {
		req, err := NewRequest("/items", RequestConfig{Method: m, Params: NewParams("id", 5, "q", "a b")})
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if req.URL != "/items?id=5&q=a%20b" {
			t.Errorf("%s: unexpected url %q", m, req.URL)
		}
		if req.Body != nil {
			t.Errorf("%s: query verbs must not carry a body", m)
		}
		if req.Method != string(m) {
			t.Errorf("expected %s, got %s", m, req.Method)
		}
	}
}

func TestNewRequest_BodyPlacement(t *testing.T) {
	for _, m := range []Method{MethodPost, MethodPut, MethodPatch} {
		req, err := NewRequest("/items", RequestConfig{Method: m, Params: NewParams("name", "x", "a", 1)})
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if req.URL != "/items" {
			t.Errorf("%s: address must be unchanged, got %q", m, req.URL)
		}
		if string(req.Body) != `{"name":"x","a":1}` {
			t.Errorf("%s: unexpected body %s", m, req.Body)
		}
	}

	req, err := NewRequest("/items", RequestConfig{Method: MethodPost})
	if err != nil {
		t.Fatal(err)
	}
	if req.Body != nil {
		t.Errorf("nil params should send no body, got %s", req.Body)
	}
}

func TestNewRequest_FixedHeaders(t *testing.T) {
	req, err := NewRequest("/", RequestConfig{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"Accept":         "application/json",
		"Content-Type":   "application/json",
		"Accept-Charset": "utf-8",
	}
	for k, v := range want {
		if got := req.Header.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if len(req.Header) != 3 {
		t.Errorf("expected exactly 3 headers, got %v", req.Header)
	}
	if req.Method != http.MethodGet {
		t.Errorf("empty method should default to GET, got %s", req.Method)
	}
}

func TestNewRequest_Credential(t *testing.T) {
	t.Run("adds", func(t *testing.T) {
		req, err := NewRequest("/", RequestConfig{Credential: &Credential{HeaderName: "Authorization", HeaderValue: "Bearer t"}})
		if err != nil {
			t.Fatal(err)
		}
		if req.Header.Get("Authorization") != "Bearer t" || len(req.Header) != 4 {
			t.Errorf("unexpected headers %v", req.Header)
		}
	})

	t.Run("overrides on canonical collision", func(t *testing.T) {
		req, err := NewRequest("/", RequestConfig{Credential: &Credential{HeaderName: "content-type", HeaderValue: "text/plain"}})
		if err != nil {
			t.Fatal(err)
		}
		if got := req.Header.Values("Content-Type"); len(got) != 1 || got[0] != "text/plain" {
			t.Errorf("expected override, got %v", got)
		}
		if len(req.Header) != 3 {
			t.Errorf("collision must not add a header, got %v", req.Header)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := NewRequest("/", RequestConfig{Credential: &Credential{HeaderName: "Bad Name", HeaderValue: "v"}})
		if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
			t.Errorf("expected INVALID_INPUT, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := NewRequest("/", RequestConfig{Credential: &Credential{}}); err == nil {
			t.Error("expected error for empty header name")
		}
	})
}

func TestNewRequest_UnknownMethodUsesBody(t *testing.T) {
	req, err := NewRequest("/items", RequestConfig{Method: "PROPFIND", Params: NewParams("a", 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != "PROPFIND" || req.URL != "/items" {
		t.Errorf("unexpected request %s %s", req.Method, req.URL)
	}
	if string(req.Body) != `{"a":1}` {
		t.Errorf("unexpected body %s", req.Body)
	}
}

func TestNewRequest_IllegalMethod(t *testing.T) {
	_, err := NewRequest("/", RequestConfig{Method: "BAD VERB"})
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestNewRequest_UnserializableParams(t *testing.T) {
	_, err := NewRequest("/", RequestConfig{Method: MethodPost, Params: NewParams("ch", make(chan int))})
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
