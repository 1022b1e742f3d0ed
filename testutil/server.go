package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/kbukum/fetchkit/component"
)

// RecordedRequest is what Server saw of one request.
type RecordedRequest struct {
	Method     string
	RequestURI string
	Header     http.Header
	Body       []byte
}

// Server is an HTTP test server run as a component. It records every
// request before passing it to its handler; the handler sees the full body.
type Server struct {
	handler http.Handler

	mu       sync.Mutex
	srv      *httptest.Server
	requests []RecordedRequest
}

var _ TestComponent = (*Server)(nil)

// NewServer returns a Server that answers with h once started.
func NewServer(h http.Handler) *Server {
	return &Server{handler: h}
}

// JSON returns a handler that always answers with status and body.
func JSON(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (s *Server) Name() string { return "test-http-server" }

// Start begins listening on a loopback port.
func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return fmt.Errorf("testutil: server already started")
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	return nil
}

// Stop closes the listener and waits for in-flight requests.
func (s *Server) Stop(_ context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv != nil {
		srv.Close()
	}
	return nil
}

func (s *Server) Health(_ context.Context) component.Health {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return component.Health{Name: s.Name(), Status: component.StatusUnhealthy}
	}
	return component.Health{Name: s.Name(), Status: component.StatusHealthy}
}

// URL returns the base URL, or "" before Start.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return ""
	}
	return s.srv.URL
}

// Requests returns a copy of the recorded requests in arrival order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// Reset forgets recorded requests.
func (s *Server) Reset(_ context.Context) error {
	s.mu.Lock()
	s.requests = nil
	s.mu.Unlock()
	return nil
}

// Snapshot returns the recorded requests.
func (s *Server) Snapshot(_ context.Context) (any, error) {
	return s.Requests(), nil
}

// Restore replaces the recorded requests with snapshot.
func (s *Server) Restore(_ context.Context, snapshot any) error {
	reqs, ok := snapshot.([]RecordedRequest)
	if !ok {
		return fmt.Errorf("testutil: unexpected snapshot type %T", snapshot)
	}
	s.mu.Lock()
	s.requests = append([]RecordedRequest(nil), reqs...)
	s.mu.Unlock()
	return nil
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:     r.Method,
		RequestURI: r.URL.RequestURI(),
		Header:     r.Header.Clone(),
		Body:       body,
	})
	s.mu.Unlock()

	s.handler.ServeHTTP(w, r)
}
