package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/kbukum/fetchkit/errors"
	"github.com/kbukum/fetchkit/provider"
)

// Adapter sends requests over a shared *http.Client.
type Adapter struct {
	httpClient *http.Client
	config     Config
}

var (
	_ provider.RequestResponse[Request, *Response] = (*Adapter)(nil)
	_ provider.Closeable                           = (*Adapter)(nil)
)

// Option customizes an Adapter.
type Option func(*Adapter)

// WithRoundTripper replaces the underlying transport.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(a *Adapter) {
		a.httpClient.Transport = rt
	}
}

// New creates an Adapter from cfg.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		transport.TLSClientConfig = tlsCfg
	}

	a := &Adapter{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Name returns the configured adapter name.
func (a *Adapter) Name() string {
	return a.config.Name
}

// IsAvailable always reports true; the adapter keeps no breaker state.
func (a *Adapter) IsAvailable(_ context.Context) bool {
	return true
}

// Execute sends req once and returns the response with its body unread,
// whatever the status. Errors from net/http are returned unchanged.
func (a *Adapter) Execute(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	return newResponse(resp), nil
}

// Close releases idle connections.
func (a *Adapter) Close(_ context.Context) error {
	a.httpClient.CloseIdleConnections()
	return nil
}

// Config returns the adapter's configuration with defaults applied.
func (a *Adapter) Config() Config {
	return a.config
}

// ResolveURL joins a relative address onto BaseURL. Absolute addresses and
// an empty BaseURL leave address untouched.
func (a *Adapter) ResolveURL(address string) string {
	if a.config.BaseURL == "" || strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address
	}
	return strings.TrimRight(a.config.BaseURL, "/") + "/" + strings.TrimLeft(address, "/")
}

func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, a.ResolveURL(req.URL), body)
	if err != nil {
		return nil, errors.Validation("httpclient: invalid request").WithCause(err)
	}

	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, vs := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	return httpReq, nil
}
