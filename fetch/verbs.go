package fetch

import (
	"context"

	"github.com/kbukum/fetchkit/provider"
)

// Get issues a GET and decodes the response into T. The verb is merged
// last, so a Method in cfg is ignored.
func Get[T any](ctx context.Context, f *Fetcher, address string, cfg ...RequestConfig) provider.Iterator[T] {
	return AsDecodedStream[T](ctx, f, address, withVerb(MethodGet, cfg))
}

// Post issues a POST with params as the JSON body.
func Post[T any](ctx context.Context, f *Fetcher, address string, cfg ...RequestConfig) provider.Iterator[T] {
	return AsDecodedStream[T](ctx, f, address, withVerb(MethodPost, cfg))
}

// Put issues a PUT with params as the JSON body.
func Put[T any](ctx context.Context, f *Fetcher, address string, cfg ...RequestConfig) provider.Iterator[T] {
	return AsDecodedStream[T](ctx, f, address, withVerb(MethodPut, cfg))
}

// Remove issues a DELETE with params in the query string.
func Remove[T any](ctx context.Context, f *Fetcher, address string, cfg ...RequestConfig) provider.Iterator[T] {
	return AsDecodedStream[T](ctx, f, address, withVerb(MethodDelete, cfg))
}

func withVerb(m Method, cfg []RequestConfig) RequestConfig {
	return Merge(append(append([]RequestConfig{}, cfg...), RequestConfig{Method: m})...)
}
