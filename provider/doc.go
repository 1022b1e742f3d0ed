// Package provider defines the small set of contracts fetchkit components
// are composed from.
//
//   - RequestResponse[I, O]: one input, one output (the HTTP transport)
//   - Iterator[T]: pull-based access to values, closed when done
//   - Deferred[T]: a value computed on its own goroutine and awaited later
//
// FromDeferred turns a Deferred into a single-value Iterator: it yields the
// value once, or fails with the Deferred's error, and is then exhausted.
//
// # Middleware
//
// Middleware[I, O] wraps a RequestResponse. Use Chain to compose them:
//
//	transport := provider.Chain(
//	    provider.WithLogging[httpclient.Request, *httpclient.Response](log),
//	    provider.WithTracing[httpclient.Request, *httpclient.Response]("fetchctl"),
//	)(adapter)
package provider
