package fetch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/fetchkit/httpclient"
	"github.com/kbukum/fetchkit/logger"
	"github.com/kbukum/fetchkit/observability"
	"github.com/kbukum/fetchkit/provider"
)

// Transport sends one request and returns the raw response.
// *httpclient.Adapter is the standard implementation.
type Transport = provider.RequestResponse[httpclient.Request, *httpclient.Response]

// Middleware wraps the Transport. Middlewares see status failures as
// *httpclient.StatusError.
type Middleware = provider.Middleware[httpclient.Request, *httpclient.Response]

// Fetcher issues requests over a Transport. It holds no per-call state and
// is safe for concurrent use.
type Fetcher struct {
	transport Transport
	log       *logger.Logger
}

// Option customizes a Fetcher.
type Option func(*fetcherOptions)

type fetcherOptions struct {
	log         *logger.Logger
	middlewares []Middleware
}

// WithLogger sets the logger for per-call debug and failure lines.
func WithLogger(log *logger.Logger) Option {
	return func(o *fetcherOptions) { o.log = log }
}

// WithMiddleware wraps the transport. The first middleware is outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *fetcherOptions) { o.middlewares = append(o.middlewares, mw...) }
}

// New returns a Fetcher sending through t.
func New(t Transport, opts ...Option) *Fetcher {
	o := fetcherOptions{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Fetcher{
		transport: provider.Chain(o.middlewares...)(statusCheck{inner: t}),
		log:       o.log.WithComponent("fetch"),
	}
}

// Issue sends one request on its own goroutine and returns at once.
// The Deferred resolves with the unread 2xx response, or fails with a
// *httpclient.StatusError, the transport's error, or a validation error
// raised before anything was sent. ctx is handed to the transport; giving
// up on the Deferred does not cancel the call.
func (f *Fetcher) Issue(ctx context.Context, address string, cfg RequestConfig) *provider.Deferred[*httpclient.Response] {
	req, err := NewRequest(address, cfg)
	if err != nil {
		f.log.WithContext(ctx).Warn("fetch rejected before send", logger.Fields(
			logger.FieldAddress, address,
			logger.FieldError, err.Error(),
		))
		return provider.Rejected[*httpclient.Response](err)
	}

	if logger.RequestIDFromContext(ctx) == "" {
		ctx = logger.ContextWithRequestID(ctx, uuid.NewString())
	}

	return provider.Go(func() (*httpclient.Response, error) {
		return f.send(ctx, req)
	})
}

func (f *Fetcher) send(ctx context.Context, req httpclient.Request) (*httpclient.Response, error) {
	ctx, span := observability.StartSpan(ctx, "fetch "+req.Method)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, req.Method)
	observability.SetSpanAttribute(ctx, observability.AttrURLFull, req.URL)

	placement := ClassifyMethod(Method(req.Method))
	log := f.log.WithContext(ctx)
	log.Debug("fetch sending", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldAddress, req.URL,
		logger.FieldPlacement, placement.String(),
	))

	start := time.Now()
	resp, err := f.transport.Execute(ctx, req)
	fields := logger.MergeWithDuration(logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldAddress, req.URL,
	), time.Since(start))

	if err != nil {
		if code, ok := httpclient.StatusCode(err); ok {
			fields[logger.FieldStatusCode] = code
			observability.SetSpanAttribute(ctx, observability.AttrHTTPStatusCode, code)
		}
		fields[logger.FieldError] = err.Error()
		observability.SetSpanError(ctx, err)
		log.Warn("fetch failed", fields)
		return nil, err
	}

	fields[logger.FieldStatusCode] = resp.StatusCode
	observability.SetSpanAttribute(ctx, observability.AttrHTTPStatusCode, resp.StatusCode)
	log.Debug("fetch done", fields)
	return resp, nil
}

// AsStream adapts Issue into a single-value stream of the raw response.
// The consumer owns the yielded response and must close it.
func (f *Fetcher) AsStream(ctx context.Context, address string, cfg RequestConfig) provider.Iterator[*httpclient.Response] {
	return provider.FromDeferred(f.Issue(ctx, address, cfg))
}
