package provider

import (
	"context"
	"time"

	"github.com/kbukum/fetchkit/observability"
)

// WithMetrics returns a Middleware that records a call counter, a duration
// histogram and an error counter for each Execute call.
func WithMetrics[I, O any](metrics *observability.Metrics) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &metricsRR[I, O]{inner: inner, metrics: metrics}
	}
}

type metricsRR[I, O any] struct {
	inner   RequestResponse[I, O]
	metrics *observability.Metrics
}

func (m *metricsRR[I, O]) Name() string                         { return m.inner.Name() }
func (m *metricsRR[I, O]) IsAvailable(ctx context.Context) bool { return m.inner.IsAvailable(ctx) }

func (m *metricsRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := m.inner.Execute(ctx, input)

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
		m.metrics.RecordError(ctx, m.inner.Name(), observability.ErrorKind(err))
	}
	m.metrics.RecordCall(ctx, m.inner.Name(), status, time.Since(start))

	return output, err
}
