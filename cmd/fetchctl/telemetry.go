package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/kbukum/fetchkit/fetch"
	"github.com/kbukum/fetchkit/httpclient"
	"github.com/kbukum/fetchkit/logger"
	"github.com/kbukum/fetchkit/observability"
	"github.com/kbukum/fetchkit/provider"
)

// telemetry holds whatever exporters the configuration enabled.
type telemetry struct {
	shutdowns []func(context.Context) error
	metrics   *observability.Metrics
}

func initTelemetry(ctx context.Context, cfg *Config) (*telemetry, error) {
	t := &telemetry{}

	if cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, cfg.Tracing)
		if err != nil {
			return nil, errors.Wrap(err, "error initializing tracing")
		}
		t.shutdowns = append(t.shutdowns, tp.Shutdown)
	}

	if cfg.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, cfg.Metrics)
		if err != nil {
			t.shutdown(ctx)
			return nil, errors.Wrap(err, "error initializing metrics")
		}
		t.shutdowns = append(t.shutdowns, mp.Shutdown)

		t.metrics, err = observability.NewMetrics(observability.Meter(serviceName))
		if err != nil {
			t.shutdown(ctx)
			return nil, errors.Wrap(err, "error creating metric instruments")
		}
	}
	return t, nil
}

// middlewares returns the transport middlewares, outermost first.
func (t *telemetry) middlewares(cfg *Config, log *logger.Logger) []fetch.Middleware {
	mws := []fetch.Middleware{
		provider.WithLogging[httpclient.Request, *httpclient.Response](log),
	}
	if cfg.Tracing.Enabled {
		mws = append(mws, provider.WithTracing[httpclient.Request, *httpclient.Response](cfg.Name))
	}
	if t.metrics != nil {
		mws = append(mws, provider.WithMetrics[httpclient.Request, *httpclient.Response](t.metrics))
	}
	return mws
}

func (t *telemetry) shutdown(ctx context.Context) {
	for i := len(t.shutdowns) - 1; i >= 0; i-- {
		if err := t.shutdowns[i](ctx); err != nil {
			logger.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}
}
