// Package observability wires OpenTelemetry tracing and metrics for fetchkit.
//
// InitTracer and InitMeter install global providers exporting over OTLP/HTTP.
// Without them the otel no-op providers are used, so spans and instruments
// created through this package are always safe to use.
package observability
