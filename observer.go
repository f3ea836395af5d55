package graph

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Observer is told about every HTTP call the client makes, including failed
// ones. The URL has its access token redacted.
type Observer interface {
	OnCallCompleted(url string, elapsed time.Duration, success bool)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(url string, elapsed time.Duration, success bool)

// OnCallCompleted calls f.
func (f ObserverFunc) OnCallCompleted(url string, elapsed time.Duration, success bool) {
	f(url, elapsed, success)
}

// NoopObserver ignores every call. It is the default.
type NoopObserver struct{}

// OnCallCompleted does nothing.
func (NoopObserver) OnCallCompleted(string, time.Duration, bool) {}

// MetricsObserver records call durations in an OpenTelemetry histogram.
type MetricsObserver struct {
	duration metric.Float64Histogram
	calls    metric.Int64Counter
}

// NewMetricsObserver creates the instruments on meter. A nil meter uses the
// global meter provider.
func NewMetricsObserver(meter metric.Meter) (*MetricsObserver, error) {
	if meter == nil {
		meter = otel.Meter(tracerName)
	}

	duration, err := meter.Float64Histogram("graph.client.call.duration",
		metric.WithDescription("Duration of Graph API HTTP calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}
	calls, err := meter.Int64Counter("graph.client.calls",
		metric.WithDescription("Number of Graph API HTTP calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create call counter: %w", err)
	}
	return &MetricsObserver{duration: duration, calls: calls}, nil
}

// OnCallCompleted records one call. The URL is not used as an attribute to
// keep cardinality bounded.
func (m *MetricsObserver) OnCallCompleted(_ string, elapsed time.Duration, success bool) {
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	ctx := context.Background()
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
	m.calls.Add(ctx, 1, attrs)
}
