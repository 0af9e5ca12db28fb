package metrics

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	UpstreamRequestsTotal     metric.Int64Counter
	UpstreamRequestDuration   metric.Float64Histogram
	AuthAttemptsTotal         metric.Int64Counter
	ParticipationTogglesTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments ONLY ONCE, using
// the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("yoga-web")
		var err error
		m := &AppMetrics{}

		m.UpstreamRequestsTotal, err = meter.Int64Counter(
			"upstream_requests_total",
			metric.WithDescription("Total number of requests issued to the yoga-studio backend"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_requests_total: %v", err)
		}

		m.UpstreamRequestDuration, err = meter.Float64Histogram(
			"upstream_request_duration_seconds",
			metric.WithDescription("Duration of backend round trips in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_request_duration_seconds: %v", err)
		}

		m.AuthAttemptsTotal, err = meter.Int64Counter(
			"auth_attempts_total",
			metric.WithDescription("Total number of login/register attempts"),
			metric.WithUnit("{attempt}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_attempts_total: %v", err)
		}

		m.ParticipationTogglesTotal, err = meter.Int64Counter(
			"participation_toggles_total",
			metric.WithDescription("Total number of participate/unparticipate actions"),
			metric.WithUnit("{action}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create participation_toggles_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global metrics instance, or nil before InitAppMetrics.
func Get() *AppMetrics {
	return appMetrics
}

// RecordUpstreamRequest records one backend round trip. status 0 means the
// transport failed before a response arrived. No-op when metrics are not
// initialized (tests).
func RecordUpstreamRequest(ctx context.Context, method, path string, status int, elapsed time.Duration) {
	m := Get()
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("status", strconv.Itoa(status)),
	)
	m.UpstreamRequestsTotal.Add(ctx, 1, attrs)
	m.UpstreamRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordAuthAttempt counts a login or register attempt.
func RecordAuthAttempt(ctx context.Context, kind string, success bool) {
	m := Get()
	if m == nil {
		return
	}
	m.AuthAttemptsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("success", success),
	))
}

// RecordParticipationToggle counts a participate/unparticipate action.
func RecordParticipationToggle(ctx context.Context, joined bool) {
	m := Get()
	if m == nil {
		return
	}
	m.ParticipationTogglesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("joined", joined),
	))
}
