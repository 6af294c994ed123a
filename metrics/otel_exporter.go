package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter             metric.Meter
	cacheEventsGauge  metric.Int64ObservableCounter
	cacheEntriesGauge metric.Int64ObservableGauge
	fallbacksCounter  metric.Int64ObservableCounter
	mutationsGauge    metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"library-console",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Cache events (hits, misses, fetches...) since start
	oe.cacheEventsGauge, err = oe.meter.Int64ObservableCounter(
		"console.cache.events",
		metric.WithDescription("Query cache events by type"),
		metric.WithUnit("{events}"),
		metric.WithInt64Callback(oe.observeCacheEvents),
	)
	if err != nil {
		return fmt.Errorf("creating cache events counter: %w", err)
	}

	oe.cacheEntriesGauge, err = oe.meter.Int64ObservableGauge(
		"console.cache.entries",
		metric.WithDescription("Number of entries held by the cache backend"),
		metric.WithUnit("{entries}"),
		metric.WithInt64Callback(oe.observeCacheEntries),
	)
	if err != nil {
		return fmt.Errorf("creating cache entries gauge: %w", err)
	}

	oe.fallbacksCounter, err = oe.meter.Int64ObservableCounter(
		"console.fallback.activations",
		metric.WithDescription("Reads answered from the sample dataset"),
		metric.WithUnit("{reads}"),
		metric.WithInt64Callback(oe.observeFallbacks),
	)
	if err != nil {
		return fmt.Errorf("creating fallback counter: %w", err)
	}

	// Mutation pairs per status
	oe.mutationsGauge, err = oe.meter.Int64ObservableGauge(
		"console.mutations",
		metric.WithDescription("Number of (kind, operation) pairs by mutation status"),
		metric.WithUnit("{mutations}"),
		metric.WithInt64Callback(oe.observeMutations),
	)
	if err != nil {
		return fmt.Errorf("creating mutations gauge: %w", err)
	}

	return nil
}

// observeCacheEvents is a callback that reports cache counters
func (oe *OTelExporter) observeCacheEvents(ctx context.Context, observer metric.Int64Observer) error {
	stats, err := oe.collector.GetCacheStats(ctx)
	if err != nil {
		return err
	}

	events := map[string]int64{
		"hit":          stats.Hits,
		"stale_hit":    stats.StaleHits,
		"miss":         stats.Misses,
		"fetch":        stats.Fetches,
		"fetch_error":  stats.FetchErrors,
		"shared_wait":  stats.SharedWaits,
		"invalidation": stats.Invalidations,
		"refresh":      stats.Refreshes,
	}
	for event, n := range events {
		observer.Observe(n, metric.WithAttributes(
			attribute.String("cache.event", event),
		))
	}

	return nil
}

func (oe *OTelExporter) observeCacheEntries(ctx context.Context, observer metric.Int64Observer) error {
	n, err := oe.collector.GetCachedEntries(ctx)
	if err != nil {
		return err
	}
	observer.Observe(n)
	return nil
}

func (oe *OTelExporter) observeFallbacks(ctx context.Context, observer metric.Int64Observer) error {
	n, err := oe.collector.GetFallbackCount(ctx)
	if err != nil {
		return err
	}
	observer.Observe(n)
	return nil
}

// observeMutations is a callback that reports mutation pairs by status
func (oe *OTelExporter) observeMutations(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetMutationCounts(ctx)
	if err != nil {
		return err
	}

	for status, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("mutation.status", status),
		))
	}

	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
