package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records render and submission timing through the OTel meter,
// exported via the shared Prometheus registry.
type Observability struct {
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	renderCounter  otelmetric.Int64Counter
	renderDuration otelmetric.Float64Histogram
	submitDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	renderCounter, _ := meter.Int64Counter(
		"documents.rendered",
		otelmetric.WithDescription("Number of documents rendered"),
	)

	renderDuration, _ := meter.Float64Histogram(
		"documents.render_duration",
		otelmetric.WithDescription("Document render duration"),
		otelmetric.WithUnit("ms"),
	)

	submitDuration, _ := meter.Float64Histogram(
		"documents.submit_duration",
		otelmetric.WithDescription("Document submission duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:  provider,
		meter:          meter,
		renderCounter:  renderCounter,
		renderDuration: renderDuration,
		submitDuration: submitDuration,
	}
}

func (o *Observability) RecordRender(ctx context.Context, documentKey string, duration time.Duration, status string) {
	if o.renderCounter != nil {
		o.renderCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("document_key", documentKey),
			attribute.String("status", status),
		))
	}
	if o.renderDuration != nil {
		o.renderDuration.Record(ctx, float64(duration.Microseconds())/1000.0, otelmetric.WithAttributes(
			attribute.String("document_key", documentKey),
		))
	}
}

func (o *Observability) RecordSubmission(ctx context.Context, endpoint string, duration time.Duration, status string) {
	if o.submitDuration != nil {
		o.submitDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("endpoint", endpoint),
			attribute.String("status", status),
		))
	}
}

// Shutdown flushes the meter provider, bounded by its own timeout so a
// deferred call cannot hang process exit.
func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
