package config

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ObservabilityProviders holds the OpenTelemetry providers for the service.
type ObservabilityProviders struct {
	MeterProvider *metric.MeterProvider
	Resource      *resource.Resource
}

// NewObservabilityProviders creates an OpenTelemetry meter provider exporting
// metrics to the given OTLP gRPC endpoint. The provider is also registered as
// the global meter provider.
func NewObservabilityProviders(serviceName, otlpEndpoint string) (*ObservabilityProviders, error) {
	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, err
	}

	metricExporter, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(otlpEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter,
			metric.WithInterval(15*time.Second))),
		metric.WithResource(res),
	)

	otel.SetMeterProvider(meterProvider)

	return &ObservabilityProviders{
		MeterProvider: meterProvider,
		Resource:      res,
	}, nil
}

// Shutdown gracefully shuts down the OpenTelemetry providers, flushing any
// buffered telemetry.
func (p *ObservabilityProviders) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.MeterProvider.Shutdown(ctx)
}
