package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "harulog"
	serviceVersion = "1.0.0"
)

// Exporter exports tracker metrics to an OTEL Collector.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	meter            metric.Meter
	transitionsTotal metric.Int64Counter
	insertionsTotal  metric.Int64Counter
	insertedMinutes  metric.Int64Histogram
	syncFlushesTotal metric.Int64Counter
	syncBatchSize    metric.Int64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	transitionsTotal, err := meter.Int64Counter(
		"harulog_transitions_total",
		metric.WithDescription("Total session state-machine transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}

	insertionsTotal, err := meter.Int64Counter(
		"harulog_activity_insertions_total",
		metric.WithDescription("Total externally-timed activity insertions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating insertions counter: %w", err)
	}

	insertedMinutes, err := meter.Int64Histogram(
		"harulog_inserted_activity_minutes",
		metric.WithDescription("Entered duration of inserted activities"),
		metric.WithUnit("min"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inserted minutes histogram: %w", err)
	}

	syncFlushesTotal, err := meter.Int64Counter(
		"harulog_sync_flushes_total",
		metric.WithDescription("Total synchronizer flush attempts"),
		metric.WithUnit("{flush}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sync flushes counter: %w", err)
	}

	syncBatchSize, err := meter.Int64Histogram(
		"harulog_sync_batch_sessions",
		metric.WithDescription("Sessions per synchronizer flush"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sync batch histogram: %w", err)
	}

	return &Exporter{
		provider:         provider,
		meter:            meter,
		transitionsTotal: transitionsTotal,
		insertionsTotal:  insertionsTotal,
		insertedMinutes:  insertedMinutes,
		syncFlushesTotal: syncFlushesTotal,
		syncBatchSize:    syncBatchSize,
	}, nil
}

// RecordTransition counts one state-machine transition.
func (e *Exporter) RecordTransition(ctx context.Context, action string) {
	e.transitionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
}

// RecordInsertion counts one activity insertion and its entered duration.
func (e *Exporter) RecordInsertion(ctx context.Context, activity string, minutes int) {
	opt := metric.WithAttributes(attribute.String("activity", activity))
	e.insertionsTotal.Add(ctx, 1, opt)
	e.insertedMinutes.Record(ctx, int64(minutes), opt)
}

// RecordSyncFlush counts one synchronizer flush attempt.
func (e *Exporter) RecordSyncFlush(ctx context.Context, result string, sessions int) {
	opt := metric.WithAttributes(attribute.String("result", result))
	e.syncFlushesTotal.Add(ctx, 1, opt)
	e.syncBatchSize.Record(ctx, int64(sessions), opt)
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
