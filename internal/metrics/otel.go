package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const meterName = "fm-stats"

var (
	promReaderFactory = prometheusComponents
	instrumentFactory = newOtelInstruments
	writeTextfile     = prometheus.WriteToTextfile
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	TextfilePath string
}

// Setup configures OpenTelemetry metrics backed by a Prometheus registry.
// It returns a Recorder and a shutdown function that writes the registry to
// TextfilePath (when set) before stopping the meter provider.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = meterName
	}

	promReader, registry, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(promReader),
		sdkmetric.WithResource(res),
	)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, errors.Join(err, provider.Shutdown(ctx))
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		var writeErr error
		if cfg.TextfilePath != "" {
			writeErr = writeTextfile(cfg.TextfilePath, registry)
		}
		return errors.Join(writeErr, provider.Shutdown(c))
	}

	return rec, shutdown, nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	loads            metric.Int64Counter
	loadErrors       metric.Int64Counter
	loadLatencyMs    metric.Float64Histogram
	skippedMatches   metric.Int64Counter
	commands         metric.Int64Counter
	commandErrors    metric.Int64Counter
	commandLatencyMs metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)
	ctx := context.Background()

	loads, err := meter.Int64Counter("data_loads_total")
	if err != nil {
		return nil, err
	}
	loadErrors, err := meter.Int64Counter("data_load_errors_total")
	if err != nil {
		return nil, err
	}
	loadLatency, err := meter.Float64Histogram("data_load_duration_ms")
	if err != nil {
		return nil, err
	}
	skipped, err := meter.Int64Counter("match_files_skipped_total")
	if err != nil {
		return nil, err
	}
	commands, err := meter.Int64Counter("commands_total")
	if err != nil {
		return nil, err
	}
	commandErrors, err := meter.Int64Counter("command_errors_total")
	if err != nil {
		return nil, err
	}
	commandLatency, err := meter.Float64Histogram("command_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		loads:            loads,
		loadErrors:       loadErrors,
		loadLatencyMs:    loadLatency,
		skippedMatches:   skipped,
		commands:         commands,
		commandErrors:    commandErrors,
		commandLatencyMs: commandLatency,
	}, nil
}

func (o *otelInstruments) recordLoad(kind string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrKind, kind)}
	o.recordCounter(o.loads, 1, attrs...)
	o.recordHistogram(o.loadLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.loadErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordSkipped(competition string) {
	if o == nil {
		return
	}
	o.recordCounter(o.skippedMatches, 1, attribute.String(AttrCompetition, competition))
}

func (o *otelInstruments) recordCommand(command string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrCommand, command)}
	o.recordCounter(o.commands, 1, attrs...)
	o.recordHistogram(o.commandLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.commandErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
