package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "mlb-scores-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx            context.Context
	meter          metric.Meter
	fetchStarts    metric.Int64Counter
	fetchResponses metric.Int64Counter
	fetchErrors    metric.Int64Counter
	gamesParsed    metric.Int64Counter
	storeWrites    metric.Int64Counter
	storeErrors    metric.Int64Counter
	storeLatencyMs metric.Float64Histogram
	cycleRuns      metric.Int64Counter
	cycleErrors    metric.Int64Counter
	cycleLatencyMs metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("mlb-scores-service")
	ctx := context.Background()

	fetchStarts, err := meter.Int64Counter("fetch_starts_total")
	if err != nil {
		return nil, err
	}
	fetchResponses, err := meter.Int64Counter("fetch_responses_total")
	if err != nil {
		return nil, err
	}
	fetchErrors, err := meter.Int64Counter("fetch_errors_total")
	if err != nil {
		return nil, err
	}
	gamesParsed, err := meter.Int64Counter("games_parsed_total")
	if err != nil {
		return nil, err
	}
	storeWrites, err := meter.Int64Counter("store_writes_total")
	if err != nil {
		return nil, err
	}
	storeErrors, err := meter.Int64Counter("store_errors_total")
	if err != nil {
		return nil, err
	}
	storeLatency, err := meter.Float64Histogram("store_write_duration_ms")
	if err != nil {
		return nil, err
	}
	cycleRuns, err := meter.Int64Counter("pipeline_cycles_total")
	if err != nil {
		return nil, err
	}
	cycleErrors, err := meter.Int64Counter("pipeline_errors_total")
	if err != nil {
		return nil, err
	}
	cycleLatency, err := meter.Float64Histogram("pipeline_cycle_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:            ctx,
		meter:          meter,
		fetchStarts:    fetchStarts,
		fetchResponses: fetchResponses,
		fetchErrors:    fetchErrors,
		gamesParsed:    gamesParsed,
		storeWrites:    storeWrites,
		storeErrors:    storeErrors,
		storeLatencyMs: storeLatency,
		cycleRuns:      cycleRuns,
		cycleErrors:    cycleErrors,
		cycleLatencyMs: cycleLatency,
	}, nil
}

func (o *otelInstruments) recordFetchStart(endpoint string) {
	if o == nil {
		return
	}
	o.recordCounter(o.fetchStarts, 1, attribute.String(AttrEndpoint, endpoint))
}

func (o *otelInstruments) recordFetchStatus(endpoint string, status int) {
	if o == nil {
		return
	}
	o.recordCounter(o.fetchResponses, 1,
		attribute.String(AttrEndpoint, endpoint),
		attribute.Int(AttrStatus, status),
	)
}

func (o *otelInstruments) recordFetchError(endpoint string) {
	if o == nil {
		return
	}
	o.recordCounter(o.fetchErrors, 1, attribute.String(AttrEndpoint, endpoint))
}

func (o *otelInstruments) recordGamesParsed(count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.gamesParsed, int64(count))
}

func (o *otelInstruments) recordStoreWrite(target string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrTarget, target)}
	o.recordCounter(o.storeWrites, 1, attrs...)
	o.recordHistogram(o.storeLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.storeErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordCycle(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.cycleRuns, 1)
	o.recordHistogram(o.cycleLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.cycleErrors, 1)
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
