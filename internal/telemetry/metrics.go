package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RequestCounter      metric.Int64Counter
	RequestDuration     metric.Float64Histogram
	RetrievalDuration   metric.Float64Histogram
	EmbeddingCalls      metric.Int64Counter
	EmbeddingCacheHits  metric.Int64Counter
	IndexRebuilds       metric.Int64Counter
	IndexRebuildTime    metric.Float64Histogram
	IndexSize           metric.Int64Gauge
	IntentRoutes        metric.Int64Counter
	CircuitBreakerState metric.Int64Counter
	DatabaseOperations  metric.Int64Counter
}

// InitMetrics initializes all application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("material-advisor")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	retrievalDuration, err := meter.Float64Histogram(
		"knowledge.retrieval.duration",
		metric.WithDescription("Knowledge retrieval duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	embeddingCalls, err := meter.Int64Counter(
		"embedding.calls.total",
		metric.WithDescription("Total embedding provider calls"),
	)
	if err != nil {
		return nil, err
	}

	embeddingCacheHits, err := meter.Int64Counter(
		"embedding.cache.hits",
		metric.WithDescription("Embedding cache lookups by outcome"),
	)
	if err != nil {
		return nil, err
	}

	indexRebuilds, err := meter.Int64Counter(
		"knowledge.index.rebuilds",
		metric.WithDescription("Vector index rebuilds by outcome"),
	)
	if err != nil {
		return nil, err
	}

	indexRebuildTime, err := meter.Float64Histogram(
		"knowledge.index.rebuild.duration",
		metric.WithDescription("Vector index rebuild duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	indexSize, err := meter.Int64Gauge(
		"knowledge.index.size",
		metric.WithDescription("Entries in the active vector index"),
	)
	if err != nil {
		return nil, err
	}

	intentRoutes, err := meter.Int64Counter(
		"knowledge.intent.routes",
		metric.WithDescription("Queries answered by a fixed intent route"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerState, err := meter.Int64Counter(
		"circuit_breaker.state_changes",
		metric.WithDescription("Circuit breaker state changes"),
	)
	if err != nil {
		return nil, err
	}

	databaseOperations, err := meter.Int64Counter(
		"database.operations.total",
		metric.WithDescription("Total database operations"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:      requestCounter,
		RequestDuration:     requestDuration,
		RetrievalDuration:   retrievalDuration,
		EmbeddingCalls:      embeddingCalls,
		EmbeddingCacheHits:  embeddingCacheHits,
		IndexRebuilds:       indexRebuilds,
		IndexRebuildTime:    indexRebuildTime,
		IndexSize:           indexSize,
		IntentRoutes:        intentRoutes,
		CircuitBreakerState: circuitBreakerState,
		DatabaseOperations:  databaseOperations,
	}, nil
}

// All Record methods accept a nil receiver so components can run without telemetry.

// RecordRequest records HTTP request metrics
func (m *Metrics) RecordRequest(method, path, status string, duration float64) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.path", path),
		attribute.String("http.status", status),
	}

	m.RequestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	m.RequestDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordRetrieval records a search or recommendation
func (m *Metrics) RecordRetrieval(operation string, results int, duration float64) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("knowledge.operation", operation),
		attribute.Bool("knowledge.empty", results == 0),
	}

	m.RetrievalDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordEmbeddingCall records one call to the embedding provider
func (m *Metrics) RecordEmbeddingCall(model string, success bool) {
	if m == nil {
		return
	}
	m.EmbeddingCalls.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("embedding.model", model),
		attribute.Bool("embedding.success", success),
	))
}

// RecordEmbeddingCache records a cache hit or miss
func (m *Metrics) RecordEmbeddingCache(hit bool) {
	if m == nil {
		return
	}
	m.EmbeddingCacheHits.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("cache.hit", hit)))
}

// RecordIndexRebuild records a rebuild attempt and, when it was swapped in, the new size
func (m *Metrics) RecordIndexRebuild(status string, entries int, duration float64) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String("rebuild.status", status)}

	m.IndexRebuilds.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	m.IndexRebuildTime.Record(context.Background(), duration, metric.WithAttributes(attrs...))
	if status == "swapped" {
		m.IndexSize.Record(context.Background(), int64(entries))
	}
}

// RecordIntentRoute records which fixed route answered a query
func (m *Metrics) RecordIntentRoute(intent string) {
	if m == nil {
		return
	}
	m.IntentRoutes.Add(context.Background(), 1, metric.WithAttributes(attribute.String("intent", intent)))
}

// RecordCircuitBreakerState records circuit breaker state changes
func (m *Metrics) RecordCircuitBreakerState(service, state string) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("service", service),
		attribute.String("state", state),
	}

	m.CircuitBreakerState.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// RecordDatabaseOperation records database operation metrics
func (m *Metrics) RecordDatabaseOperation(operation, collection string, success bool) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("db.operation", operation),
		attribute.String("db.collection", collection),
		attribute.Bool("db.success", success),
	}

	m.DatabaseOperations.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}
