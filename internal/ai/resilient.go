package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"material-advisor/internal/logger"
	"material-advisor/internal/telemetry"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

// ResilientEmbedder guards an Embedder with a per-call timeout, a rate limiter
// and a circuit breaker. Every failure comes back wrapped in ErrEmbeddingFailed.
type ResilientEmbedder struct {
	next        Embedder
	name        string
	timeout     time.Duration
	breaker     *gobreaker.CircuitBreaker
	rateLimiter *rate.Limiter
	metrics     *telemetry.Metrics
}

// NewResilientEmbedder wraps next. rps <= 0 disables rate limiting, timeout <= 0
// leaves deadlines to the caller.
func NewResilientEmbedder(next Embedder, name string, rps float64, timeout time.Duration, metrics *telemetry.Metrics) *ResilientEmbedder {
	re := &ResilientEmbedder{
		next:    next,
		name:    name,
		timeout: timeout,
		metrics: metrics,
	}

	re.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "Embeddings",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			metrics.RecordCircuitBreakerState("embeddings", to.String())
		},
	})

	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		re.rateLimiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	return re
}

// Model forwards the wrapped embedder's model name when it has one
func (re *ResilientEmbedder) Model() string {
	if m, ok := re.next.(interface{ Model() string }); ok {
		return m.Model()
	}
	return re.name
}

func (re *ResilientEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	tracer := otel.Tracer("embeddings")
	ctx, span := tracer.Start(ctx, "embeddings.embed")
	defer span.End()

	span.SetAttributes(
		attribute.String("embedding.model", re.Model()),
		attribute.Int("embedding.input_chars", len(text)),
	)

	if re.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, re.timeout)
		defer cancel()
	}

	if re.rateLimiter != nil {
		if err := re.rateLimiter.Wait(ctx); err != nil {
			span.SetAttributes(attribute.Bool("embedding.rate_limited", true))
			return nil, fmt.Errorf("%w: %w", ErrEmbeddingFailed, err)
		}
	}

	result, err := re.breaker.Execute(func() (interface{}, error) {
		return re.next.Embed(ctx, text)
	})
	re.metrics.RecordEmbeddingCall(re.Model(), err == nil)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			span.SetAttributes(attribute.Bool("embedding.circuit_breaker_open", true))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingFailed, err)
	}

	vec := result.([]float32)
	span.SetAttributes(attribute.Int("embedding.dimensions", len(vec)))
	return vec, nil
}

// State exposes the breaker state for status reporting
func (re *ResilientEmbedder) State() string {
	return re.breaker.State().String()
}
