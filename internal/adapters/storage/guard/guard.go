// Package guard wraps repository ports with a circuit breaker, an
// OpenTelemetry span per call, and store operation metrics.
//
// All repositories wrapped by one Breaker share its state, so a failing
// database trips every store call at once:
//
//	b := guard.NewBreaker("store", cfg.Breaker, metrics, logger)
//	lists := b.TodoLists(store.TodoLists())
//	items := b.TodoItems(store.TodoItems())
//
// While the breaker is open, calls fail fast with an error wrapping
// domain.ErrUnavailable. A not-found result counts as a success.
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/platform/config"
	"github.com/jsamuelsen11/todolists-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Breaker)(nil)

// Breaker guards repository calls. It also reports its state as a health
// check.
type Breaker struct {
	name    string
	cb      *gobreaker.CircuitBreaker[struct{}]
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewBreaker creates a Breaker named name. If metrics is nil, metric
// recording is skipped; a nil logger discards state change logs.
func NewBreaker(name string, cfg config.BreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Breaker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Breaker{
		name:    name,
		cb:      cb,
		tracer:  otel.GetTracerProvider().Tracer("github.com/jsamuelsen11/todolists-api/internal/adapters/storage/guard"),
		metrics: metrics,
		logger:  logger,
	}
}

// Name returns the breaker name.
func (b *Breaker) Name() string {
	return b.name
}

// HealthCheck maps the breaker state to readiness without touching the
// store: closed is healthy, half-open is degraded and open is failing.
func (b *Breaker) HealthCheck(_ context.Context) error {
	state := b.cb.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", b.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", b.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", b.name, state)
	}
}

// TodoLists wraps a list repository.
func (b *Breaker) TodoLists(next ports.TodoListRepository) ports.TodoListRepository {
	return &listRepository{breaker: b, next: next}
}

// TodoItems wraps an item repository.
func (b *Breaker) TodoItems(next ports.TodoItemRepository) ports.TodoItemRepository {
	return &itemRepository{breaker: b, next: next}
}

// isSuccessful keeps caller-side outcomes from tripping the breaker.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, context.Canceled)
}

// call runs fn through the breaker inside a span and records metrics for it.
func call[T any](ctx context.Context, b *Breaker, entity, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()

	spanCtx, span := b.tracer.Start(ctx, "store "+entity+"."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrStoreEntity.String(entity),
			telemetry.AttrStoreOperation.String(op),
		),
	)
	defer span.End()

	var out T
	_, err := b.cb.Execute(func() (struct{}, error) {
		var fnErr error
		out, fnErr = fn(spanCtx)
		return struct{}{}, fnErr
	})

	result := resultOf(err)
	if result == "circuit_open" {
		err = fmt.Errorf("%s %s: %w: %w", entity, op, domain.ErrUnavailable, err)
	}
	if result != "success" && result != "not_found" {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	b.recordMetrics(ctx, entity, op, start, result)
	return out, err
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	default:
		return "error"
	}
}

// recordMetrics is safe to call with nil metrics.
func (b *Breaker) recordMetrics(ctx context.Context, entity, op string, start time.Time, result string) {
	if b.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreEntity.String(entity),
		telemetry.AttrStoreOperation.String(op),
		telemetry.AttrResult.String(result),
	)
	b.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	b.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
