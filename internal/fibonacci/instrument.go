package fibonacci

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

var (
	computationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numcalc_fibonacci_computations_total",
			Help: "The total number of Fibonacci computations processed",
		},
		[]string{"method", "status"},
	)
	computationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "numcalc_fibonacci_computation_duration_seconds",
			Help: "The duration of Fibonacci computations in seconds",
		},
		[]string{"method"},
	)
)

// Compute executes a single F(n) calculation through the chosen strategy and
// records the cross-cutting concerns around it: a trace span, Prometheus
// counters and timing, and a debug log line. It is the entry point the CLI,
// REPL, and HTTP front ends dispatch through.
//
// The context is consulted before the computation starts; the strategies
// themselves are synchronous and run to completion once entered.
//
// Parameters:
//   - ctx: The context for pre-flight cancellation checks.
//   - method: The strategy to compute with.
//   - n: The index of the Fibonacci number to calculate.
//
// Returns:
//   - *big.Int: The calculated Fibonacci number.
//   - error: A DomainError for invalid input, or the context's error.
func (g *Generator) Compute(ctx context.Context, method Method, n int) (result *big.Int, err error) {
	tracer := otel.Tracer("fibonacci")
	_, span := tracer.Start(ctx, "Compute")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		computationsTotal.WithLabelValues(method.String(), status).Inc()
		computationDuration.WithLabelValues(method.String()).Observe(duration)

		log.Debug().
			Str("method", method.String()).
			Int("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("computation completed")
	}()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if method == MethodGenerator {
		return g.streamValue(n)
	}
	return g.single(method, n)
}

// streamValue obtains F(n) by consuming a fresh bounded stream up to index n.
func (g *Generator) streamValue(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errNegativeIndex
	}
	stream, err := g.Stream(n + 1)
	if err != nil {
		return nil, err
	}
	var v *big.Int
	for {
		next, ok := stream.Next()
		if !ok {
			return v, nil
		}
		v = next
	}
}
