package ports

import (
	"context"

	"go.trai.ch/gdmcp/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute on the span at start.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}

// Metrics records operation durations and outcomes.
type Metrics interface {
	// Start records a started operation and returns its identifier.
	Start(name string) string
	// End finishes the operation. A non-nil err marks it failed.
	// It returns false when id is unknown.
	End(id string, err error) (domain.OperationMetric, bool)
	// Stats summarizes the finished operations recorded under name.
	Stats(name string) (domain.OperationStats, bool)
	// Snapshot returns every retained metric ordered by start time.
	Snapshot() []domain.OperationMetric
}
