package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/zerr"
)

// MetricsPath is where the collector is served.
const MetricsPath = "/metrics"

// Collector exports operation metrics in the Prometheus format.
// It implements Observer.
type Collector struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inFlight   *prometheus.GaugeVec
}

// NewCollector creates a Collector with its own registry, including Go runtime metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gdmcp",
			Name:      "operations_total",
			Help:      "Total number of finished engine operations.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gdmcp",
			Name:      "operation_duration_seconds",
			Help:      "Engine operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "gdmcp",
			Name:      "operations_in_flight",
			Help:      "Number of engine operations currently running.",
		}, []string{"operation"}),
	}

	c.registry.MustRegister(
		c.operations,
		c.duration,
		c.inFlight,
		collectors.NewGoCollector(),
	)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Started counts an operation as in flight.
func (c *Collector) Started(name string) {
	c.inFlight.WithLabelValues(name).Inc()
}

// Finished records the outcome and duration of an operation.
func (c *Collector) Finished(m domain.OperationMetric) {
	c.inFlight.WithLabelValues(m.Name).Dec()
	c.operations.WithLabelValues(m.Name, string(m.Status)).Inc()
	c.duration.WithLabelValues(m.Name).Observe(m.Duration.Seconds())
}

// Handler returns the HTTP handler exposing the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes the registry on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(MetricsPath, c.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return zerr.With(zerr.Wrap(err, "metrics listener failed"), "addr", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "metrics listener shutdown failed")
		}
		return nil
	}
}
