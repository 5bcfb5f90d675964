// Package metrics exposes Prometheus collectors for AniList traffic.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "anikit"

var (
	// Requests counts dispatched calls by outcome ("success" or an error kind).
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "GraphQL calls dispatched, by outcome",
	}, []string{"outcome"})

	// Latency observes the wall time of one dispatch, including reading the body.
	Latency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "GraphQL call latency",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"outcome"})

	// Retries counts retries scheduled by the retry engine, by the error kind that caused them.
	Retries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retries_total",
		Help:      "Retries scheduled after rate or burst limiting",
	}, []string{"kind"})

	// RetryWait sums the time spent sleeping between attempts.
	RetryWait = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retry_wait_seconds_total",
		Help:      "Seconds spent waiting between retries",
	})
)

// ObserveRequest records one finished dispatch.
func ObserveRequest(outcome string, took time.Duration) {
	Requests.WithLabelValues(outcome).Inc()
	Latency.WithLabelValues(outcome).Observe(took.Seconds())
}

// ObserveRetry records a retry about to sleep for wait.
func ObserveRetry(kind string, wait time.Duration) {
	Retries.WithLabelValues(kind).Inc()
	RetryWait.Add(wait.Seconds())
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
