package observability

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "veristay", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "veristay", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	StoreRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "veristay", Name: "store_records", Help: "Records currently held per store."},
		[]string{"store"},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "veristay", Name: "validation_failures_total", Help: "Rejected request bodies and ids."},
		[]string{"resource"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "veristay", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	ClientRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "veristay", Name: "client_requests_total", Help: "Outbound API client requests."},
		[]string{"endpoint", "status"},
	)
	ClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "veristay", Name: "client_request_duration_seconds",
			Help:    "Outbound API client request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// InitRegistry returns a fresh registry holding every collector above.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, StoreRecords, ValidationFailures,
		CacheEvents, ClientRequests, ClientLatency)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Serve exposes reg on a dedicated listener until ctx is done.
// An empty addr disables it.
func Serve(ctx context.Context, addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveValidationFailure(resource string) {
	ValidationFailures.WithLabelValues(resource).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

// ObserveClient records one outbound call. status 0 means no response.
func ObserveClient(endpoint string, status int, dur time.Duration) {
	ClientRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	ClientLatency.WithLabelValues(endpoint).Observe(dur.Seconds())
}

// RecordsGauge feeds store sizes into StoreRecords.
type RecordsGauge struct{}

func (RecordsGauge) SetRecords(store string, n int) {
	StoreRecords.WithLabelValues(store).Set(float64(n))
}
