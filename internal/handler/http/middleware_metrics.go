package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
)

// metrics is the per-handler Prometheus registry. Using a private registry
// lets several handlers coexist in one process.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	totalFiles   prometheus.Gauge
	totalFolders prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "editor_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "editor_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		totalFiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "editor_total_files",
			Help: "Total number of stored files",
		}),
		totalFolders: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "editor_total_folders",
			Help: "Total number of stored folders",
		}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.totalFiles,
		m.totalFolders,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// withMetrics counts requests per route pattern, so /api/files/{id} is one
// series regardless of the id.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		h.metrics.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(mw.statusCode())).Inc()
		h.metrics.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// serveMetrics refreshes the workspace gauges and serves the registry.
func (h *Handler) serveMetrics(w http.ResponseWriter, r *http.Request) {
	h.updateWorkspaceMetrics(r)

	promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{
		DisableCompression: true,
	}).ServeHTTP(w, r)
}

func (h *Handler) updateWorkspaceMetrics(r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	if files, err := h.services.FileService.List(ctx); err == nil {
		h.metrics.totalFiles.Set(float64(len(files)))
	} else {
		log.Warn().Err(err).Str("func", "*Handler.updateWorkspaceMetrics").Msg("failed to count files for metrics")
	}

	if folders, err := h.services.FolderService.List(ctx); err == nil {
		h.metrics.totalFolders.Set(float64(len(folders)))
	} else {
		log.Warn().Err(err).Str("func", "*Handler.updateWorkspaceMetrics").Msg("failed to count folders for metrics")
	}
}
