package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/acc-api/internal/models"
)

type ledgerReader interface {
	Ledger() models.Ledger
}

// MetricsService encapsulates Prometheus instrumentation for the API and the
// ledger's entity counts.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	liveCourses     prometheus.Gauge
	liveItems       prometheus.Gauge
	trashRecords    prometheus.Gauge
	ledger          ledgerReader
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService(ledger ledgerReader) *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	liveCourses := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_live_courses",
		Help: "Number of live courses in the ledger",
	})
	liveItems := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_live_graded_items",
		Help: "Number of live graded items in the ledger",
	})
	trashRecords := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_trash_records",
		Help: "Number of recoverable trash records",
	})

	registry.MustRegister(requestDuration, requestTotal, liveCourses, liveItems, trashRecords)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		liveCourses:     liveCourses,
		liveItems:       liveItems,
		trashRecords:    trashRecords,
		ledger:          ledger,
	}
}

// ObserveHTTPRequest records one served request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// Handler serves the scrape endpoint, refreshing entity gauges per scrape.
func (s *MetricsService) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.ledger != nil {
			ledger := s.ledger.Ledger()
			s.liveCourses.Set(float64(len(ledger.Courses)))
			s.liveItems.Set(float64(len(ledger.Items)))
			s.trashRecords.Set(float64(len(ledger.Trash)))
		}
		s.handler.ServeHTTP(w, r)
	})
}
