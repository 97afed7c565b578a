package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/smithy-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fmrental"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "store_operations_total", Help: "Document store calls."},
		[]string{"table", "operation", "result"},
	)
	StoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "store_operation_duration_seconds",
			Help:    "Document store call duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table", "operation"},
	)
	ReservationEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "reservation_events_total", Help: "Reservation lifecycle events."},
		[]string{"event"}, // event: created|checked_in
	)
	ReviewEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "review_events_total", Help: "Reviews created by rating."},
		[]string{"rating"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, StoreOperations, StoreLatency, ReservationEvents, ReviewEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveStore(table, operation string, err error, dur time.Duration) {
	StoreOperations.WithLabelValues(table, operation, LabelErr(err)).Inc()
	StoreLatency.WithLabelValues(table, operation).Observe(dur.Seconds())
}

func ObserveReservation(event string) { // event: created|checked_in
	ReservationEvents.WithLabelValues(event).Inc()
}

func ObserveReview(rating int) {
	ReviewEvents.WithLabelValues(strconv.Itoa(rating)).Inc()
}

// LabelErr turns an error into a low-cardinality label.
// AWS API errors are labelled by their error code.
func LabelErr(err error) string {
	if err == nil {
		return "ok"
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return "error"
}
