package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Order metrics
	OrdersCreatedCounter prometheus.Counter
	OrderFailuresCounter prometheus.CounterVec

	// Stock metrics
	StockDecrementsCounter   prometheus.Counter
	InsufficientStockCounter prometheus.Counter

	// Subscription metrics
	SubscriptionOperationsCounter prometheus.CounterVec
	LimitDenialsCounter           prometheus.CounterVec
)

var initialized bool

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	if initialized {
		return
	}
	initialized = true
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful authentications",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	OrdersCreatedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_orders_created_total",
			Help: "Total number of orders created",
		},
	)

	OrderFailuresCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_order_failures_total",
			Help: "Total number of failed order creations",
		},
		[]string{"reason"},
	)

	StockDecrementsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_stock_decrements_total",
			Help: "Total number of stock decrements recorded",
		},
	)

	InsufficientStockCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_insufficient_stock_total",
			Help: "Total number of orders rejected for insufficient stock",
		},
	)

	SubscriptionOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_subscription_operations_total",
			Help: "Total number of subscription operations",
		},
		[]string{"operation"},
	)

	LimitDenialsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_limit_denials_total",
			Help: "Total number of requests denied by subscription limits",
		},
		[]string{"limit"},
	)
}

// RecordHTTPRequest updates the request counter and latency histogram
func RecordHTTPRequest(method, path, status string, seconds float64) {
	if !initialized {
		return
	}
	HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if !initialized {
			return
		}
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordOrderCreated increments the created-orders counter
func RecordOrderCreated() {
	if initialized {
		OrdersCreatedCounter.Inc()
	}
}

// RecordOrderFailure increments the failed-orders counter for the given reason
func RecordOrderFailure(reason string) {
	if initialized {
		OrderFailuresCounter.WithLabelValues(reason).Inc()
	}
}

// RecordStockDecrement increments the stock-decrement counter
func RecordStockDecrement() {
	if initialized {
		StockDecrementsCounter.Inc()
	}
}

// RecordInsufficientStock increments the insufficient-stock rejection counter
func RecordInsufficientStock() {
	if initialized {
		InsufficientStockCounter.Inc()
	}
}

// RecordSubscriptionOperation increments the counter for subscription operations
func RecordSubscriptionOperation(operation string) {
	if initialized {
		SubscriptionOperationsCounter.WithLabelValues(operation).Inc()
	}
}

// RecordLimitDenial increments the counter for subscription limit denials
func RecordLimitDenial(limit string) {
	if initialized {
		LimitDenialsCounter.WithLabelValues(limit).Inc()
	}
}

// RecordAuthAttempt increments the authentication attempt counter
func RecordAuthAttempt() {
	if initialized {
		AuthAttemptsCounter.Inc()
	}
}

// RecordAuthSuccess increments the successful authentication counter
func RecordAuthSuccess() {
	if initialized {
		AuthSuccessCounter.Inc()
	}
}

// RecordAuthError increments the authentication error counter
func RecordAuthError() {
	if initialized {
		AuthErrorsCounter.Inc()
	}
}
