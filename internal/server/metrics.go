package server

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Estimate outcomes recorded in tripcost_estimates_total.
const (
	outcomeSufficient  = "sufficient"
	outcomeOverBudget  = "over_budget"
	outcomeLookupError = "lookup_error"
	outcomeRangeError  = "range_error"
	outcomeBadRequest  = "bad_request"
)

// Metrics bundles the Prometheus collectors of the HTTP API.
type Metrics struct {
	gatherer prometheus.Gatherer

	Estimates       *prometheus.CounterVec
	GrandTotal      prometheus.Histogram
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the API metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	estimates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tripcost_estimates_total",
		Help: "Trip estimates handled, labeled by outcome.",
	}, []string{"outcome"})
	if err := register(reg, estimates); err != nil {
		return nil, err
	}

	grandTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tripcost_estimate_grand_total",
		Help:    "Grand total of successful estimates, in the configured currency.",
		Buckets: []float64{500, 1000, 2000, 3000, 5000, 7500, 10000, 15000, 20000, 30000},
	})
	if err := register(reg, grandTotal); err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tripcost_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "path", "status"})
	if err := register(reg, duration); err != nil {
		return nil, err
	}

	return &Metrics{
		gatherer:        gatherer,
		Estimates:       estimates,
		GrandTotal:      grandTotal,
		RequestDuration: duration,
	}, nil
}

// Handler exposes the registered metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func register(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return err
	}
	return nil
}
