package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Action Metrics
var (
	ActionsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameActionsRegistered,
			Help: HelpTextActionsRegistered,
		},
	)

	ActionsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActionsStored,
			Help: HelpTextActionsStored,
		},
	)

	ClicksHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClicksHandled,
			Help: HelpTextClicksHandled,
		},
		[]string{LabelOutcome},
	)

	CallbackPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCallbackPanics,
			Help: HelpTextCallbackPanics,
		},
	)
)

// RecordClick counts one handled click
func RecordClick(outcome string) {
	ClicksHandled.WithLabelValues(outcome).Inc()
}
