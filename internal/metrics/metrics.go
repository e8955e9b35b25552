// Package metrics groups the Prometheus instruments exposed via the gateway.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the bot.
type Metrics struct {
	registry *prometheus.Registry

	MessagesTotal       prometheus.Counter
	RepliesTotal        prometheus.Counter
	RefusalsTotal       prometheus.Counter
	ProviderFailures    *prometheus.CounterVec
	AugmentationsTotal  prometheus.Counter
	LookupErrorsTotal   prometheus.Counter
	ActiveConversations prometheus.Gauge
	ReplyLatency        prometheus.Histogram
}

// New creates the instrument set on a dedicated registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		MessagesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Inbound messages received from channels.",
		}),
		RepliesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_total",
			Help:      "Replies successfully sent back to users.",
		}),
		RefusalsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refusals_total",
			Help:      "Messages refused as off-topic for first-time users.",
		}),
		ProviderFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_failures_total",
			Help:      "Completion failures by reason.",
		}, []string{"reason"}),
		AugmentationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "augmentations_total",
			Help:      "Replies supplemented with charging station listings.",
		}),
		LookupErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_errors_total",
			Help:      "Failed geocoding or station lookups.",
		}),
		ActiveConversations: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_conversations",
			Help:      "Number of tracked conversations.",
		}),
		ReplyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reply_latency_seconds",
			Help:      "Time from inbound message to sent reply.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		}),
	}
}

// ObserveReplyLatency records the duration of a full reply cycle.
func (m *Metrics) ObserveReplyLatency(d time.Duration) {
	m.ReplyLatency.Observe(d.Seconds())
}

// Handler returns the scrape endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
