package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	chatRequestsTotal   prometheus.Counter
	chatPromptBytes     prometheus.Histogram
	discoveryRegistered *prometheus.GaugeVec
	discoveryAttempts   *prometheus.CounterVec
}

const (
	prefix = "chats_"
)

func newMetrics(reg *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "http_requests_total",
			Help: "Number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		chatRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "chat_requests_total",
			Help: "Number of chat prompts received",
		}),
		chatPromptBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "chat_prompt_bytes",
			Help:    "Size of received chat prompts in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		}),
		discoveryRegistered: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "discovery_registered",
			Help: "Registration status per discovery backend (1: registered, 0: not registered)",
		}, []string{"backend"}),
		discoveryAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "discovery_registrations_total",
			Help: "Registration attempts per discovery backend and result",
		}, []string{"backend", "result"}),
	}

	err := register(reg,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.chatRequestsTotal,
		m.chatPromptBytes,
		m.discoveryRegistered,
		m.discoveryAttempts,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register(r *prometheus.Registry, cs ...prometheus.Collector) error {
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, c := range cs[:i] {
				r.Unregister(c)
			}

			return err
		}
	}

	return nil
}
