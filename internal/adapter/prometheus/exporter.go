package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Exporter struct {
	reg     *prometheus.Registry
	metrics *metrics
}

func NewExporter() (*Exporter, error) {
	reg := prometheus.NewRegistry()

	err := register(reg,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err != nil {
		return nil, err
	}

	metrics, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		reg:     reg,
		metrics: metrics,
	}, nil
}

func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.reg, promhttp.HandlerOpts{Registry: e.reg})
}

// ObserveHTTPRequest records a served request. route is the matched pattern, never the raw path.
func (e *Exporter) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	e.metrics.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	e.metrics.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
