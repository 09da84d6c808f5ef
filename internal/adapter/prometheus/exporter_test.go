package prometheus

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegistrationStatePublisher_PublishRegistered(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, "mdns", true)
	require.NoError(t, err)

	requireMetric(t, 1.0, exporter.metrics.discoveryRegistered.WithLabelValues("mdns"))
	requireMetric(t, 1.0, exporter.metrics.discoveryAttempts.WithLabelValues("mdns", "success"))
	requireMetric(t, 0.0, exporter.metrics.discoveryAttempts.WithLabelValues("mdns", "failure"))
}

func TestRegistrationStatePublisher_PublishFailureClearsGauge(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	require.NoError(t, publisher.Publish(ctx, "redis", true))
	require.NoError(t, publisher.Publish(ctx, "redis", false))

	requireMetric(t, 0.0, exporter.metrics.discoveryRegistered.WithLabelValues("redis"))
	requireMetric(t, 1.0, exporter.metrics.discoveryAttempts.WithLabelValues("redis", "success"))
	requireMetric(t, 1.0, exporter.metrics.discoveryAttempts.WithLabelValues("redis", "failure"))
}

func TestChatRequestRecorder_CountsPrompts(t *testing.T) {
	exporter, err := NewExporter()
	require.NoError(t, err)

	recorder := NewChatRequestRecorder(exporter)
	recorder.Record(context.Background(), 5)
	recorder.Record(context.Background(), 0)

	requireMetric(t, 2.0, exporter.metrics.chatRequestsTotal)
	require.Equal(t, 1, testutil.CollectAndCount(exporter.metrics.chatPromptBytes))
}

func TestExporter_HandlerServesRecordedMetrics(t *testing.T) {
	exporter, err := NewExporter()
	require.NoError(t, err)

	exporter.ObserveHTTPRequest(http.MethodPost, "/chatclient", http.StatusOK, 5*time.Millisecond)

	requireMetric(t, 1.0, exporter.metrics.httpRequestsTotal.WithLabelValues("POST", "/chatclient", "200"))

	rec := httptest.NewRecorder()
	exporter.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `chats_http_requests_total{method="POST",route="/chatclient",status="200"} 1`)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func newTestPublisher(t *testing.T) (*Exporter, *RegistrationStatePublisher) {
	t.Helper()

	exporter, err := NewExporter()
	require.NoError(t, err)

	publisher := NewRegistrationStatePublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), exporter)

	return exporter, publisher
}

func requireMetric(t *testing.T, expected float64, metric prometheus.Collector) {
	t.Helper()

	require.InDelta(t, expected, testutil.ToFloat64(metric), 0.001)
}
