package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestServer_Handler(t *testing.T) {
	t.Parallel()

	HTTPRequestLog("GET /v1/{chain}/{network}/accounts", http.StatusOK, 3*time.Millisecond)
	DatasetLoadLog("accounts", 12, time.Millisecond)
	DatasetLoadErrorInc("codes", "not_found")
	EntityAggregatedInc(false)
	UpdateSystemMetrics()

	srv := NewServer(&config.MetricsConfig{Enabled: true, ListenAddress: ":0", Path: "/metrics"}, logger.NewNopLogger())

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `aldus_http_requests_total{route="GET /v1/{chain}/{network}/accounts",status="200"}`)
	require.Contains(t, body, `aldus_dataset_load_errors_total{dataset="codes",reason="not_found"}`)
	require.Contains(t, body, `aldus_entities_aggregated_total{outcome="excluded"}`)
	require.Contains(t, body, "aldus_uptime_seconds")

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestServer_RunDisabled(t *testing.T) {
	t.Parallel()

	srv := NewServer(&config.MetricsConfig{Enabled: false, ListenAddress: ":0", Path: "/metrics"}, logger.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, srv.Run(ctx))
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := NewServer(&config.MetricsConfig{Enabled: true, ListenAddress: "127.0.0.1:0", Path: "/metrics"}, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("metrics server did not stop after cancel")
	}
}
