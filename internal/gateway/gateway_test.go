package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flemzord/wattsup/internal/conversation"
	"github.com/flemzord/wattsup/internal/metrics"
	"github.com/flemzord/wattsup/internal/provider"
)

func testGateway(store conversation.Store, m *metrics.Metrics) *Gateway {
	g := &Gateway{
		logger:    slog.New(slog.DiscardHandler),
		store:     store,
		metrics:   m,
		startedAt: time.Now().Add(-90 * time.Second),
	}
	g.config.defaults()
	return g
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	store := conversation.NewInMemoryStore("s")
	store.Ensure("u1")
	store.Ensure("u2")

	g := testGateway(store, metrics.New("test"))
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("Status = %q, want ok", health.Status)
	}
	if health.Conversations != 2 {
		t.Errorf("Conversations = %d, want 2", health.Conversations)
	}
}

func TestStatusEndpoint(t *testing.T) {
	t.Parallel()

	g := testGateway(conversation.NewInMemoryStore("s"), metrics.New("test"))
	g.provider = staticProvider{}
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status: %v", err)
	}
	defer resp.Body.Close()

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Model != "gpt-4.1-mini" {
		t.Errorf("Model = %q", status.Model)
	}
	if status.UptimeSeconds < 90 {
		t.Errorf("UptimeSeconds = %d, want >= 90", status.UptimeSeconds)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	m := metrics.New("wattsup")
	m.MessagesTotal.Inc()

	g := testGateway(conversation.NewInMemoryStore("s"), m)
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

type staticProvider struct{}

func (staticProvider) Complete(_ context.Context, _ provider.CompletionRequest) (provider.CompletionResponse, error) {
	return provider.CompletionResponse{}, nil
}

func (staticProvider) ModelName() string { return "gpt-4.1-mini" }
