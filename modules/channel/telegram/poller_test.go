package telegram

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/flemzord/wattsup/pkg/message"
)

func TestPoller_DeliversUpdatesAndAdvancesOffset(t *testing.T) {
	var mu sync.Mutex
	var offsets []int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GetUpdatesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode getUpdates request: %v", err)
		}

		mu.Lock()
		offsets = append(offsets, req.Offset)
		first := len(offsets) == 1
		mu.Unlock()

		if !first {
			// Block subsequent polls until the test shuts down.
			time.Sleep(50 * time.Millisecond)
			writeJSON(t, w, APIResponse[[]Update]{OK: true, Result: []Update{}})
			return
		}

		writeJSON(t, w, APIResponse[[]Update]{
			OK: true,
			Result: []Update{
				{
					UpdateID: 10,
					Message: &Message{
						MessageID: 1,
						Date:      1700000000,
						Text:      "сколько зарядки хватит",
						From:      &User{ID: 5},
						Chat:      Chat{ID: 5, Type: "private"},
					},
				},
				{UpdateID: 11}, // no message, skipped
			},
		})
	}))
	defer srv.Close()

	received := make(chan message.InboundMessage, 4)
	inbox := func(msg message.InboundMessage) error {
		received <- msg
		return nil
	}

	cfg := Config{}
	cfg.defaults()
	cfg.PollingTimeout = 0

	poller := NewPoller(NewClient("TEST_TOKEN", srv.URL), inbox, slog.New(slog.DiscardHandler), "channel.telegram", cfg)
	poller.Start()
	defer poller.Stop()

	select {
	case msg := <-received:
		if msg.Text != "сколько зарядки хватит" {
			t.Errorf("Text = %q", msg.Text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for inbound message")
	}

	// Only one of the two updates had a text message.
	select {
	case msg := <-received:
		t.Fatalf("unexpected second message: %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}

	mu.Lock()
	defer mu.Unlock()
	if len(offsets) < 2 {
		t.Fatalf("poll count = %d, want at least 2", len(offsets))
	}
	if offsets[0] != 0 {
		t.Errorf("first offset = %d, want 0", offsets[0])
	}
	// Both updates were consumed, so the next poll must ask past them.
	if offsets[1] != 12 {
		t.Errorf("second offset = %d, want 12", offsets[1])
	}
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, APIResponse[[]Update]{OK: true, Result: []Update{}})
	}))
	defer srv.Close()

	poller := NewPoller(
		NewClient("TEST_TOKEN", srv.URL),
		func(message.InboundMessage) error { return nil },
		slog.New(slog.DiscardHandler),
		"channel.telegram",
		Config{PollingTimeout: 0, APIURL: srv.URL},
	)
	poller.Start()

	done := make(chan struct{})
	go func() {
		poller.Stop()
		poller.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop() did not return")
	}
}
