package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestGetMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTEST_TOKEN/getMe" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		writeJSON(t, w, APIResponse[User]{
			OK: true,
			Result: User{
				ID:        123,
				IsBot:     true,
				FirstName: "WattsUp",
				Username:  "wattsup_bot",
			},
		})
	}))
	defer srv.Close()

	client := NewClient("TEST_TOKEN", srv.URL)
	user, err := client.GetMe(context.Background())
	if err != nil {
		t.Fatalf("GetMe() error: %v", err)
	}
	if user.ID != 123 {
		t.Errorf("ID = %d, want 123", user.ID)
	}
	if user.Username != "wattsup_bot" {
		t.Errorf("Username = %q, want %q", user.Username, "wattsup_bot")
	}
}

func TestSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTEST_TOKEN/sendMessage" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ChatID != 42 {
			t.Errorf("ChatID = %d, want 42", req.ChatID)
		}
		if req.Text != "привет" {
			t.Errorf("Text = %q, want %q", req.Text, "привет")
		}

		writeJSON(t, w, APIResponse[Message]{
			OK:     true,
			Result: Message{MessageID: 7, Text: req.Text},
		})
	}))
	defer srv.Close()

	client := NewClient("TEST_TOKEN", srv.URL)
	msg, err := client.SendMessage(context.Background(), SendMessageRequest{ChatID: 42, Text: "привет"})
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if msg.MessageID != 7 {
		t.Errorf("MessageID = %d, want 7", msg.MessageID)
	}
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(t, w, APIResponse[Message]{
			OK:          false,
			ErrorCode:   400,
			Description: "Bad Request: chat not found",
		})
	}))
	defer srv.Close()

	client := NewClient("TEST_TOKEN", srv.URL)
	_, err := client.SendMessage(context.Background(), SendMessageRequest{ChatID: 1, Text: "x"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Code != 400 {
		t.Errorf("Code = %d, want 400", apiErr.Code)
	}
}

func TestRateLimitNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		writeJSON(t, w, APIResponse[Message]{
			OK:          false,
			ErrorCode:   429,
			Description: "Too Many Requests",
			Parameters:  &ResponseParameters{RetryAfter: 5},
		})
	}))
	defer srv.Close()

	client := NewClient("TEST_TOKEN", srv.URL)
	_, err := client.SendMessage(context.Background(), SendMessageRequest{ChatID: 1, Text: "x"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.RetryAfter != 5 {
		t.Errorf("RetryAfter = %d, want 5", apiErr.RetryAfter)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("request count = %d, want exactly 1 (no retries)", got)
	}
}
