package telegram

import (
	"strings"
	"testing"

	"github.com/flemzord/wattsup/pkg/message"
)

func TestConvertInbound(t *testing.T) {
	t.Parallel()

	update := &Update{
		UpdateID: 100,
		Message: &Message{
			MessageID: 55,
			Date:      1700000000,
			Text:      "Tesla Model 3, еду из Минска в Москву",
			From: &User{
				ID:        777,
				FirstName: "Иван",
				LastName:  "Петров",
				Username:  "ivan",
			},
			Chat: Chat{ID: 777, Type: "private"},
		},
	}

	msg, err := convertInbound(update, "channel.telegram")
	if err != nil {
		t.Fatalf("convertInbound() error: %v", err)
	}

	if msg.ID != "55" {
		t.Errorf("ID = %q, want %q", msg.ID, "55")
	}
	if msg.Channel != "channel.telegram" {
		t.Errorf("Channel = %q", msg.Channel)
	}
	if msg.Sender.ID != "777" {
		t.Errorf("Sender.ID = %q, want %q", msg.Sender.ID, "777")
	}
	if msg.Sender.DisplayName != "Иван Петров" {
		t.Errorf("Sender.DisplayName = %q", msg.Sender.DisplayName)
	}
	if msg.Chat.Type != message.ChatDM {
		t.Errorf("Chat.Type = %q, want %q", msg.Chat.Type, message.ChatDM)
	}
	if msg.Text != "Tesla Model 3, еду из Минска в Москву" {
		t.Errorf("Text = %q", msg.Text)
	}
	if msg.Timestamp.Unix() != 1700000000 {
		t.Errorf("Timestamp = %v", msg.Timestamp)
	}
}

func TestConvertInbound_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		update *Update
	}{
		{"no message", &Update{UpdateID: 1}},
		{"no text", &Update{UpdateID: 2, Message: &Message{MessageID: 3, Chat: Chat{ID: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := convertInbound(tt.update, "channel.telegram"); err == nil {
				t.Error("convertInbound() = nil error, want rejection")
			}
		})
	}
}

func TestMapChatType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tgType string
		want   message.ChatType
	}{
		{"private", message.ChatDM},
		{"group", message.ChatGroup},
		{"supergroup", message.ChatGroup},
		{"channel", message.ChatGroup},
	}

	for _, tt := range tests {
		if got := mapChatType(tt.tgType); got != tt.want {
			t.Errorf("mapChatType(%q) = %q, want %q", tt.tgType, got, tt.want)
		}
	}
}

func TestSplitText(t *testing.T) {
	t.Parallel()

	t.Run("short text unchanged", func(t *testing.T) {
		t.Parallel()
		chunks := splitText("привет", 4096)
		if len(chunks) != 1 || chunks[0] != "привет" {
			t.Errorf("splitText() = %v", chunks)
		}
	})

	t.Run("splits on newline", func(t *testing.T) {
		t.Parallel()
		text := strings.Repeat("с", 60) + "\n" + strings.Repeat("д", 60)
		chunks := splitText(text, 100)
		if len(chunks) != 2 {
			t.Fatalf("chunk count = %d, want 2", len(chunks))
		}
		if !strings.HasSuffix(chunks[0], "\n") {
			t.Errorf("first chunk does not end at newline: %q", chunks[0])
		}
		if got := chunks[0] + chunks[1]; got != text {
			t.Error("chunks do not reassemble the original text")
		}
	})

	t.Run("hard split without newline", func(t *testing.T) {
		t.Parallel()
		text := strings.Repeat("ы", 250)
		chunks := splitText(text, 100)
		if len(chunks) != 3 {
			t.Fatalf("chunk count = %d, want 3", len(chunks))
		}
		for i, c := range chunks {
			if n := len([]rune(c)); n > 100 {
				t.Errorf("chunk %d length = %d runes, want <= 100", i, n)
			}
		}
		if got := strings.Join(chunks, ""); got != text {
			t.Error("chunks do not reassemble the original text")
		}
	})
}
