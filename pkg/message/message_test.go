package message_test

import (
	"testing"

	"github.com/flemzord/wattsup/pkg/message"
)

func TestInboundMessage_IsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		name string
		want bool
	}{
		{"/start", "start", true},
		{"/start@wattsup_bot", "start", true},
		{"/start trip", "start", true},
		{"/stop", "start", false},
		{"start", "start", false},
		{"", "start", false},
		{"/started", "start", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			m := message.InboundMessage{Text: tt.text}
			if got := m.IsCommand(tt.name); got != tt.want {
				t.Errorf("IsCommand(%q) on %q = %v, want %v", tt.name, tt.text, got, tt.want)
			}
		})
	}
}

func TestNewTextMessage(t *testing.T) {
	t.Parallel()

	in := message.InboundMessage{
		Channel: "channel.telegram",
		Chat:    message.Chat{ID: "42", Type: message.ChatDM},
	}
	out := message.NewTextMessage(in, "hello")

	if out.Channel != in.Channel {
		t.Errorf("Channel = %q, want %q", out.Channel, in.Channel)
	}
	if out.Chat != in.Chat {
		t.Errorf("Chat = %+v, want %+v", out.Chat, in.Chat)
	}
	if out.Text != "hello" {
		t.Errorf("Text = %q, want %q", out.Text, "hello")
	}
}
