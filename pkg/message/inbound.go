package message

import "time"

// InboundMessage represents a text message received from a channel.
type InboundMessage struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Channel   string    `json:"channel"`
	Sender    Sender    `json:"sender"`
	Chat      Chat      `json:"chat"`
	Text      string    `json:"text"`
}

// IsCommand reports whether the message text is the given slash command,
// optionally suffixed with a bot mention ("/start@wattsup_bot").
func (m *InboundMessage) IsCommand(name string) bool {
	text := m.Text
	if text == "" || text[0] != '/' {
		return false
	}
	// Strip leading slash and any @mention suffix.
	cmd := text[1:]
	for i := 0; i < len(cmd); i++ {
		if cmd[i] == '@' || cmd[i] == ' ' {
			cmd = cmd[:i]
			break
		}
	}
	return cmd == name
}
