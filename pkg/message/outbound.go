package message

// OutboundMessage represents a text message to be sent through a channel.
type OutboundMessage struct {
	Channel string `json:"channel"`
	Chat    Chat   `json:"chat"`
	Text    string `json:"text"`
}

// NewTextMessage creates an outbound message addressed to the same channel
// and chat the inbound message arrived from.
func NewTextMessage(in InboundMessage, text string) OutboundMessage {
	return OutboundMessage{
		Channel: in.Channel,
		Chat:    in.Chat,
		Text:    text,
	}
}
