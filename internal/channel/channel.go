// Package channel defines the bridge between messaging platforms and the bot.
package channel

import (
	"context"

	"github.com/flemzord/wattsup/internal/core"
	"github.com/flemzord/wattsup/pkg/message"
)

// Channel is the bridge between a messaging platform and the bot.
// Every concrete channel (Telegram is the only one shipped) must implement
// this interface.
//
// A channel receives messages from its platform and pushes them to the bot
// via the inbox callback. It also receives outbound messages from the bot
// via Send().
type Channel interface {
	core.Module

	// Send delivers an outbound message to the platform.
	Send(ctx context.Context, msg message.OutboundMessage) error

	// SetInbox gives the channel a function to push inbound messages to the
	// bot. The wiring calls this before Start().
	SetInbox(fn func(msg message.InboundMessage) error)
}

// TypingChannel is an optional interface for channels that can show a
// "typing" indicator while a reply is being generated.
type TypingChannel interface {
	SendTyping(ctx context.Context, chat message.Chat) error
}
