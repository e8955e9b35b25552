// Package telegram implements the Telegram Bot API channel.
//
// It provides a bidirectional bridge between Telegram and the
// platform-agnostic message model:
//
//   - Inbound text message conversion via long polling
//   - Outbound message dispatch with automatic chunking at the API limit
//   - Typing indicators via sendChatAction
//
// The module registers itself as "channel.telegram" via init() and implements
// the full module lifecycle: Configure → Provision → Validate → Start → Stop.
//
// No external Telegram library is used — the module communicates with the
// Bot API via raw net/http + encoding/json. Failed API calls are never
// retried; a lost update or reply is accepted over a duplicated one.
package telegram
