// Package conversation owns the per-user dialogue state: the ordered turn
// history sent to the language model and the trip facts accumulated across
// the conversation. State lives for the process lifetime only.
package conversation

import (
	"github.com/flemzord/wattsup/internal/provider"
	"github.com/flemzord/wattsup/internal/trip"
)

// Default truncation policy: once a history exceeds MaxTurns entries, it is
// cut back to the system turn plus the KeepRecent most recent turns. The
// numbers are tunable policy, not contract; the system turn staying at
// index 0 and causal ordering are.
const (
	DefaultMaxTurns   = 30
	DefaultKeepRecent = 28
)

// Store manages conversation state keyed by user.
// Implementations must be safe for concurrent use.
type Store interface {
	// Reset (re)initializes the user's history to just the system turn and
	// clears the trip facts. Invoked on an explicit start command.
	Reset(userID string)

	// Ensure lazily initializes state on first contact. Idempotent.
	Ensure(userID string)

	// Exists reports whether the user has any recorded state.
	Exists(userID string) bool

	// History returns a copy of the user's turn history, system turn first.
	// Returns nil for unknown users.
	History(userID string) []provider.LLMMessage

	// Facts returns a copy of the user's accumulated trip facts.
	Facts(userID string) trip.Facts

	// SetFacts replaces the user's trip facts. The caller is expected to
	// pass a merge of the previous facts (first mention wins is enforced
	// by the extractor, not the store).
	SetFacts(userID string, facts trip.Facts)

	// AppendExchange appends the user turn then the assistant turn, in
	// order, and enforces the truncation policy. Both turns land atomically
	// with respect to other Store calls.
	AppendExchange(userID string, userTurn, assistantTurn provider.LLMMessage)

	// Len returns the number of tracked conversations.
	Len() int
}
