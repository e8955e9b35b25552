package conversation

import (
	"sync"

	"github.com/flemzord/wattsup/internal/provider"
	"github.com/flemzord/wattsup/internal/trip"
)

// userState holds the history and facts for a single user.
type userState struct {
	history []provider.LLMMessage
	facts   trip.Facts
}

// InMemoryStore is a thread-safe, in-memory implementation of Store.
// Conversations are never evicted; they live as long as the process.
type InMemoryStore struct {
	systemPrompt string
	maxTurns     int
	keepRecent   int

	mu    sync.RWMutex
	users map[string]*userState
}

// Option tunes an InMemoryStore.
type Option func(*InMemoryStore)

// WithTruncation overrides the default truncation thresholds.
func WithTruncation(maxTurns, keepRecent int) Option {
	return func(s *InMemoryStore) {
		s.maxTurns = maxTurns
		s.keepRecent = keepRecent
	}
}

// NewInMemoryStore creates an empty store. Every conversation starts with
// systemPrompt as its first turn.
func NewInMemoryStore(systemPrompt string, opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		systemPrompt: systemPrompt,
		maxTurns:     DefaultMaxTurns,
		keepRecent:   DefaultKeepRecent,
		users:        make(map[string]*userState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compile-time interface check.
var _ Store = (*InMemoryStore)(nil)

func (s *InMemoryStore) freshState() *userState {
	return &userState{
		history: []provider.LLMMessage{{
			Role:    provider.MessageRoleSystem,
			Content: s.systemPrompt,
		}},
		facts: trip.NewFacts(),
	}
}

// Reset (re)initializes the user's state to just the system turn.
func (s *InMemoryStore) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = s.freshState()
}

// Ensure lazily initializes state on first contact.
func (s *InMemoryStore) Ensure(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		s.users[userID] = s.freshState()
	}
}

// Exists reports whether the user has any recorded state.
func (s *InMemoryStore) Exists(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok
}

// History returns a copy of the user's turn history.
func (s *InMemoryStore) History(userID string) []provider.LLMMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.users[userID]
	if !ok {
		return nil
	}
	result := make([]provider.LLMMessage, len(st.history))
	copy(result, st.history)
	return result
}

// Facts returns a copy of the user's trip facts.
func (s *InMemoryStore) Facts(userID string) trip.Facts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.users[userID]
	if !ok {
		return trip.NewFacts()
	}
	return st.facts.Clone()
}

// SetFacts replaces the user's trip facts.
func (s *InMemoryStore) SetFacts(userID string, facts trip.Facts) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.users[userID]
	if !ok {
		st = s.freshState()
		s.users[userID] = st
	}
	st.facts = facts.Clone()
}

// AppendExchange appends both turns in order, then truncates if needed.
func (s *InMemoryStore) AppendExchange(userID string, userTurn, assistantTurn provider.LLMMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.users[userID]
	if !ok {
		st = s.freshState()
		s.users[userID] = st
	}

	st.history = append(st.history, userTurn, assistantTurn)

	if len(st.history) > s.maxTurns {
		truncated := make([]provider.LLMMessage, 0, s.keepRecent+1)
		truncated = append(truncated, st.history[0])
		truncated = append(truncated, st.history[len(st.history)-s.keepRecent:]...)
		st.history = truncated
	}
}

// Len returns the number of tracked conversations.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
