package session

import (
	"time"

	"github.com/google/uuid"
)

// InteractionLogCapacity bounds the per-session interaction log; the oldest
// entry is evicted first once the log is full.
const InteractionLogCapacity = 100

// Interaction is one logged user action.
type Interaction struct {
	Kind   string
	Target string
	At     time.Time
}

// Session tracks one page visit: an opaque token, a TTL and a bounded log
// of interactions. Sessions live for the page lifetime only and are never
// persisted.
//
// A Session is not safe for concurrent use; it belongs to the host's event
// loop, which serializes every mutation.
type Session struct {
	ID        uuid.UUID
	Token     string
	StartedAt time.Time
	ExpiresAt time.Time

	interactions []Interaction
}

// New creates a session with a fresh token expiring after ttl.
func New(ttl time.Duration, secret string) (*Session, error) {
	token, err := GenerateToken(secret)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Token:     token,
		StartedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired reports whether the session TTL has passed. A nil session is
// expired, never valid.
func (s *Session) IsExpired() bool {
	return s == nil || time.Now().After(s.ExpiresAt)
}

// Touch extends the session by ttl from now.
func (s *Session) Touch(ttl time.Duration) {
	if s == nil {
		return
	}
	s.ExpiresAt = time.Now().Add(ttl)
}

// LogInteraction appends to the interaction log, evicting the oldest entry
// when the log is at capacity.
func (s *Session) LogInteraction(kind, target string) {
	if s == nil {
		return
	}

	if len(s.interactions) >= InteractionLogCapacity {
		s.interactions = append(s.interactions[:0], s.interactions[1:]...)
	}
	s.interactions = append(s.interactions, Interaction{
		Kind:   kind,
		Target: target,
		At:     time.Now(),
	})
}

// Interactions returns a copy of the interaction log, oldest first.
func (s *Session) Interactions() []Interaction {
	if s == nil {
		return nil
	}
	out := make([]Interaction, len(s.interactions))
	copy(out, s.interactions)
	return out
}
