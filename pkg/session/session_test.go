package session_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/dmitrymomot/sitekit/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := session.New(30*time.Minute, "test-secret")
	require.NoError(t, err)

	assert.NotEmpty(t, s.Token)
	assert.False(t, s.IsExpired())
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), s.ExpiresAt, time.Second)
	assert.Empty(t, s.Interactions())

	other, err := session.New(30*time.Minute, "test-secret")
	require.NoError(t, err)
	assert.NotEqual(t, s.Token, other.Token)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	s, err := session.New(time.Hour, "secret")
	require.NoError(t, err)
	assert.False(t, s.IsExpired())

	s.ExpiresAt = time.Now().Add(-time.Second)
	assert.True(t, s.IsExpired())

	s.Touch(time.Hour)
	assert.False(t, s.IsExpired())
}

func TestSession_LogInteraction(t *testing.T) {
	t.Parallel()

	t.Run("appends in order", func(t *testing.T) {
		t.Parallel()
		s, err := session.New(time.Hour, "secret")
		require.NoError(t, err)

		s.LogInteraction("click", "nav-services")
		s.LogInteraction("submit", "contact-form")

		log := s.Interactions()
		require.Len(t, log, 2)
		assert.Equal(t, "click", log[0].Kind)
		assert.Equal(t, "nav-services", log[0].Target)
		assert.Equal(t, "submit", log[1].Kind)
		assert.False(t, log[0].At.IsZero())
	})

	t.Run("evicts oldest at capacity", func(t *testing.T) {
		t.Parallel()
		s, err := session.New(time.Hour, "secret")
		require.NoError(t, err)

		for i := 0; i < session.InteractionLogCapacity+10; i++ {
			s.LogInteraction("scroll", fmt.Sprintf("event-%d", i))
		}

		log := s.Interactions()
		require.Len(t, log, session.InteractionLogCapacity)
		assert.Equal(t, "event-10", log[0].Target)
		assert.Equal(t, fmt.Sprintf("event-%d", session.InteractionLogCapacity+9), log[len(log)-1].Target)
	})

	t.Run("interactions returns a copy", func(t *testing.T) {
		t.Parallel()
		s, err := session.New(time.Hour, "secret")
		require.NoError(t, err)
		s.LogInteraction("click", "a")

		log := s.Interactions()
		log[0].Target = "mutated"
		assert.Equal(t, "a", s.Interactions()[0].Target)
	})

	t.Run("nil session tolerated", func(t *testing.T) {
		t.Parallel()
		var s *session.Session
		assert.NotPanics(t, func() { s.LogInteraction("click", "x") })
		assert.Nil(t, s.Interactions())
		assert.True(t, s.IsExpired())
	})
}

func TestTokens(t *testing.T) {
	t.Parallel()

	token, err := session.GenerateToken("secret")
	require.NoError(t, err)
	assert.Contains(t, token, ".")

	assert.True(t, session.VerifyToken(token, "secret"))
	assert.False(t, session.VerifyToken(token, "other-secret"))
	assert.False(t, session.VerifyToken("garbage", "secret"))
	assert.False(t, session.VerifyToken("a.b", "secret"))
	assert.False(t, session.VerifyToken("", "secret"))

	// Tampered payload fails the tag check.
	replacement := byte('A')
	if token[0] == replacement {
		replacement = 'B'
	}
	tampered := string(replacement) + token[1:]
	assert.False(t, session.VerifyToken(tampered, "secret"))
}
