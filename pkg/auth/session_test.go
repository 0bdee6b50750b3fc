package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()

	store.Put("token-1", Session{UserID: 1, ExpiresAt: time.Now().Add(time.Hour)})

	session, ok := store.Get("token-1")
	assert.True(t, ok)
	assert.EqualValues(t, 1, session.UserID)

	_, ok = store.Get("unknown")
	assert.False(t, ok)

	store.Delete("token-1")
	_, ok = store.Get("token-1")
	assert.False(t, ok)
}

func TestMemorySessionStore_ExpiryOnRead(t *testing.T) {
	store := NewMemorySessionStore()

	store.Put("stale", Session{UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)})

	_, ok := store.Get("stale")
	assert.False(t, ok)

	// the read dropped the entry, not just hid it
	store.mu.Lock()
	_, exists := store.sessions["stale"]
	store.mu.Unlock()
	assert.False(t, exists)
}

func TestMemorySessionStore_Sweep(t *testing.T) {
	store := NewMemorySessionStore()

	store.Put("live", Session{UserID: 1, ExpiresAt: time.Now().Add(time.Hour)})
	store.Put("dead", Session{UserID: 2, ExpiresAt: time.Now().Add(-time.Minute)})

	store.Sweep()

	store.mu.Lock()
	count := len(store.sessions)
	store.mu.Unlock()
	assert.Equal(t, 1, count)

	_, ok := store.Get("live")
	assert.True(t, ok)
}

func TestMemorySessionStore_Sweeper(t *testing.T) {
	store := NewMemorySessionStore()
	store.Put("dead", Session{UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)})

	stop := store.StartSweeper(10 * time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.sessions) == 0
	}, time.Second, 10*time.Millisecond)
}
