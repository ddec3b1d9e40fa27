package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time forward without sleeping through the
// configured delays.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, clk *fakeClock) *Limiter {
	t.Helper()

	limiter, err := New(&Config{
		MinDelays: map[string]time.Duration{
			"tip":  2 * time.Second,
			"join": time.Second,
		},
		GracePeriod: 20 * time.Millisecond,
		Clock:       clk,
	})
	require.NoError(t, err)

	return limiter
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestIsAllowedDebouncesSameKey(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(t, clk)

	assert.True(t, limiter.IsAllowed("user-1", "tip"))

	// Wait out the grace period so only the delay applies.
	time.Sleep(50 * time.Millisecond)

	clk.Advance(500 * time.Millisecond)
	assert.False(t, limiter.IsAllowed("user-1", "tip"))

	clk.Advance(2 * time.Second)
	assert.True(t, limiter.IsAllowed("user-1", "tip"))
}

func TestIsAllowedRejectsInFlightDuplicate(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(t, clk)

	assert.True(t, limiter.IsAllowed("user-1", "join"))

	// Even past the min delay the key is still in flight until the
	// grace period clears it.
	clk.Advance(5 * time.Second)
	assert.False(t, limiter.IsAllowed("user-1", "join"))

	time.Sleep(50 * time.Millisecond)
	assert.True(t, limiter.IsAllowed("user-1", "join"))
}

func TestIsAllowedKeysAreIndependent(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(t, clk)

	assert.True(t, limiter.IsAllowed("user-1", "tip"))
	assert.True(t, limiter.IsAllowed("user-2", "tip"))
	assert.True(t, limiter.IsAllowed("user-1", "join"))
}

func TestIsAllowedUsesDefaultDelayForUnmappedAction(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(t, clk)

	assert.True(t, limiter.IsAllowed("user-1", "unmapped"))

	time.Sleep(50 * time.Millisecond)

	clk.Advance(500 * time.Millisecond)
	assert.False(t, limiter.IsAllowed("user-1", "unmapped"))

	clk.Advance(600 * time.Millisecond)
	assert.True(t, limiter.IsAllowed("user-1", "unmapped"))
}

func TestIsAllowedConcurrentBurstAcceptsOne(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(t, clk)

	const workers = 16

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.IsAllowed("user-1", "tip") {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
}
