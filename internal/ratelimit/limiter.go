package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/driftcase/rainpot/internal/common/clock"
)

const (
	// DefaultGracePeriod is how long a key stays marked in flight after
	// being accepted
	DefaultGracePeriod = 100 * time.Millisecond

	// DefaultMinDelay applies to action kinds without a configured delay
	DefaultMinDelay = time.Second
)

// Config holds configuration for the limiter
type Config struct {
	// MinDelays maps an action kind to its minimum delay between
	// accepted calls
	MinDelays map[string]time.Duration

	// DefaultMinDelay is the fallback for unmapped action kinds
	DefaultMinDelay time.Duration

	// GracePeriod is how long an accepted key stays in flight
	GracePeriod time.Duration

	// Clock source
	Clock clock.Clock
}

// Limiter is a best-effort, in-memory debounce guard keyed by
// (identity, action). It is not persisted and not shared across
// instances.
type Limiter struct {
	minDelays       map[string]time.Duration
	defaultMinDelay time.Duration
	gracePeriod     time.Duration
	clock           clock.Clock

	mu           sync.Mutex
	lastAccepted map[string]time.Time
	inFlight     map[string]bool
}

// New creates a new limiter
func New(cfg *Config) (*Limiter, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	defaultMinDelay := cfg.DefaultMinDelay
	if defaultMinDelay <= 0 {
		defaultMinDelay = DefaultMinDelay
	}

	gracePeriod := cfg.GracePeriod
	if gracePeriod <= 0 {
		gracePeriod = DefaultGracePeriod
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	minDelays := make(map[string]time.Duration, len(cfg.MinDelays))
	for action, delay := range cfg.MinDelays {
		minDelays[action] = delay
	}

	return &Limiter{
		minDelays:       minDelays,
		defaultMinDelay: defaultMinDelay,
		gracePeriod:     gracePeriod,
		clock:           clk,
		lastAccepted:    make(map[string]time.Time),
		inFlight:        make(map[string]bool),
	}, nil
}

// IsAllowed reports whether the action should be processed. An accepted
// key is recorded before the caller's work runs, so a concurrent
// duplicate arriving inside the grace period is rejected.
func (l *Limiter) IsAllowed(identity, action string) bool {
	key := fmt.Sprintf("%s:%s", identity, action)

	minDelay, ok := l.minDelays[action]
	if !ok {
		minDelay = l.defaultMinDelay
	}

	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inFlight[key] {
		return false
	}

	if last, ok := l.lastAccepted[key]; ok && now.Sub(last) < minDelay {
		return false
	}

	l.inFlight[key] = true
	l.lastAccepted[key] = now

	time.AfterFunc(l.gracePeriod, func() {
		l.mu.Lock()
		delete(l.inFlight, key)
		l.mu.Unlock()
	})

	return true
}
