package scheduler

import (
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/driftcase/rainpot/internal/common/scheduler Scheduler,Canceler

// Canceler stops a scheduled task. Cancel reports whether the task was
// still pending when it was stopped.
type Canceler interface {
	Cancel() bool
}

// Scheduler abstracts timer-driven execution so tests can substitute a
// fake and advance virtual time deterministically.
type Scheduler interface {
	// RunEvery invokes fn on a fixed interval until cancelled
	RunEvery(interval time.Duration, fn func()) Canceler

	// RunAfter invokes fn once after the delay unless cancelled first
	RunAfter(delay time.Duration, fn func()) Canceler
}

// DefaultScheduler implements the Scheduler interface using real timers
type DefaultScheduler struct{}

// New creates a new real-time scheduler
func New() *DefaultScheduler {
	return &DefaultScheduler{}
}

// RunEvery starts a ticker goroutine invoking fn on each tick
func (s *DefaultScheduler) RunEvery(interval time.Duration, fn func()) Canceler {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	return &tickerCanceler{ticker: ticker, done: done}
}

// RunAfter arms a one-shot timer for fn
func (s *DefaultScheduler) RunAfter(delay time.Duration, fn func()) Canceler {
	return &timerCanceler{timer: time.AfterFunc(delay, fn)}
}

type tickerCanceler struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (c *tickerCanceler) Cancel() bool {
	cancelled := false
	c.once.Do(func() {
		c.ticker.Stop()
		close(c.done)
		cancelled = true
	})
	return cancelled
}

type timerCanceler struct {
	timer *time.Timer
}

func (c *timerCanceler) Cancel() bool {
	return c.timer.Stop()
}
