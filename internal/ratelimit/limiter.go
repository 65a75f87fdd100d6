// Package ratelimit implements a per-identifier fixed-window request counter.
//
// A window opens on the first check for an identifier and lasts Window.
// Up to MaxRequests checks inside a window are admitted. Because windows are
// fixed, up to 2*MaxRequests checks can be admitted across a window boundary.
package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Config holds the limiter parameters.
type Config struct {
	MaxRequests int
	Window      time.Duration
}

// Result is the outcome of one Check.
type Result struct {
	Limited   bool
	Remaining int
	ResetTime time.Time
}

type counter struct {
	count   int
	resetAt time.Time
}

// Limiter is safe for concurrent use. Construct it with New; independent
// limiters do not share state.
type Limiter struct {
	cfg   Config
	clock clockwork.Clock

	mu       sync.Mutex
	counters map[string]*counter

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// New creates a Limiter. A nil clock uses the real clock.
func New(cfg Config, clock clockwork.Clock) *Limiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Limiter{
		cfg:      cfg,
		clock:    clock,
		counters: make(map[string]*counter),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Config returns the limiter parameters.
func (l *Limiter) Config() Config {
	return l.cfg
}

// Check counts one request for identifier and reports whether it exceeds the limit.
// A window whose reset time has passed is treated as fresh.
func (l *Limiter) Check(identifier string) Result {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.counters[identifier]
	if !ok || now.After(c.resetAt) {
		c = &counter{resetAt: now.Add(l.cfg.Window)}
		l.counters[identifier] = c
	}
	c.count++

	return Result{
		Limited:   c.count > l.cfg.MaxRequests,
		Remaining: max(0, l.cfg.MaxRequests-c.count),
		ResetTime: c.resetAt,
	}
}

// Sweep deletes counters whose window has expired and returns how many were removed.
// It only reclaims memory; Check already ignores expired windows.
func (l *Limiter) Sweep() int {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, c := range l.counters {
		if now.After(c.resetAt) {
			delete(l.counters, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked identifiers.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.counters)
}

// StartCleanup runs Sweep every interval until Stop is called.
// Subsequent calls are no-ops.
func (l *Limiter) StartCleanup(interval time.Duration) {
	l.startOnce.Do(func() {
		ticker := l.clock.NewTicker(interval)
		go func() {
			defer close(l.done)
			defer ticker.Stop()
			for {
				select {
				case <-l.stop:
					return
				case <-ticker.Chan():
					l.Sweep()
				}
			}
		}()
	})
}

// Stop terminates the cleanup goroutine, if running, and waits for it to exit.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
	started := true
	l.startOnce.Do(func() { started = false })
	if started {
		<-l.done
	}
}
