package ratelimit

import (
	"net/http"
	"sync"
	"time"
)

// Limiter is an in-memory sliding window rate limiter keyed by client
// address. Report queries fan out to several aggregate scans, so one
// misbehaving client can saturate the database; the limiter caps how many
// uncached requests a single address can trigger per window.
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	stop     chan struct{}
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a limiter allowing max requests per key per window.
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow reports whether a request for the given key fits the window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// Remaining returns how many requests the key has left in its window.
func (l *Limiter) Remaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, exists := l.counters[key]
	if !exists || time.Now().After(c.expiresAt) {
		return l.max
	}
	if c.count >= l.max {
		return 0
	}
	return l.max - c.count
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Middleware rejects requests over the limit with 429, keyed by the
// request's remote address. Mount after RealIP so the key is the actual
// client and not a proxy hop.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(r.RemoteAddr) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
