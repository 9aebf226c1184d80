package cache

import (
	"sync"
	"time"
)

// Config holds the TTLs for the two cached families: report data and
// filter-option lists.
type Config struct {
	DataTTL    time.Duration `mapstructure:"data_ttl"`
	OptionsTTL time.Duration `mapstructure:"options_ttl"`
}

const (
	DefaultDataTTL    = 10 * time.Minute
	DefaultOptionsTTL = time.Hour
)

type entry struct {
	value   any
	expires time.Time
}

// Store is an in-memory TTL cache injected into the dashboard service.
// Cached values are never mutated in place; callers get the stored value
// and must treat it as read-only.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *Store) get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || s.now().After(e.expires) {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

func (s *Store) set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expires: s.now().Add(ttl)}
}

// Invalidate drops one key.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Purge drops everything.
func (s *Store) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

// GetOrCompute returns the cached value for key, or runs compute and
// caches its result for ttl. Compute errors are returned as-is and are
// never cached, so a failed load is retried on the next request.
func GetOrCompute[T any](s *Store, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if v, ok := s.get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	s.set(key, value, ttl)
	return value, nil
}
