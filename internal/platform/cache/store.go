package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process key/value map with a per-entry TTL. A zero TTL keeps
// entries until they are deleted. With sliding enabled every successful Get
// pushes the expiry forward by one TTL.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	sliding bool
	now     func() time.Time
}

type Option func(*options)

type options struct {
	sliding bool
	now     func() time.Time
}

func WithSlidingExpiry() Option {
	return func(o *options) { o.sliding = true }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func NewStore[V any](ttl time.Duration, opts ...Option) *Store[V] {
	cfg := options{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		sliding: cfg.sliding,
		now:     cfg.now,
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return zero, false
	}
	if s.expired(e, now) {
		delete(s.entries, key)
		return zero, false
	}
	if s.sliding && s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
		s.entries[key] = e
	}

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// Delete removes key and reports whether a live entry was present.
func (s *Store[V]) Delete(_ context.Context, key string) bool {
	if key == "" {
		return false
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	delete(s.entries, key)
	return !s.expired(e, now)
}

// Sweep evicts expired entries and returns how many were dropped.
func (s *Store[V]) Sweep(_ context.Context) int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store[V]) expired(e entry[V], now time.Time) bool {
	return s.ttl > 0 && !e.expiresAt.After(now)
}
