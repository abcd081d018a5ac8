// Package cache provides the short-TTL result cache for assembled search
// responses. It is the only shared mutable structure concurrent requests
// touch, so the in-memory implementation is safe for concurrent read/write.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hatchling-dev/jobscout/internal/domain"
)

// DefaultTTL is the validity window applied when none is configured.
const DefaultTTL = 120 * time.Second

// Cache stores fully assembled search responses keyed by query signature.
type Cache interface {
	Get(key string) (domain.SearchResponse, bool)
	Set(key string, resp domain.SearchResponse)
}

// Memory is a mutex-guarded in-memory Cache with lazy expiry: staleness is
// checked at read time, no sweeper is required for correctness. An optional
// sweeper can be started to bound memory between reads.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   func() time.Time
}

type entry struct {
	resp      domain.SearchResponse
	createdAt time.Time
}

// Option configures Memory
type Option func(*Memory)

// WithClock injects a custom clock, for tests
func WithClock(clock func() time.Time) Option {
	return func(m *Memory) {
		m.clock = clock
	}
}

// NewMemory builds an in-memory cache with the given TTL.
func NewMemory(ttl time.Duration, opts ...Option) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m := &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Get returns the cached response for key if it exists and is still fresh.
// A stale entry counts as a miss and is dropped.
func (m *Memory) Get(key string) (domain.SearchResponse, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return domain.SearchResponse{}, false
	}

	if m.clock().Sub(e.createdAt) > m.ttl {
		m.mu.Lock()
		// Re-check under the write lock; another writer may have refreshed it.
		if cur, ok := m.entries[key]; ok && cur.createdAt.Equal(e.createdAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return domain.SearchResponse{}, false
	}

	return e.resp, true
}

// Set stores the response unconditionally, overwriting any previous entry.
func (m *Memory) Set(key string, resp domain.SearchResponse) {
	m.mu.Lock()
	m.entries[key] = entry{resp: resp, createdAt: m.clock()}
	m.mu.Unlock()
}

// Len reports the number of stored entries, stale ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// StartSweeper evicts expired entries every interval until ctx is canceled.
func (m *Memory) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = m.ttl
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Memory) sweep() {
	now := m.clock()

	m.mu.Lock()
	for key, e := range m.entries {
		if now.Sub(e.createdAt) > m.ttl {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
}
