package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/JaimeStill/agent-adapters/internal/lifecycle"
	"github.com/google/uuid"
)

type entryKey struct {
	id     uuid.UUID
	format adapters.Format
}

type entry struct {
	content string
	expires time.Time
}

// Memory is an in-process cache. Expired entries are treated as misses and
// removed lazily on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[entryKey]entry
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

func NewMemory(ttl time.Duration, logger *slog.Logger) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		entries: make(map[entryKey]entry),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger.With("system", "cache", "backend", "memory"),
	}
}

// WithClock replaces the time source. Used by tests to step past expiry.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

func (m *Memory) Get(ctx context.Context, id uuid.UUID, format adapters.Format) (string, bool, error) {
	key := entryKey{id: id, format: format}

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return "", false, nil
	}

	if !m.now().Before(e.expires) {
		m.mu.Lock()
		if cur, ok := m.entries[key]; ok && cur.expires.Equal(e.expires) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return "", false, nil
	}

	return e.content, true, nil
}

func (m *Memory) Put(ctx context.Context, id uuid.UUID, format adapters.Format, content string) error {
	m.mu.Lock()
	m.entries[entryKey{id: id, format: format}] = entry{
		content: content,
		expires: m.now().Add(m.ttl),
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Invalidate(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	for _, f := range adapters.Formats() {
		delete(m.entries, entryKey{id: id, format: f})
	}
	m.mu.Unlock()

	m.logger.Debug("cache invalidated", "id", id)
	return nil
}

// Len reports the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) Start(lc *lifecycle.Coordinator) error {
	m.logger.Info("cache ready", "ttl", m.ttl)
	return nil
}
