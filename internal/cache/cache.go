// Package cache stores converted documents per (config id, format) with a TTL.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/JaimeStill/agent-adapters/internal/config"
	"github.com/JaimeStill/agent-adapters/internal/lifecycle"
	"github.com/google/uuid"
)

// DefaultTTL applies when a backend is constructed with a non-positive TTL.
const DefaultTTL = time.Hour

// System is a conversion cache. A miss is reported as ("", false, nil);
// errors are reserved for backend failures.
type System interface {
	Get(ctx context.Context, id uuid.UUID, format adapters.Format) (string, bool, error)
	// Put overwrites any existing entry and restarts its expiry.
	Put(ctx context.Context, id uuid.UUID, format adapters.Format, content string) error
	// Invalidate drops every format cached for id. Missing entries are not an error.
	Invalidate(ctx context.Context, id uuid.UUID) error
	Start(lc *lifecycle.Coordinator) error
}

// New builds the backend selected by cfg.
func New(cfg *config.CacheConfig, logger *slog.Logger) (System, error) {
	switch cfg.Backend {
	case config.CacheMemory:
		return NewMemory(cfg.TTLDuration(), logger), nil
	case config.CacheRedis:
		return NewRedis(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}
