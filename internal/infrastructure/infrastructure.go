// Package infrastructure assembles the systems every domain module depends on.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/agent-adapters/internal/cache"
	"github.com/JaimeStill/agent-adapters/internal/config"
	"github.com/JaimeStill/agent-adapters/internal/database"
	"github.com/JaimeStill/agent-adapters/internal/lifecycle"
	pkgdb "github.com/JaimeStill/agent-adapters/pkg/database"
	"github.com/JaimeStill/agent-adapters/pkg/logging"
)

// Infrastructure holds lifecycle coordination, logging, the database pool
// and the conversion cache.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  pkgdb.System
	Cache     cache.System
}

// New creates an Infrastructure from the application configuration.
// Systems are constructed but not started; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := pkgdb.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	c, err := cache.New(&cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Cache:     c,
	}, nil
}

// Start connects the database, applies migrations and starts the cache.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := database.Migrate(i.Database.Connection(), i.Logger.With("system", "migrations")); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	if err := i.Cache.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("cache start failed: %w", err)
	}
	return nil
}
