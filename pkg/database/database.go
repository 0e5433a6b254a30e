// Package database manages the PostgreSQL connection pool and its lifecycle.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/agent-adapters/internal/lifecycle"
	"github.com/jackc/pgx/v5/stdlib"
)

var (
	// ErrNotReady is returned when the connection is requested before Start.
	ErrNotReady = errors.New("database not ready")
	// ErrNotFinalized is returned by New for a Config that skipped Finalize.
	ErrNotFinalized = errors.New("database config not finalized")
)

// System owns a *sql.DB backed by the pgx stdlib driver.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Ping(ctx context.Context) error
}

type database struct {
	cfg    *Config
	conn   *sql.DB
	logger *slog.Logger
}

// New opens the pool without dialing; connectivity is verified in Start.
// cfg must have been finalized.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if cfg.ConnConfig() == nil {
		return nil, fmt.Errorf("open database: %w", ErrNotFinalized)
	}
	conn := stdlib.OpenDB(*cfg.ConnConfig())

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		cfg:    cfg,
		conn:   conn,
		logger: logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Ping(ctx context.Context) error {
	if d.conn == nil {
		return ErrNotReady
	}
	return d.conn.PingContext(ctx)
}

// Start verifies connectivity and closes the pool when the coordinator shuts down.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	conn := d.cfg.ConnConfig()
	d.logger.Info("database connected", "host", conn.Host, "name", conn.Database)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
