package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/JaimeStill/agent-adapters/internal/config"
	"github.com/JaimeStill/agent-adapters/internal/lifecycle"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis stores conversions as plain string keys with a server-side TTL.
// Keys have the form <prefix>config:<id>:<format>.
type Redis struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
	logger    *slog.Logger
}

func NewRedis(cfg *config.CacheConfig, logger *slog.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return NewRedisWithClient(client, cfg.KeyPrefix, cfg.TTLDuration(), logger)
}

// NewRedisWithClient wraps an existing client, e.g. one pointed at miniredis.
func NewRedisWithClient(client redis.UniversalClient, keyPrefix string, ttl time.Duration, logger *slog.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    logger.With("system", "cache", "backend", "redis"),
	}
}

func (r *Redis) key(id uuid.UUID, format adapters.Format) string {
	return fmt.Sprintf("%sconfig:%s:%s", r.keyPrefix, id, format)
}

func (r *Redis) Get(ctx context.Context, id uuid.UUID, format adapters.Format) (string, bool, error) {
	val, err := r.client.Get(ctx, r.key(id, format)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get cached conversion: %w", err)
	}
	return val, true, nil
}

func (r *Redis) Put(ctx context.Context, id uuid.UUID, format adapters.Format, content string) error {
	if err := r.client.Set(ctx, r.key(id, format), content, r.ttl).Err(); err != nil {
		return fmt.Errorf("put cached conversion: %w", err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, id uuid.UUID) error {
	formats := adapters.Formats()
	keys := make([]string, len(formats))
	for i, f := range formats {
		keys[i] = r.key(id, f)
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate cached conversions: %w", err)
	}

	r.logger.Debug("cache invalidated", "id", id)
	return nil
}

// Start pings the server and closes the client on shutdown.
func (r *Redis) Start(lc *lifecycle.Coordinator) error {
	if err := r.client.Ping(lc.Context()).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	r.logger.Info("cache ready", "ttl", r.ttl)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := r.client.Close(); err != nil {
			r.logger.Error("redis close error", "error", err)
			return
		}
		r.logger.Info("redis connection closed")
	})
	return nil
}
