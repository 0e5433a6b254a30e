package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvCacheBackend       = "CACHE_BACKEND"
	EnvCacheTTL           = "CACHE_TTL"
	EnvCacheRedisAddr     = "CACHE_REDIS_ADDR"
	EnvCacheRedisPassword = "CACHE_REDIS_PASSWORD"
	EnvCacheRedisDB       = "CACHE_REDIS_DB"
	EnvCacheKeyPrefix     = "CACHE_KEY_PREFIX"
)

// CacheBackend selects where converted documents are cached.
type CacheBackend string

const (
	CacheMemory CacheBackend = "memory"
	CacheRedis  CacheBackend = "redis"
)

// CacheConfig configures the conversion cache.
type CacheConfig struct {
	Backend   CacheBackend `toml:"backend"`
	TTL       string       `toml:"ttl"`
	Redis     RedisConfig  `toml:"redis"`
	KeyPrefix string       `toml:"key_prefix"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (c *CacheConfig) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

func (c *CacheConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *CacheConfig) Merge(overlay *CacheConfig) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.KeyPrefix != "" {
		c.KeyPrefix = overlay.KeyPrefix
	}
	if overlay.Redis.Addr != "" {
		c.Redis.Addr = overlay.Redis.Addr
	}
	if overlay.Redis.Password != "" {
		c.Redis.Password = overlay.Redis.Password
	}
	if overlay.Redis.DB != 0 {
		c.Redis.DB = overlay.Redis.DB
	}
}

func (c *CacheConfig) loadDefaults() {
	if c.Backend == "" {
		c.Backend = CacheMemory
	}
	if c.TTL == "" {
		c.TTL = "1h"
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = "agent-adapters:"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
}

func (c *CacheConfig) loadEnv() {
	if v := os.Getenv(EnvCacheBackend); v != "" {
		c.Backend = CacheBackend(v)
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		c.TTL = v
	}
	if v := os.Getenv(EnvCacheKeyPrefix); v != "" {
		c.KeyPrefix = v
	}
	if v := os.Getenv(EnvCacheRedisAddr); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv(EnvCacheRedisPassword); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv(EnvCacheRedisDB); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
}

func (c *CacheConfig) validate() error {
	switch c.Backend {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("invalid backend: %s", c.Backend)
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	return nil
}
