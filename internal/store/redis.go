package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis client used for session state. Read and write
// timeouts are set on the client itself so every command is bounded without
// per-call context juggling.
type Cache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewConnectRedis creates a Redis client for the given settings and verifies
// connectivity with a ping bounded by opTimeout.
func NewConnectRedis(ctx context.Context, cfg config.Redis, opTimeout time.Duration, log *logger.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  opTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect error: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Msg("connected to Redis successfully")

	return &Cache{client: client, logger: log}, nil
}

// Close releases the underlying Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
