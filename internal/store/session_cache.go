package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces session entries in the shared Redis instance.
// The full key format is "session:<userID>".
const sessionKeyPrefix = "session:"

// sessionCache is the Redis-backed implementation of [SessionCache].
//
// A session entry records "this user currently holds this live token". The
// TTL passed to Put always equals the token's remaining validity, so the
// cache entry never outlives the token; Redis eviction is the sole pruning
// mechanism and no background sweep exists.
type sessionCache struct {
	cache  *Cache
	logger *logger.Logger
}

// NewSessionCache constructs a [SessionCache] backed by the provided Redis
// connection and logger.
func NewSessionCache(cache *Cache, logger *logger.Logger) SessionCache {
	logger.Debug().Msg("creating session cache")
	return &sessionCache{
		cache:  cache,
		logger: logger,
	}
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + userID
}

// Put stores token under the user's session key with the given TTL,
// unconditionally overwriting any prior entry. A second login therefore
// silently invalidates the first session's cache entry (last-login-wins).
func (s *sessionCache) Put(ctx context.Context, userID string, token string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	if err := s.cache.client.Set(ctx, sessionKey(userID), token, ttl).Err(); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error: session entry was not saved")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// Get returns the live token for userID, or ErrNoSessionFound when the entry
// is absent (never issued, revoked, or expired by TTL).
func (s *sessionCache) Get(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	token, err := s.cache.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSessionFound
		}
		log.Err(err).Str("user_id", userID).Msg("error: session entry lookup failed")
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return token, nil
}

// Revoke deletes the user's session entry. Used by logout and by server-side
// forced revocation. Deleting an absent entry is a no-op.
func (s *sessionCache) Revoke(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := s.cache.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error: session entry was not deleted")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
