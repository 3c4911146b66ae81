package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
)

// Storages aggregates all persistence backends behind their interfaces.
// It owns the underlying MongoDB and Redis connections and is the single
// place where they are opened and closed: construct once at process start,
// pass into the service layer, and Close on shutdown.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RecordRepository
	SessionCache     SessionCache
	AssetStorage     AssetStorage

	db    *DB
	cache *Cache
}

// NewStorages opens the MongoDB and Redis connections and wires all
// repositories. opTimeout bounds every storage and cache operation issued
// through the returned repositories.
func NewStorages(ctx context.Context, cfg config.Storage, opTimeout time.Duration, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectMongo(ctx, cfg.Mongo, opTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting MongoDB: %w", err)
	}

	cache, err := NewConnectRedis(ctx, cfg.Redis, opTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting Redis: %w", err)
	}

	assetStorage, err := NewAssetFileStorage(cfg.Files, log)
	if err != nil {
		return nil, fmt.Errorf("error creating asset storage: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecordRepository: NewRecordRepository(db, log),
		SessionCache:     NewSessionCache(cache, log),
		AssetStorage:     assetStorage,
		db:               db,
		cache:            cache,
	}, nil
}

// Close releases the MongoDB and Redis connections. Errors are logged, not
// returned: Close runs during shutdown when there is nothing left to fail.
func (s *Storages) Close(ctx context.Context) {
	if s.db != nil {
		if err := s.db.Close(ctx); err != nil {
			s.db.logger.Err(err).Msg("error closing MongoDB connection")
		}
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.cache.logger.Err(err).Msg("error closing Redis connection")
		}
	}
}
