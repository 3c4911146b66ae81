package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// connectRetryInterval is the fixed backoff between bootstrap connection
// attempts. Connectivity loss at startup is retried indefinitely instead of
// crashing the process; mid-request loss surfaces as ErrStorageUnavailable to
// that request only.
const connectRetryInterval = 5 * time.Second

// DB wraps the MongoDB client and database handle shared by all repositories.
// Every operation issued through [DB.OpContext] carries a bounded timeout so
// a slow backend suspends a single request instead of hanging it forever.
type DB struct {
	client   *mongo.Client
	database *mongo.Database

	opTimeout time.Duration
	logger    *logger.Logger
}

// NewConnectMongo establishes the MongoDB connection for the given settings.
//
// The initial connection is retried with a fixed 5 second backoff until the
// server answers a ping or ctx is cancelled. opTimeout bounds every
// subsequent per-request operation issued through the returned DB.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, opTimeout time.Duration, log *logger.Logger) (*DB, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			AuthSource: "admin",
			Username:   cfg.Username,
			Password:   cfg.Password,
		})
	}

	var client *mongo.Client
	backoff := retry.NewConstant(connectRetryInterval)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
			err = conn.Ping(pingCtx, nil)
			cancel()
			if err != nil {
				_ = conn.Disconnect(ctx)
			}
		}
		if err != nil {
			log.Err(err).Msg("MongoDB connection failed, retrying in 5 seconds...")
			return retry.RetryableError(err)
		}

		client = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("connected to MongoDB successfully")

	return &DB{
		client:    client,
		database:  client.Database(cfg.Database),
		opTimeout: opTimeout,
		logger:    log,
	}, nil
}

// Collection returns a handle to the named collection of the configured
// database.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// OpContext derives a per-operation context with the configured storage
// timeout applied. The returned cancel function must always be called.
func (db *DB) OpContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.opTimeout)
}

// Close disconnects the underlying MongoDB client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// mongoError normalises driver failures into the store error taxonomy.
// Timeouts and network failures become ErrStorageUnavailable so that callers
// can report the outage as transient and retryable; everything else is
// wrapped as an unexpected DB error.
func mongoError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
