package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-diary-keeper/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository persists user identities. The database is the single source
// of truth for "does this user exist"; the session cache is never consulted
// for that question.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (ID, CreatedAt). Returns ErrLoginAlreadyExists on duplicate login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin retrieves a user by exact login.
	// Returns ErrNoUserWasFound when absent.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RecordRepository persists diary records.
type RecordRepository interface {
	// CreateRecord persists a new record and returns it with server-assigned
	// fields (ID, CreatedAt, UpdatedAt).
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)

	// FindRecordByID retrieves a single record.
	// Returns ErrRecordNotFound when absent.
	FindRecordByID(ctx context.Context, recordID primitive.ObjectID) (models.Record, error)

	// FindRecordsByOwner returns all records owned by ownerID, newest-first.
	FindRecordsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Record, error)

	// FindPublicRecords returns all public records, newest-first.
	FindPublicRecords(ctx context.Context) ([]models.Record, error)

	// UpdateRecord applies the non-nil fields of update to the record and
	// returns the updated document. Returns ErrRecordNotFound when absent.
	UpdateRecord(ctx context.Context, recordID primitive.ObjectID, update models.RecordUpdate) (models.Record, error)

	// DeleteRecord removes the record. Returns ErrRecordNotFound when absent.
	DeleteRecord(ctx context.Context, recordID primitive.ObjectID) error
}

// SessionCache tracks the most recently issued live token per user. Entries
// are lossy and TTL-bounded; the cache must never be treated as authoritative
// for identity existence — only for "was a login recently issued".
type SessionCache interface {
	// Put unconditionally overwrites the session entry for userID.
	// Last login wins; concurrent sessions are not supported.
	Put(ctx context.Context, userID string, token string, ttl time.Duration) error

	// Get returns the live token for userID, or ErrNoSessionFound.
	Get(ctx context.Context, userID string) (string, error)

	// Revoke deletes the session entry for userID. Deleting an absent entry
	// is not an error.
	Revoke(ctx context.Context, userID string) error
}

// AssetStorage persists record assets outside the database. It is exclusively
// written and deleted by the record service; no other component touches it.
type AssetStorage interface {
	// Save writes data under the given name. The name must have been derived
	// by the caller to be globally unique.
	Save(ctx context.Context, name string, data []byte) error

	// Load reads the asset back. Returns ErrAssetNotFound when absent.
	Load(ctx context.Context, name string) ([]byte, error)

	// Delete removes the asset. Returns ErrAssetNotFound when absent.
	Delete(ctx context.Context, name string) error
}
