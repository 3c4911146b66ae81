package service

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/models"
)

// AuthService covers the credential, token, and session-state contracts of
// the authentication layer.
type AuthService interface {
	// RegisterUser creates a new account from user.Login and user.Password
	// and returns the public identity (never the hash).
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the supplied credentials and returns the stored user.
	// Unknown login and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Logout revokes the user's session cache entry.
	Logout(ctx context.Context, userID string) error

	// CreateToken issues a signed token for user and records it in the
	// session cache with a TTL equal to the token lifetime.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a presented token string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// VerifySession checks that tokenString is the live session token for
	// userID. Returns ErrNoActiveSession when the entry is absent or holds a
	// different token.
	VerifySession(ctx context.Context, userID, tokenString string) error
}

// RecordService owns the diary record lifecycle: CRUD, the ownership
// contract, and keeping the attached asset consistent with the record.
type RecordService interface {
	// CreateRecord stores the asset, then persists the record referencing it.
	// If record persistence fails the stored asset is removed again before
	// the error is returned.
	CreateRecord(ctx context.Context, identity models.Identity, draft models.Record, asset models.AssetUpload) (models.Record, error)

	// ListOwnRecords returns the caller's records, newest-first.
	ListOwnRecords(ctx context.Context, identity models.Identity) ([]models.Record, error)

	// ListPublicRecords returns all public records, newest-first.
	// No identity is required.
	ListPublicRecords(ctx context.Context) ([]models.Record, error)

	// GetRecord returns a single record. Private records are readable only by
	// their owner; public records by any verified identity.
	GetRecord(ctx context.Context, identity models.Identity, recordID string) (models.Record, error)

	// UpdateRecord applies a partial update. Ownership is required regardless
	// of visibility. The attached asset is never changed by an update.
	UpdateRecord(ctx context.Context, identity models.Identity, recordID string, update models.RecordUpdate) (models.Record, error)

	// DeleteRecord removes the record (owner only), then best-effort deletes
	// the attached asset. An asset-deletion failure is logged, not returned.
	DeleteRecord(ctx context.Context, identity models.Identity, recordID string) error

	// LoadAsset reads a stored asset for static serving.
	LoadAsset(ctx context.Context, name string) ([]byte, error)
}
