package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when a query or mutation targets a diary
	// record that does not exist in the database.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrNoSessionFound is returned by the session cache when no live session
	// entry exists for the given user (never issued, revoked, or expired).
	ErrNoSessionFound = errors.New("no session was found")

	// ErrAssetNotFound is returned when a load or delete targets an asset
	// file that does not exist in the asset directory.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrInvalidAssetName is returned when an asset name contains path
	// separators or otherwise does not resolve to a file directly inside the
	// asset directory.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrStorageUnavailable is returned when a storage or cache operation
	// fails transiently — the operation timed out or the backend could not be
	// reached. Safe for the caller to retry.
	ErrStorageUnavailable = errors.New("storage is unavailable")
)
