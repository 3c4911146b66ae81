package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single failure returned for both
	// unknown-login and wrong-password so that the login path never reveals
	// whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNoActiveSession is returned by session verification when the cache
	// holds no entry for the token's subject or holds a different token
	// (superseded by a newer login or revoked server-side).
	ErrNoActiveSession = errors.New("no active session for token")

	// ErrNotRecordOwner is returned when a valid identity attempts a private
	// read or any mutation of a record it does not own.
	ErrNotRecordOwner = errors.New("record belongs to a different user")
)
