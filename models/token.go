package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set carried by every issued token.
//
// It extends the standard registered claims (sub, iss, iat, exp) with the
// user's display login so that services behind the verification middleware
// can resolve the caller without a database round trip.
type TokenClaims struct {
	// Login is the username of the token subject.
	Login string `json:"username"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored in the session cache.
//
// UserID and Login are cached copies of the "sub" and "username" claims so that
// callers do not need to re-parse the claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject identifier (MongoDB ObjectID hex) extracted from
	// the "sub" claim.
	UserID string `json:"-"`

	// Login is the username extracted from the custom "username" claim.
	Login string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the resolved caller injected into the request context by the
// verification middleware after a token has been validated.
type Identity struct {
	// ID is the user's MongoDB ObjectID in hex form.
	ID string `json:"id"`

	// Login is the user's username.
	Login string `json:"username"`
}
