package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the MongoDB document identifier of the user.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Login is the unique user login identifier.
	// Typically used during authentication. Case-sensitive, stored trimmed.
	Login string `json:"username" bson:"username"`

	// Password carries the plaintext password on inbound requests only.
	// It is never persisted and never serialized back to clients.
	Password string `json:"password,omitempty" bson:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is excluded from JSON and must never appear in logs.
	PasswordHash string `json:"-" bson:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Public returns a copy of the user stripped down to the fields that are safe
// to return to clients.
func (u User) Public() User {
	return User{
		ID:        u.ID,
		Login:     u.Login,
		CreatedAt: u.CreatedAt,
	}
}

// CollectionName returns the name of the MongoDB collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
