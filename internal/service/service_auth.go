package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the fixed bcrypt work factor applied to every stored
// password hash.
const passwordHashCost = bcrypt.DefaultCost

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, JWT token lifecycle,
// and session-cache bookkeeping, using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionCache records the live token per user at issuance time and
	// serves revocation.
	sessionCache store.SessionCache

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// The session cache TTL always equals this value.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessionCache store.SessionCache, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessionCache:   sessionCache,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Login and Password are non-empty after trimming,
// hashes the password with bcrypt at the fixed cost, and delegates
// persistence to the UserRepository. Hashing happens right here in the
// registration path; nothing is hashed implicitly on save.
//
// Returns the public part of the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user.
//
// It validates that both Login and Password are non-empty, looks up the
// account by login, and compares the supplied password against the stored
// bcrypt hash.
//
// An unknown login and a wrong password both return ErrInvalidCredentials:
// the caller must not be able to tell whether the account exists. The real
// cause is only visible in the server log.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("login", user.Login).Msg("login failed: unknown login")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Debug().Str("login", user.Login).Msg("login failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// Logout revokes the user's session cache entry. The token itself stays
// cryptographically valid until expiry; with session checking enabled it is
// rejected from this point on.
func (a *authService) Logout(ctx context.Context, userID string) error {
	return a.sessionCache.Revoke(ctx, userID)
}

// CreateToken issues a signed JWT for the given user and records it in the
// session cache under the user's ID, unconditionally overwriting any prior
// entry (last-login-wins). The cache TTL equals the token lifetime.
//
// Returns the token model on success, a wrapped ErrTokenCreationFailed if JWT
// generation fails, or the cache error if the session entry cannot be written.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID.Hex(), user.Login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.sessionCache.Put(ctx, token.UserID, token.SignedString, a.tokenDuration); err != nil {
		return models.Token{}, fmt.Errorf("session entry was not saved: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Expiry is reported as ErrTokenIsExpired; every other
// validation failure (wrong issuer, malformed, bad signature) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// VerifySession checks tokenString against the live session entry for userID.
//
// Returns ErrNoActiveSession when no entry exists or the entry holds a
// different token (a newer login overwrote it, or it was revoked). Cache
// outages propagate so the caller can report them as transient.
func (a *authService) VerifySession(ctx context.Context, userID, tokenString string) error {
	sessionToken, err := a.sessionCache.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoSessionFound) {
			return ErrNoActiveSession
		}
		return fmt.Errorf("session lookup failed: %w", err)
	}

	if sessionToken != tokenString {
		return ErrNoActiveSession
	}

	return nil
}
