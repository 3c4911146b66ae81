package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	collection *mongo.Collection
	db         *DB
	logger     *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A unique index on "username" is ensured at construction time; it is the
// mechanism behind the duplicate-registration Conflict contract. Index
// creation failure is logged but not fatal, since the index typically
// already exists.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")

	collection := db.Collection(models.User{}.CollectionName())

	ctx, cancel := db.OpContext(context.Background())
	defer cancel()

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to create unique index on username")
	}

	return &userRepository{
		collection: collection,
		db:         db,
		logger:     logger,
	}
}

// CreateUser persists a new user document and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - duplicate key on the "username" index → [ErrLoginAlreadyExists].
//   - timeout / network failure → wrapped [ErrStorageUnavailable].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()

	opCtx, cancel := r.db.OpContext(ctx)
	defer cancel()

	if _, err := r.collection.InsertOne(opCtx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user was not inserted")
		return models.User{}, mongoError(err)
	}

	return user, nil
}

// FindUserByLogin retrieves the user document whose login matches exactly.
//
// Error handling:
//   - no matching document → [ErrNoUserWasFound].
//   - timeout / network failure → wrapped [ErrStorageUnavailable].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	opCtx, cancel := r.db.OpContext(ctx)
	defer cancel()

	var foundUser models.User
	if err := r.collection.FindOne(opCtx, bson.M{"username": login}).Decode(&foundUser); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error: user lookup failed")
		return models.User{}, mongoError(err)
	}

	return foundUser, nil
}
