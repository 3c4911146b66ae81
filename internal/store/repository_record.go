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

// recordRepository is the MongoDB-backed implementation of [RecordRepository].
// It persists diary records in the "records" collection.
//
// The repository performs no ownership checks: authorization is the record
// service's concern. Races between concurrent updates or deletes of the same
// record are last-write-wins; no optimistic locking is applied.
type recordRepository struct {
	collection *mongo.Collection
	db         *DB
	logger     *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
//
// Indexes on owner and visibility (each combined with created_at descending)
// back the two newest-first listing queries.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")

	collection := db.Collection(models.Record{}.CollectionName())

	ctx, cancel := db.OpContext(context.Background())
	defer cancel()

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "visibility", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to create record indexes")
	}

	return &recordRepository{
		collection: collection,
		db:         db,
		logger:     logger,
	}
}

// CreateRecord persists a new record document and returns it with
// server-assigned fields (ID, CreatedAt, UpdatedAt).
func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	record.ID = primitive.NewObjectID()
	record.CreatedAt = now
	record.UpdatedAt = now

	opCtx, cancel := r.db.OpContext(ctx)
	defer cancel()

	if _, err := r.collection.InsertOne(opCtx, record); err != nil {
		log.Err(err).Str("func", "*recordRepository.CreateRecord").Msg("error: record was not inserted")
		return models.Record{}, mongoError(err)
	}

	return record, nil
}

// FindRecordByID retrieves a single record document.
func (r *recordRepository) FindRecordByID(ctx context.Context, recordID primitive.ObjectID) (models.Record, error) {
	log := logger.FromContext(ctx)

	opCtx, cancel := r.db.OpContext(ctx)
	defer cancel()

	var record models.Record
	if err := r.collection.FindOne(opCtx, bson.M{"_id": recordID}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.FindRecordByID").Msg("error: record lookup failed")
		return models.Record{}, mongoError(err)
	}

	return record, nil
}

// FindRecordsByOwner returns all records owned by ownerID, newest-first by
// creation time.
func (r *recordRepository) FindRecordsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Record, error) {
	return r.findRecords(ctx, bson.M{"owner_id": ownerID})
}

// FindPublicRecords returns all records with public visibility, newest-first
// by creation time.
func (r *recordRepository) FindPublicRecords(ctx context.Context) ([]models.Record, error) {
	return r.findRecords(ctx, bson.M{"visibility": models.VisibilityPublic})
}

func (r *recordRepository) findRecords(ctx context.Context, filter bson.M) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	opCtx, cancel := r.db.OpContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(opCtx, filter, opts)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.findRecords").Msg("error: record listing failed")
		return nil, mongoError(err)
	}
	defer cursor.Close(opCtx)

	records := make([]models.Record, 0)
	if err := cursor.All(opCtx, &records); err != nil {
		log.Err(err).Str("func", "*recordRepository.findRecords").Msg("error: record decoding failed")
		return nil, mongoError(err)
	}

	return records, nil
}

// UpdateRecord applies the non-nil fields of update via $set and returns the
// document as it is after the update. Unspecified fields retain their prior
// values; the owner reference and the asset URL are never part of the $set.
func (r *recordRepository) UpdateRecord(ctx context.Context, recordID primitive.ObjectID, update models.RecordUpdate) (models.Record, error) {
	log := logger.FromContext(ctx)

	set := bson.M{"updated_at": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Visibility != nil {
		set["visibility"] = *update.Visibility
	}

	opCtx, cancel := r.db.OpContext(ctx)
	defer cancel()

	result := r.collection.FindOneAndUpdate(
		opCtx,
		bson.M{"_id": recordID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Record
	if err := result.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.UpdateRecord").Msg("error: record was not updated")
		return models.Record{}, mongoError(err)
	}

	return updated, nil
}

// DeleteRecord removes the record document.
func (r *recordRepository) DeleteRecord(ctx context.Context, recordID primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	opCtx, cancel := r.db.OpContext(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(opCtx, bson.M{"_id": recordID})
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteRecord").Msg("error: record was not deleted")
		return mongoError(err)
	}

	if result.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
