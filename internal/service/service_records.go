package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recordService is the concrete implementation of RecordService.
//
// It is the only component that writes or deletes assets, and it is
// responsible for keeping the database record and the on-disk asset mutually
// consistent: asset-first writes with a compensating delete on create, and
// record-first deletes with a best-effort asset cleanup.
type recordService struct {
	recordRepository store.RecordRepository
	assetStorage     store.AssetStorage

	// analysis is the optional AI enrichment adapter. Nil when the analysis
	// service is not configured; all calls are best-effort.
	analysis adapter.AnalysisAdapter

	// assetURLPrefix is prepended to derived asset names to build the URL
	// stored on the record.
	assetURLPrefix string

	logger *logger.Logger
}

// NewRecordService constructs a RecordService wired to the given record
// repository and asset storage. analysis may be nil, in which case no
// enrichment is attempted.
func NewRecordService(recordRepository store.RecordRepository, assetStorage store.AssetStorage, analysis adapter.AnalysisAdapter, cfg config.Files, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		assetStorage:     assetStorage,
		analysis:         analysis,
		assetURLPrefix:   strings.TrimRight(cfg.AssetURLPrefix, "/"),
		logger:           logger,
	}
}

// CreateRecord persists a new record together with its asset.
//
// The asset is written first under a derived globally-unique name; the record
// referencing the asset URL is persisted second. The two writes are not
// transactional across stores, so a failed record insert triggers a
// compensating asset delete before the error is returned — a cleanup failure
// there is logged, never surfaced, so the caller sees the primary error.
//
// When the analysis adapter is configured, the asset is submitted for AI
// enrichment before persisting; analysis failures are logged and the record
// is created without enrichment.
//
// Returns ErrInvalidDataProvided if title, content, or asset bytes are
// missing, or if the visibility value is not supported.
func (s *recordService) CreateRecord(ctx context.Context, identity models.Identity, draft models.Record, asset models.AssetUpload) (models.Record, error) {
	log := logger.FromContext(ctx)

	if draft.Title == "" || draft.Content == "" || len(asset.Data) == 0 {
		log.Error().Str("title", draft.Title).Msg("invalid record data provided")
		return models.Record{}, ErrInvalidDataProvided
	}
	if draft.Visibility == "" {
		draft.Visibility = models.VisibilityPrivate
	}
	if !draft.Visibility.Valid() {
		log.Error().Str("visibility", string(draft.Visibility)).Msg("invalid visibility provided")
		return models.Record{}, ErrInvalidDataProvided
	}

	ownerID, err := primitive.ObjectIDFromHex(identity.ID)
	if err != nil {
		log.Err(err).Str("identity_id", identity.ID).Msg("invalid identity id")
		return models.Record{}, ErrInvalidDataProvided
	}

	assetName := s.deriveAssetName(identity.ID, asset.FileName)
	if err := s.assetStorage.Save(ctx, assetName, asset.Data); err != nil {
		log.Err(err).Str("asset", assetName).Msg("asset save failed")
		return models.Record{}, fmt.Errorf("asset save failed: %w", err)
	}

	draft.OwnerID = ownerID
	draft.AssetURL = s.assetURLPrefix + "/" + assetName
	draft.Analysis = s.analyzeAsset(ctx, asset)

	record, err := s.recordRepository.CreateRecord(ctx, draft)
	if err != nil {
		log.Err(err).Str("asset", assetName).Msg("record creation failed, removing stored asset")
		if cleanupErr := s.assetStorage.Delete(ctx, assetName); cleanupErr != nil {
			log.Err(cleanupErr).Str("asset", assetName).Msg("compensating asset delete failed")
		}
		return models.Record{}, fmt.Errorf("record creation failed: %w", err)
	}

	return record, nil
}

// ListOwnRecords returns all records owned by the caller, newest-first.
func (s *recordService) ListOwnRecords(ctx context.Context, identity models.Identity) ([]models.Record, error) {
	ownerID, err := primitive.ObjectIDFromHex(identity.ID)
	if err != nil {
		return nil, ErrInvalidDataProvided
	}

	return s.recordRepository.FindRecordsByOwner(ctx, ownerID)
}

// ListPublicRecords returns all public records, newest-first.
func (s *recordService) ListPublicRecords(ctx context.Context) ([]models.Record, error) {
	return s.recordRepository.FindPublicRecords(ctx)
}

// GetRecord returns a single record after the read-authorization check:
// public records are readable by any verified identity, private records only
// by their owner. Absence is reported before ownership, so an existing
// foreign private record yields ErrNotRecordOwner, not a not-found.
func (s *recordService) GetRecord(ctx context.Context, identity models.Identity, recordID string) (models.Record, error) {
	record, err := s.findRecord(ctx, recordID)
	if err != nil {
		return models.Record{}, err
	}

	if record.Visibility != models.VisibilityPublic {
		if err := s.authorizeOwner(ctx, record, identity); err != nil {
			return models.Record{}, err
		}
	}

	return record, nil
}

// UpdateRecord applies the supplied fields to an owned record. Ownership is
// required regardless of visibility. Unspecified fields keep their prior
// values; the asset is deliberately never touched by an update.
func (s *recordService) UpdateRecord(ctx context.Context, identity models.Identity, recordID string, update models.RecordUpdate) (models.Record, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		log.Error().Msg("empty record update provided")
		return models.Record{}, ErrInvalidDataProvided
	}
	if update.Visibility != nil && !update.Visibility.Valid() {
		log.Error().Str("visibility", string(*update.Visibility)).Msg("invalid visibility provided")
		return models.Record{}, ErrInvalidDataProvided
	}

	record, err := s.findRecord(ctx, recordID)
	if err != nil {
		return models.Record{}, err
	}

	if err := s.authorizeOwner(ctx, record, identity); err != nil {
		return models.Record{}, err
	}

	return s.recordRepository.UpdateRecord(ctx, record.ID, update)
}

// DeleteRecord removes an owned record. The database deletion is the
// authoritative success signal; the subsequent asset removal is best-effort
// and its failure is logged, not returned.
func (s *recordService) DeleteRecord(ctx context.Context, identity models.Identity, recordID string) error {
	log := logger.FromContext(ctx)

	record, err := s.findRecord(ctx, recordID)
	if err != nil {
		return err
	}

	if err := s.authorizeOwner(ctx, record, identity); err != nil {
		return err
	}

	if err := s.recordRepository.DeleteRecord(ctx, record.ID); err != nil {
		return err
	}

	if assetName := record.AssetName(); assetName != "" {
		if err := s.assetStorage.Delete(ctx, assetName); err != nil {
			log.Err(err).Str("asset", assetName).Msg("asset delete failed after record deletion")
		}
	}

	return nil
}

// LoadAsset reads a stored asset for static serving.
func (s *recordService) LoadAsset(ctx context.Context, name string) ([]byte, error) {
	return s.assetStorage.Load(ctx, name)
}

// findRecord resolves the record id and loads the record. A syntactically
// invalid id cannot address any record and is reported as not-found.
func (s *recordService) findRecord(ctx context.Context, recordID string) (models.Record, error) {
	id, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return models.Record{}, store.ErrRecordNotFound
	}

	return s.recordRepository.FindRecordByID(ctx, id)
}

// authorizeOwner is the single ownership predicate applied before every
// private read and every mutation.
func (s *recordService) authorizeOwner(ctx context.Context, record models.Record, identity models.Identity) error {
	if record.OwnerID.Hex() != identity.ID {
		logger.FromContext(ctx).Warn().
			Str("record_id", record.ID.Hex()).
			Str("identity_id", identity.ID).
			Msg("access to record owned by a different user denied")
		return ErrNotRecordOwner
	}

	return nil
}

// deriveAssetName builds a globally-unique storage name from the owner id,
// a fresh UUID, and the original file extension.
func (s *recordService) deriveAssetName(ownerID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return ownerID + "_" + uuid.NewString() + ext
}

// analyzeAsset submits the asset for AI enrichment when the adapter is
// configured. Any failure is logged and swallowed: the analysis service is a
// black box whose outages must not break record creation.
func (s *recordService) analyzeAsset(ctx context.Context, asset models.AssetUpload) *models.AssetAnalysis {
	if s.analysis == nil {
		return nil
	}

	log := logger.FromContext(ctx)

	analysis, err := s.analysis.AnalyzeAsset(ctx, asset.FileName, asset.Data)
	if err != nil {
		log.Err(err).Msg("asset analysis failed, creating record without enrichment")
		return nil
	}

	return &analysis
}
