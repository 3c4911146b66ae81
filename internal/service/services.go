package service

import (
	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
)

type Services struct {
	AuthService   AuthService
	RecordService RecordService
}

// NewServices wires the service layer from the storage layer and
// configuration. analysis may be nil when the AI analysis service is not
// configured.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, analysis adapter.AnalysisAdapter, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, storages.SessionCache, cfg.App, logger),
		RecordService: NewRecordService(storages.RecordRepository, storages.AssetStorage, analysis, cfg.Storage.Files, logger),
	}
}
