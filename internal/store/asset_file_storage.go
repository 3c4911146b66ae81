package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
)

// assetFileStorage is the local-filesystem implementation of [AssetStorage].
// Assets live as flat files directly inside the configured directory,
// addressable by the unique name derived at creation time and served back via
// the static URL prefix.
type assetFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewAssetFileStorage constructs an [AssetStorage] rooted at cfg.AssetDir.
// The directory is created if it does not exist.
func NewAssetFileStorage(cfg config.Files, logger *logger.Logger) (AssetStorage, error) {
	logger.Debug().Str("dir", cfg.AssetDir).Msg("creating asset file storage")

	if err := os.MkdirAll(cfg.AssetDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating asset directory: %w", err)
	}

	return &assetFileStorage{
		dir:    cfg.AssetDir,
		logger: logger,
	}, nil
}

// path resolves name inside the asset directory. Names containing path
// separators or traversal elements are rejected so a crafted record can never
// address a file outside the directory.
func (s *assetFileStorage) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", ErrInvalidAssetName
	}
	return filepath.Join(s.dir, name), nil
}

// Save writes data under the given name with file mode 0644.
func (s *assetFileStorage) Save(ctx context.Context, name string, data []byte) error {
	log := logger.FromContext(ctx)

	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Err(err).Str("asset", name).Msg("error: asset was not saved")
		return fmt.Errorf("error saving asset: %w", err)
	}

	return nil
}

// Load reads the named asset back in full.
func (s *assetFileStorage) Load(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAssetNotFound
		}
		log.Err(err).Str("asset", name).Msg("error: asset read failed")
		return nil, fmt.Errorf("error loading asset: %w", err)
	}

	return data, nil
}

// Delete removes the named asset.
func (s *assetFileStorage) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrAssetNotFound
		}
		log.Err(err).Str("asset", name).Msg("error: asset was not deleted")
		return fmt.Errorf("error deleting asset: %w", err)
	}

	return nil
}
