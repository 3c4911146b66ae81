package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
)

func newTestAssetStorage(t *testing.T) (AssetStorage, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := NewAssetFileStorage(config.Files{AssetDir: dir, AssetURLPrefix: "/assets"}, logger.Nop())
	require.NoError(t, err)
	return storage, dir
}

func TestNewAssetFileStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "assets")

	_, err := NewAssetFileStorage(config.Files{AssetDir: dir}, logger.Nop())

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAssetFileStorage_SaveLoadDelete(t *testing.T) {
	storage, dir := newTestAssetStorage(t)
	ctx := context.Background()

	const name = "64f1b2a3c4d5e6f708192a3b_photo.jpg"
	payload := []byte("jpeg-bytes")

	require.NoError(t, storage.Save(ctx, name, payload))

	// written with mode 0644 directly inside the asset dir
	info, err := os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	loaded, err := storage.Load(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)

	require.NoError(t, storage.Delete(ctx, name))

	_, err = storage.Load(ctx, name)
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestAssetFileStorage_SaveOverwrites(t *testing.T) {
	storage, _ := newTestAssetStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "a.bin", []byte("old")))
	require.NoError(t, storage.Save(ctx, "a.bin", []byte("new")))

	loaded, err := storage.Load(ctx, "a.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), loaded)
}

func TestAssetFileStorage_MissingAsset(t *testing.T) {
	storage, _ := newTestAssetStorage(t)
	ctx := context.Background()

	_, err := storage.Load(ctx, "no-such-asset.jpg")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	assert.ErrorIs(t, storage.Delete(ctx, "no-such-asset.jpg"), ErrAssetNotFound)
}

// crafted names must never address files outside the asset directory
func TestAssetFileStorage_RejectsTraversalNames(t *testing.T) {
	storage, _ := newTestAssetStorage(t)
	ctx := context.Background()

	names := []string{
		"",
		".",
		"..",
		"../escape.txt",
		"nested/asset.jpg",
		"/etc/passwd",
	}

	for _, name := range names {
		t.Run("name "+name, func(t *testing.T) {
			assert.ErrorIs(t, storage.Save(ctx, name, []byte("x")), ErrInvalidAssetName)

			_, err := storage.Load(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidAssetName)

			assert.ErrorIs(t, storage.Delete(ctx, name), ErrInvalidAssetName)
		})
	}
}
