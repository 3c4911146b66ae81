package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a config that passes validation; tests knock out
// individual fields from it.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "auth-server",
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			Mongo: Mongo{URI: "mongodb://localhost:27017", Database: "diary"},
			Redis: Redis{Addr: "localhost:6379"},
			Files: Files{AssetDir: "/var/lib/diary/assets", AssetURLPrefix: "/assets"},
		},
		Server: Server{
			HTTPAddress:    "localhost:3001",
			RequestTimeout: 30 * time.Second,
		},
	}
}

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid config", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing mongo uri", mutate: func(c *StructuredConfig) { c.Storage.Mongo.URI = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing mongo database", mutate: func(c *StructuredConfig) { c.Storage.Mongo.Database = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing redis addr", mutate: func(c *StructuredConfig) { c.Storage.Redis.Addr = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing asset dir", mutate: func(c *StructuredConfig) { c.Storage.Files.AssetDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing http address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}

	cfg.applyDefaults()

	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/assets", cfg.Storage.Files.AssetURLPrefix)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.App.TokenDuration = 2 * time.Hour
	cfg.Storage.Files.AssetURLPrefix = "/static"

	cfg.applyDefaults()

	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/static", cfg.Storage.Files.AssetURLPrefix)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "string duration", raw: `"1h"`, want: time.Hour},
		{name: "string seconds", raw: `"30s"`, want: 30 * time.Second},
		{name: "numeric nanoseconds", raw: `1000000000`, want: time.Second},
		{name: "invalid string", raw: `"one hour"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.raw), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "auth-server",
			"token_duration": "2h",
			"session_check": true
		},
		"storage": {
			"mongo": {"uri": "mongodb://mongo:27017", "database": "diary"},
			"redis": {"addr": "redis:6379", "db": 1},
			"files": {"asset_dir": "/data/assets"}
		},
		"server": {"http_address": "0.0.0.0:3002", "request_timeout": "10s"},
		"adapter": {"ai_service_url": "http://ai-service:5000"}
	}`), 0o644))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.True(t, cfg.App.SessionCheck)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, 1, cfg.Storage.Redis.DB)
	assert.Equal(t, "/data/assets", cfg.Storage.Files.AssetDir)
	assert.Equal(t, "0.0.0.0:3002", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://ai-service:5000", cfg.Adapter.AIServiceURL)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	assert.Error(t, err)
}
