// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Both services require the token signing parameters, the document database,
// the session cache, and a listen address. The asset directory is required
// because both create and serve paths resolve against it.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Redis.Addr == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.AssetDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
