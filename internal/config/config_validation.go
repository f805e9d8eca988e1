// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/MKhiriev/go-life-keeper/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only source-independent checks live here; required fields and defaults
// are handled by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.MaxRetries < 0 || cfg.App.KDFIterations < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Adapter.Transport {
	case "http":
		if cfg.Adapter.HTTPAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	case "grpc":
		if cfg.Adapter.GRPCAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ApplyTimeout <= 0 ||
		cfg.Workers.ProbeInterval <= 0 || cfg.Workers.MaxRetries <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if _, err := models.ParseStrategy(string(cfg.Workers.Strategy)); err != nil {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Vault.Dir != "" && cfg.Vault.Interval <= 0 {
		return ErrInvalidVaultConfigs
	}

	switch cfg.App.KDF {
	case "", "pbkdf2", "argon2id":
	default:
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
