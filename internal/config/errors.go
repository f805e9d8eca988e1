package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing address for the selected transport).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown KDF).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval or unknown strategy).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidVaultConfigs indicates invalid vault exporter settings.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidServerConfigs indicates an invalid control API address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
