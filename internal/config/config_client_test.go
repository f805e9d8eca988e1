package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-life-keeper/models"
)

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "/tmp/keeper.db"}},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080"},
	}
}

// TestNewClientConfig_Defaults verifies that every unset knob gets its
// default value.
func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := newClientConfig(minimalConfig())
	require.NoError(t, err)

	assert.Equal(t, DefaultTransport, cfg.Adapter.Transport)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.True(t, cfg.Workers.SyncEnabled)
	assert.Equal(t, DefaultMaxRetries, cfg.Workers.MaxRetries)
	assert.Equal(t, DefaultApplyTimeout, cfg.Workers.ApplyTimeout)
	assert.Equal(t, DefaultProbeInterval, cfg.Workers.ProbeInterval)
	assert.Equal(t, models.StrategyNewerWins, cfg.Workers.Strategy)
	assert.Equal(t, DefaultVaultInterval, cfg.Vault.Interval)
	assert.True(t, cfg.Vault.Enabled)
	assert.Empty(t, cfg.Vault.Dir)
	assert.Equal(t, DefaultControlAddress, cfg.Server.HTTPAddress)
}

// TestNewClientConfig_ExplicitValues verifies that explicit values, including
// disabled switches, survive the mapping.
func TestNewClientConfig_ExplicitValues(t *testing.T) {
	src := minimalConfig()
	src.Workers = Workers{
		SyncInterval: time.Minute * 5,
		SyncEnabled:  boolPtr(false),
		MaxRetries:   2,
		Strategy:     "remote-wins",
	}
	src.Vault = Vault{Dir: "/vault", Enabled: boolPtr(false)}

	cfg, err := newClientConfig(src)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.False(t, cfg.Workers.SyncEnabled)
	assert.Equal(t, 2, cfg.Workers.MaxRetries)
	assert.Equal(t, models.StrategyRemoteWins, cfg.Workers.Strategy)
	assert.Equal(t, "/vault", cfg.Vault.Dir)
	assert.False(t, cfg.Vault.Enabled)
}

// TestClientConfig_Validate covers each validation group.
func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "http transport without address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "grpc transport without address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.Transport = "grpc" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown transport",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.Transport = "carrier-pigeon" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown strategy",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.Strategy = "coin-flip" },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "unknown kdf",
			mutate:  func(cfg *StructuredConfig) { cfg.App.KDF = "md5" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "grpc transport with address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.Transport = "grpc"
				cfg.Adapter.GRPCAddress = "localhost:9090"
			},
		},
		{
			name:   "argon2id kdf",
			mutate: func(cfg *StructuredConfig) { cfg.App.KDF = "argon2id" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := minimalConfig()
			tt.mutate(src)

			_, err := newClientConfig(src)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
