package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-life-keeper/models"
)

// Defaults applied by [GetClientConfig] to fields left unset by every source.
const (
	DefaultControlAddress = "127.0.0.1:8787"
	DefaultTransport      = "http"
	DefaultRequestTimeout = 15 * time.Second
	DefaultSyncInterval   = 60 * time.Second
	DefaultMaxRetries     = 5
	DefaultApplyTimeout   = 30 * time.Second
	DefaultProbeInterval  = 15 * time.Second
	DefaultVaultInterval  = 5 * time.Second
	DefaultStrategy       = models.StrategyNewerWins
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// KDF is the password key derivation function name.
	KDF string
	// KDFIterations is the PBKDF2 iteration count.
	KDFIterations int
	// LogFile is the client log path.
	LogFile string
	// Version is the application version reported by the control API.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Transport is "http" or "grpc".
	Transport string
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// GRPCAddress is the gRPC endpoint address used by the client.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token presented to the backend.
	Token string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the remote sync engine settings.
type ClientWorkers struct {
	SyncInterval  time.Duration
	SyncEnabled   bool
	MaxRetries    int
	ApplyTimeout  time.Duration
	ProbeInterval time.Duration
	Strategy      models.Strategy
}

// ClientVault contains the markdown vault exporter settings. An empty Dir
// disables the exporter.
type ClientVault struct {
	Dir      string
	Interval time.Duration
	Enabled  bool
}

// ClientServer contains the local control API settings.
type ClientServer struct {
	HTTPAddress string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background sync settings.
	Workers ClientWorkers
	// Vault contains the vault exporter settings.
	Vault ClientVault
	// Server contains the control API settings.
	Server ClientServer
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			KDF:           cfg.App.KDF,
			KDFIterations: cfg.App.KDFIterations,
			LogFile:       cfg.App.LogFile,
			Version:       cfg.App.Version,
		},
		Adapter: ClientAdapter{
			Transport:      orDefault(cfg.Adapter.Transport, DefaultTransport),
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:  orDefault(cfg.Workers.SyncInterval, DefaultSyncInterval),
			SyncEnabled:   enabled(cfg.Workers.SyncEnabled),
			MaxRetries:    orDefault(cfg.Workers.MaxRetries, DefaultMaxRetries),
			ApplyTimeout:  orDefault(cfg.Workers.ApplyTimeout, DefaultApplyTimeout),
			ProbeInterval: orDefault(cfg.Workers.ProbeInterval, DefaultProbeInterval),
			Strategy:      models.Strategy(orDefault(cfg.Workers.Strategy, string(DefaultStrategy))),
		},
		Vault: ClientVault{
			Dir:      cfg.Vault.Dir,
			Interval: orDefault(cfg.Vault.Interval, DefaultVaultInterval),
			Enabled:  enabled(cfg.Vault.Enabled),
		},
		Server: ClientServer{
			HTTPAddress: orDefault(cfg.Server.HTTPAddress, DefaultControlAddress),
		},
	}

	return clientCfg, clientCfg.validate()
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// enabled treats an unset switch as on.
func enabled(b *bool) bool {
	return b == nil || *b
}
