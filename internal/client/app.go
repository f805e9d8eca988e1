package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-life-keeper/internal/adapter"
	"github.com/MKhiriev/go-life-keeper/internal/config"
	"github.com/MKhiriev/go-life-keeper/internal/crypto"
	"github.com/MKhiriev/go-life-keeper/internal/handler"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/server"
	"github.com/MKhiriev/go-life-keeper/internal/service"
	"github.com/MKhiriev/go-life-keeper/internal/store"
	"github.com/MKhiriev/go-life-keeper/internal/vault"
	"github.com/MKhiriev/go-life-keeper/internal/workers"
	"github.com/MKhiriev/go-life-keeper/models"
)

// App owns every long-lived component of the client process.
type App struct {
	storages *store.ClientStorages
	remote   adapter.Remote
	crypto   crypto.Service
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens local storage, dials the backend and wires the sync engines,
// the optional vault exporter and the control API.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := newRemote(cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	cryptoService := crypto.NewService(crypto.WithKDF(crypto.KDF(cfg.App.KDF), cfg.App.KDFIterations))

	var (
		extra       []service.SyncEngine
		vaultWorker *vault.Service
	)
	if cfg.Vault.Enabled && cfg.Vault.Dir != "" {
		vaultWorker = vault.NewService(storages, cryptoService, cfg.Vault, cfg.Workers, log)
		extra = append(extra, vaultWorker.Engine)
	}

	services := service.NewClientServices(storages, remote, cryptoService, syncOptions(cfg.Workers), log, extra...)

	ws := workers.NewWorkers(log).
		Add("sync.remote", workers.SyncEngine(services.Remote)).
		Add("connectivity", workers.Monitor(service.NewConnectivityMonitor(remote, cfg.Workers.ProbeInterval, log, services.Remote)))
	if vaultWorker != nil {
		ws.Add("vault", workers.Vault(vaultWorker))
	}

	handlers, err := handler.NewHandlers(services, *cfg, build, log)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewApp").Msg("control API disabled")
	} else {
		srv, err := server.NewServer(handlers, cfg.Server, log)
		if err != nil {
			return nil, errors.Join(err, closeAll(remote, cryptoService, storages))
		}
		ws.Add("server", workers.Server(srv))
	}

	return &App{
		storages: storages,
		remote:   remote,
		crypto:   cryptoService,
		workers:  ws,
		logger:   log.WithComponent("app"),
	}, nil
}

func newRemote(cfg *config.ClientConfig, log *logger.Logger) (adapter.Remote, error) {
	switch cfg.Adapter.Transport {
	case "grpc":
		return adapter.NewGRPCRemoteAdapter(cfg.Adapter, log)
	default:
		return adapter.NewHTTPRemoteAdapter(cfg.Adapter, cfg.App, log)
	}
}

func syncOptions(cfg config.ClientWorkers) service.SyncOptions {
	return service.SyncOptions{
		Name:         models.QueueRemote,
		MaxRetries:   cfg.MaxRetries,
		Interval:     cfg.SyncInterval,
		Enabled:      cfg.SyncEnabled,
		ApplyTimeout: cfg.ApplyTimeout,
		Strategy:     cfg.Strategy,
	}
}

// Run blocks until ctx is cancelled or a worker fails, then releases every
// resource. Engines have stopped draining by the time storage is closed.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Run").Int("workers", a.workers.Len()).Msg("client started")

	runErr := a.workers.Run(ctx)
	closeErr := closeAll(a.remote, a.crypto, a.storages)

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")

	return errors.Join(runErr, closeErr)
}

func closeAll(remote adapter.Remote, cryptoService crypto.Service, storages *store.ClientStorages) error {
	cryptoService.Close()
	return errors.Join(remote.Close(), storages.Close())
}
