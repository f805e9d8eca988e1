package service

import (
	"github.com/MKhiriev/go-life-keeper/internal/adapter"
	"github.com/MKhiriev/go-life-keeper/internal/crypto"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/store"
	"github.com/MKhiriev/go-life-keeper/internal/validators"
	"github.com/MKhiriev/go-life-keeper/models"
)

// ClientServices is the in-process surface the presentation layer and the
// control API consume.
type ClientServices struct {
	Crypto  crypto.Service
	Records RecordService
	// Remote is the engine draining into the remote backend.
	Remote *SyncManager
	// Engines lists every engine fed by record writes, Remote first.
	Engines []SyncEngine
}

// NewClientServices wires the remote engine over the "remote" queue and the
// record service over it plus any extra engines (the vault exporter).
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteAdapter, cryptoService crypto.Service, opts SyncOptions, log *logger.Logger, extra ...SyncEngine) *ClientServices {
	opts.Name = models.QueueRemote
	remoteEngine := NewSyncManager(storages.Queue(models.QueueRemote), remote, storages.Records, opts, log)

	engines := append([]SyncEngine{remoteEngine}, extra...)

	return &ClientServices{
		Crypto:  cryptoService,
		Records: NewRecordService(storages.Records, cryptoService, validators.NewRecordValidator(), log, engines...),
		Remote:  remoteEngine,
		Engines: engines,
	}
}

// Engine returns the engine registered under name, or nil.
func (s *ClientServices) Engine(name string) SyncEngine {
	for _, e := range s.Engines {
		if e.Name() == name {
			return e
		}
	}
	return nil
}
