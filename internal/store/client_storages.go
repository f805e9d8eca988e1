package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-life-keeper/internal/config"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/models"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Records holds the sealed record envelopes.
	Records RecordRepository

	queues map[string]MutationQueue
	db     *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the record repository and one [MutationQueue] per engine
//     ([models.QueueRemote], [models.QueueVault]).
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Records: NewRecordRepository(db, logger),
		queues: map[string]MutationQueue{
			models.QueueRemote: NewMutationQueue(db, models.QueueRemote, logger),
			models.QueueVault:  NewMutationQueue(db, models.QueueVault, logger),
		},
		db: db,
	}
}

// Queue returns the mutation queue registered under name, or nil.
func (s *ClientStorages) Queue(name string) MutationQueue {
	return s.queues[name]
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
