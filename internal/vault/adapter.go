// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault mirrors records into a directory of markdown notes, one file
// per record at <dir>/<kind>/<id>.md. The directory is driven as a second
// remote by its own sync engine on the "vault" queue.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/adapter"
	"github.com/MKhiriev/go-life-keeper/internal/crypto"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/models"
)

const (
	noteExt  = ".md"
	dirPerm  = 0o700
	filePerm = 0o600

	// ownWriteWindow is how long a note the adapter wrote or removed is
	// reported by OwnWrite.
	ownWriteWindow = 2 * time.Second
)

// Adapter is a file-backed [adapter.RemoteAdapter].
type Adapter struct {
	dir    string
	crypto crypto.Service

	mu      sync.Mutex
	written map[string]time.Time
	now     func() time.Time

	logger *logger.Logger
}

// NewAdapter returns an adapter rooted at dir. Bodies are opened through
// cryptoService, so applying a write needs an unlocked session.
func NewAdapter(dir string, cryptoService crypto.Service, log *logger.Logger) *Adapter {
	return &Adapter{
		dir:     dir,
		crypto:  cryptoService,
		written: make(map[string]time.Time),
		now:     time.Now,
		logger:  log.WithComponent("vault.adapter"),
	}
}

// Dir returns the vault root.
func (a *Adapter) Dir() string {
	return a.dir
}

func (a *Adapter) notePath(ref models.RecordRef) string {
	return filepath.Join(a.dir, string(ref.Kind), ref.ID+noteExt)
}

// FetchRemoteVersion implements adapter.RemoteAdapter.
func (a *Adapter) FetchRemoteVersion(ctx context.Context, ref models.RecordRef) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.notePath(ref))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read note %s: %w", ref, err)
	}

	record, err := decodeNote(data)
	if err != nil {
		return nil, fmt.Errorf("note %s: %w", ref, err)
	}

	return &record, nil
}

// ApplyMutation implements adapter.RemoteAdapter. Deletes remove the note;
// every other mutation rewrites it from the decrypted body.
func (a *Adapter) ApplyMutation(ctx context.Context, mutationType models.MutationType, payload models.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := a.notePath(payload.Ref())

	if mutationType.Op() == models.OpDelete || payload.Deleted {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove note %s: %w", payload.Ref(), err)
		}
		a.markOwn(path)
		a.logger.Debug().Str("func", "Adapter.ApplyMutation").Str("record", payload.Ref().String()).Msg("note removed")
		return nil
	}

	body, err := a.openBody(ctx, payload)
	if err != nil {
		return err
	}

	data, err := encodeNote(payload, body)
	if err != nil {
		return err
	}

	if err = writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write note %s: %w", payload.Ref(), err)
	}
	a.markOwn(path)

	a.logger.Debug().Str("func", "Adapter.ApplyMutation").Str("record", payload.Ref().String()).Msg("note written")
	return nil
}

// OwnWrite reports whether path is a note the adapter itself wrote or removed
// within the last couple of seconds. The watcher uses it to skip the events
// of its own engine's writes.
func (a *Adapter) OwnWrite(path string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	at, ok := a.written[filepath.Clean(path)]
	return ok && a.now().Sub(at) < ownWriteWindow
}

func (a *Adapter) markOwn(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	for p, at := range a.written {
		if now.Sub(at) >= ownWriteWindow {
			delete(a.written, p)
		}
	}
	a.written[filepath.Clean(path)] = now
}

func (a *Adapter) openBody(ctx context.Context, record models.Record) (models.RecordBody, error) {
	plaintext, ok, err := a.crypto.Decrypt(ctx, record.Sealed)
	if err != nil {
		return nil, fmt.Errorf("decrypt %s: %w", record.Ref(), err)
	}
	if !ok {
		if !a.crypto.Unlocked() {
			return nil, fmt.Errorf("%w: %w", adapter.ErrNotReady, crypto.ErrNoSessionKey)
		}
		return nil, fmt.Errorf("%w: %s", ErrUndecryptable, record.Ref())
	}

	body, err := models.DecodeBody(record.Kind, plaintext)
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", record.Ref(), err)
	}

	return body, nil
}

// Ping implements adapter.HealthChecker. The vault is reachable while its
// root can be created and written to.
func (a *Adapter) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(a.dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrVaultNotWritable, err)
	}

	f, err := os.CreateTemp(a.dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVaultNotWritable, err)
	}
	name := f.Name()
	f.Close()

	return os.Remove(name)
}

// writeFileAtomic writes data to a sibling temp file and renames it over
// path, so readers never observe a half-written note.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".note-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

var (
	_ adapter.RemoteAdapter = (*Adapter)(nil)
	_ adapter.HealthChecker = (*Adapter)(nil)
)
