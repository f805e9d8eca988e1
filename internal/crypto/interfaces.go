// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto gates every sensitive field at rest behind a session key.
//
// The key is derived once per login ([Service.DeriveKey]) and handed to an
// isolated worker goroutine ([Service.SetSessionKey]). Callers never see it
// again: encryption and decryption are request/response messages exchanged
// with the worker over channels, each tagged with a correlation id, so many
// concurrent calls share one channel and responses may come back in any
// order.
//
// Blob format (session and legacy): base64(nonce || AES-256-GCM ciphertext).
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_service_mock.go -package=mock

// Service is the client-side cryptographic service.
type Service interface {
	// DeriveKey turns the master password and the per-user salt into a
	// 256-bit key. The same inputs always yield the same key.
	DeriveKey(password string, salt []byte) []byte

	// GenerateSalt returns 16 random bytes for a new user.
	GenerateSalt() ([]byte, error)

	// SetSessionKey installs key in the worker. A nil key clears it (sign-out).
	SetSessionKey(ctx context.Context, key []byte) error

	// Unlocked reports whether a session key is currently installed.
	Unlocked() bool

	// Encrypt seals plaintext with the session key. Returns [ErrNoSessionKey]
	// when no key is installed; callers must treat that as a failed write.
	Encrypt(ctx context.Context, plaintext []byte) (string, error)

	// EncryptJSON marshals v to JSON and seals it.
	EncryptJSON(ctx context.Context, v any) (string, error)

	// Decrypt opens ciphertext. ok is false, with a nil error, when no key is
	// installed or the blob does not authenticate under the current key. err
	// is reserved for structural failures (service closed, ctx done).
	Decrypt(ctx context.Context, ciphertext string) (plaintext []byte, ok bool, err error)

	// DecryptJSON opens ciphertext and unmarshals it into target.
	DecryptJSON(ctx context.Context, ciphertext string, target any) (ok bool, err error)

	// DecryptWithLegacyKey opens a blob produced by the previous scheme, where
	// the AES key was SHA-256 of a literal passphrase. It runs synchronously
	// in the caller and does not consult the session key. Used only by the
	// one-time data migration.
	DecryptWithLegacyKey(ciphertext, literalKey string) ([]byte, bool)

	// Close clears the session key and stops the worker.
	Close()
}
