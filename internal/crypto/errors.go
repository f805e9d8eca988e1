// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrNoSessionKey is returned by Encrypt when the session is locked.
	ErrNoSessionKey = errors.New("session key is not set")

	// ErrInvalidKeyLength is returned by SetSessionKey for keys that are not
	// 32 bytes long.
	ErrInvalidKeyLength = errors.New("session key must be 32 bytes")

	// ErrServiceClosed is returned once Close has been called. It is a
	// structural failure: drain passes abort on it.
	ErrServiceClosed = errors.New("crypto service is closed")

	errCiphertextTooShort = errors.New("ciphertext too short")
)
