// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KDF selects the password-based key derivation function.
type KDF string

const (
	// KDFPBKDF2 is PBKDF2-HMAC-SHA256.
	KDFPBKDF2 KDF = "pbkdf2"
	// KDFArgon2id is Argon2id with the OWASP (2024) interactive parameters.
	KDFArgon2id KDF = "argon2id"
)

const (
	keyLen  = 32 // AES-256
	saltLen = 16

	// MinPBKDF2Iterations is the lowest iteration count accepted.
	MinPBKDF2Iterations = 1000
	// DefaultPBKDF2Iterations follows the OWASP recommendation for SHA-256.
	DefaultPBKDF2Iterations = 210_000
)

// keyChain derives keys and implements the AES-GCM sealing shared by the
// worker and the legacy path.
type keyChain struct {
	kdf        KDF
	iterations int

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

func newKeyChain(kdf KDF, iterations int) keyChain {
	if kdf == "" {
		kdf = KDFPBKDF2
	}
	if iterations < MinPBKDF2Iterations {
		iterations = DefaultPBKDF2Iterations
	}
	return keyChain{
		kdf:          kdf,
		iterations:   iterations,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

func (k keyChain) deriveKey(password string, salt []byte) []byte {
	if k.kdf == KDFArgon2id {
		return argon2.IDKey([]byte(password), salt, k.argonTime, k.argonMemory, k.argonThreads, keyLen)
	}
	return pbkdf2.Key([]byte(password), salt, k.iterations, keyLen, sha256.New)
}

func generateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// seal encrypts plaintext with key and returns base64(nonce || ciphertext).
func seal(key, plaintext []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// open reverses seal. Any error means the blob is malformed or does not
// authenticate under key.
func open(key []byte, encoded string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, errCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func legacyKey(literal string) []byte {
	sum := sha256.Sum256([]byte(literal))
	return sum[:]
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
