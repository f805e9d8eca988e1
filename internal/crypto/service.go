// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
)

// Option configures a Service.
type Option func(*service)

// WithKDF selects the key derivation function and, for PBKDF2, the
// iteration count. Counts below [MinPBKDF2Iterations] fall back to the
// default.
func WithKDF(kdf KDF, iterations int) Option {
	return func(s *service) {
		s.keys = newKeyChain(kdf, iterations)
	}
}

type service struct {
	keys keyChain

	requests  chan request
	responses chan response
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	nextID  atomic.Uint64
	mu      sync.Mutex
	pending map[uint64]chan response

	unlocked atomic.Bool
}

// NewService starts the key-holding worker and returns a Service bound to
// it. Close must be called to release the worker.
func NewService(opts ...Option) Service {
	s := &service{
		keys:      newKeyChain(KDFPBKDF2, DefaultPBKDF2Iterations),
		requests:  make(chan request),
		responses: make(chan response),
		done:      make(chan struct{}),
		pending:   make(map[uint64]chan response),
	}
	for _, opt := range opts {
		opt(s)
	}

	w := &worker{requests: s.requests, responses: s.responses, done: s.done}

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		w.run()
	}()
	go func() {
		defer s.wg.Done()
		s.dispatch()
	}()

	return s
}

// dispatch routes each worker response to the caller waiting on its id.
func (s *service) dispatch() {
	for {
		select {
		case <-s.done:
			return
		case resp := <-s.responses:
			s.mu.Lock()
			ch, ok := s.pending[resp.id]
			delete(s.pending, resp.id)
			s.mu.Unlock()
			if ok {
				ch <- resp
			}
		}
	}
}

func (s *service) call(ctx context.Context, req request) (response, error) {
	req.id = s.nextID.Add(1)
	ch := make(chan response, 1)

	s.mu.Lock()
	s.pending[req.id] = ch
	s.mu.Unlock()

	forget := func() {
		s.mu.Lock()
		delete(s.pending, req.id)
		s.mu.Unlock()
	}

	select {
	case s.requests <- req:
	case <-s.done:
		forget()
		return response{}, ErrServiceClosed
	case <-ctx.Done():
		forget()
		return response{}, ctx.Err()
	}

	select {
	case resp := <-ch:
		return resp, nil
	case <-s.done:
		forget()
		return response{}, ErrServiceClosed
	case <-ctx.Done():
		forget()
		return response{}, ctx.Err()
	}
}

func (s *service) DeriveKey(password string, salt []byte) []byte {
	return s.keys.deriveKey(password, salt)
}

func (s *service) GenerateSalt() ([]byte, error) {
	return generateSalt()
}

func (s *service) SetSessionKey(ctx context.Context, key []byte) error {
	if key != nil && len(key) != keyLen {
		return ErrInvalidKeyLength
	}

	var owned []byte
	if key != nil {
		owned = append([]byte(nil), key...)
	}

	if _, err := s.call(ctx, request{op: opSetKey, data: owned}); err != nil {
		wipe(owned)
		return err
	}
	s.unlocked.Store(owned != nil)
	return nil
}

func (s *service) Unlocked() bool {
	return s.unlocked.Load()
}

func (s *service) Encrypt(ctx context.Context, plaintext []byte) (string, error) {
	resp, err := s.call(ctx, request{op: opEncrypt, data: plaintext})
	if err != nil {
		return "", err
	}
	if resp.err != nil {
		return "", resp.err
	}
	return resp.text, nil
}

func (s *service) EncryptJSON(ctx context.Context, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal plaintext: %w", err)
	}
	return s.Encrypt(ctx, data)
}

func (s *service) Decrypt(ctx context.Context, ciphertext string) ([]byte, bool, error) {
	resp, err := s.call(ctx, request{op: opDecrypt, text: ciphertext})
	if err != nil {
		return nil, false, err
	}
	return resp.data, resp.ok, nil
}

func (s *service) DecryptJSON(ctx context.Context, ciphertext string, target any) (bool, error) {
	data, ok, err := s.Decrypt(ctx, ciphertext)
	if err != nil || !ok {
		return false, err
	}
	if err = json.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("unmarshal plaintext: %w", err)
	}
	return true, nil
}

func (s *service) DecryptWithLegacyKey(ciphertext, literalKey string) ([]byte, bool) {
	key := legacyKey(literalKey)
	defer wipe(key)

	pt, err := open(key, ciphertext)
	if err != nil {
		return nil, false
	}
	return pt, true
}

func (s *service) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.unlocked.Store(false)
	})
	s.wg.Wait()
}
