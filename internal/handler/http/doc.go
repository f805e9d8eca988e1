// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control API of the client: record CRUD,
// sync engine control, dead-letter management and session unlock, served by
// a chi router.
//
// Every request passes through the trace-id, logging and gzip middleware.
// Write endpoints additionally verify the HashSHA256 body signature when a
// hash key is configured. Service errors are translated to HTTP statuses by
// [statusFromError].
//
// Sync endpoints act on the remote engine unless the request names another
// one with the engine query parameter, e.g. ?engine=vault.
package http
