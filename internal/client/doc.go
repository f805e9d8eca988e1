// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client process runtime.
//
// It wires local storage, the crypto service, the remote and vault sync
// engines, connectivity probing and the local control API into a single
// process lifecycle.
package client
