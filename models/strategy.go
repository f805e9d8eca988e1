// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrInvalidStrategy is returned by [ParseStrategy] for unknown strategy names.
var ErrInvalidStrategy = errors.New("invalid conflict resolution strategy")

// Strategy selects how a divergence between the local and the remote version
// of a record is resolved.
type Strategy string

const (
	// StrategyLocalWins always keeps the local version.
	StrategyLocalWins Strategy = "local-wins"
	// StrategyRemoteWins always keeps the remote version.
	StrategyRemoteWins Strategy = "remote-wins"
	// StrategyNewerWins keeps the version with the later UpdatedAt; ties go to local.
	StrategyNewerWins Strategy = "newer-wins"
	// StrategyManual never resolves; both versions are surfaced to the user.
	StrategyManual Strategy = "manual"
)

// ParseStrategy validates raw and returns the matching [Strategy].
func ParseStrategy(raw string) (Strategy, error) {
	switch s := Strategy(raw); s {
	case StrategyLocalWins, StrategyRemoteWins, StrategyNewerWins, StrategyManual:
		return s, nil
	default:
		return "", ErrInvalidStrategy
	}
}
