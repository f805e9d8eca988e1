// Package conflict decides which version of a record survives when the local
// and the remote copies diverge. It holds no state and performs no I/O.
package conflict

import "github.com/MKhiriev/go-life-keeper/models"

// HasConflict reports whether remote exists and carries a last-write
// timestamp that is neither local's own nor the base local was written on
// top of. A remote copy at the base is this client's earlier write, so local
// simply supersedes it. Without a base any difference is a conflict.
func HasConflict(local models.Record, remote *models.Record) bool {
	if remote == nil || remote.UpdatedAt.Equal(local.UpdatedAt) {
		return false
	}
	return local.BaseUpdatedAt.IsZero() || !remote.UpdatedAt.Equal(local.BaseUpdatedAt)
}

// Resolve applies strategy to a diverged pair. The boolean is false when the
// strategy declines to pick a winner and the pair must be resolved by the
// user; the returned record is then the zero value.
//
// newer-wins compares UpdatedAt and keeps local on a tie. Unknown strategies
// are treated as manual.
func Resolve(local, remote models.Record, strategy models.Strategy) (models.Record, bool) {
	switch strategy {
	case models.StrategyLocalWins:
		return local, true
	case models.StrategyRemoteWins:
		return remote, true
	case models.StrategyNewerWins:
		if remote.UpdatedAt.After(local.UpdatedAt) {
			return remote, true
		}
		return local, true
	default:
		return models.Record{}, false
	}
}
