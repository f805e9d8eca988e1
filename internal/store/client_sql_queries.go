// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-life-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	mutationColumns = []string{"id", "queue", "type", "payload", "timestamp", "retries"}
	deadColumns     = []string{"id", "queue", "type", "payload", "timestamp", "retries", "failed_at", "last_error"}
	recordColumns   = []string{"id", "kind", "sealed", "created_at", "updated_at", "deleted"}
)

// Timestamps are stored as unix nanoseconds so FIFO order survives
// round-trips without string collation surprises.
func toUnixNano(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func encodePayload(r models.Record) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}
	return string(data), nil
}

func decodePayload(raw string) (models.Record, error) {
	var r models.Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}
	return r, nil
}

func buildInsertMutationQuery(queue string, t models.MutationType, payload string, ts time.Time) (string, []any, error) {
	return psql.Insert("mutations").
		Columns("queue", "type", "payload", "timestamp", "retries").
		Values(queue, string(t), payload, toUnixNano(ts), 0).
		ToSql()
}

func buildListMutationsQuery(queue string) (string, []any, error) {
	return psql.Select(mutationColumns...).
		From("mutations").
		Where(sq.Eq{"queue": queue}).
		OrderBy("timestamp ASC", "id ASC").
		ToSql()
}

func buildCountMutationsQuery(queue string) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("mutations").
		Where(sq.Eq{"queue": queue}).
		ToSql()
}

func buildDeleteMutationQuery(queue string, id int64) (string, []any, error) {
	return psql.Delete("mutations").
		Where(sq.Eq{"queue": queue, "id": id}).
		ToSql()
}

func buildUpdateRetriesQuery(queue string, id int64, retries int) (string, []any, error) {
	return psql.Update("mutations").
		Set("retries", retries).
		Where(sq.Eq{"queue": queue, "id": id}).
		ToSql()
}

func buildInsertDeadQuery(m models.Mutation, payload string, failedAt time.Time, lastErr string) (string, []any, error) {
	return psql.Insert("dead_mutations").
		Columns(deadColumns...).
		Values(m.ID, m.Queue, string(m.Type), payload, toUnixNano(m.Timestamp), m.Retries, toUnixNano(failedAt), lastErr).
		ToSql()
}

func buildListDeadQuery(queue string) (string, []any, error) {
	return psql.Select(deadColumns...).
		From("dead_mutations").
		Where(sq.Eq{"queue": queue}).
		OrderBy("failed_at ASC", "id ASC").
		ToSql()
}

func buildGetDeadQuery(queue string, id int64) (string, []any, error) {
	return psql.Select(deadColumns...).
		From("dead_mutations").
		Where(sq.Eq{"queue": queue, "id": id}).
		ToSql()
}

func buildDeleteDeadQuery(queue string, id int64) (string, []any, error) {
	return psql.Delete("dead_mutations").
		Where(sq.Eq{"queue": queue, "id": id}).
		ToSql()
}

func buildReinsertMutationQuery(m models.Mutation, payload string) (string, []any, error) {
	return psql.Insert("mutations").
		Columns(mutationColumns...).
		Values(m.ID, m.Queue, string(m.Type), payload, toUnixNano(m.Timestamp), m.Retries).
		ToSql()
}

func buildUpsertRecordQuery(r models.Record) (string, []any, error) {
	return psql.Insert("records").
		Columns(recordColumns...).
		Values(r.ID, string(r.Kind), r.Sealed, toUnixNano(r.CreatedAt), toUnixNano(r.UpdatedAt), r.Deleted).
		Suffix("ON CONFLICT(id) DO UPDATE SET kind = excluded.kind, sealed = excluded.sealed, " +
			"created_at = excluded.created_at, updated_at = excluded.updated_at, deleted = excluded.deleted").
		ToSql()
}

func buildGetRecordQuery(ref models.RecordRef) (string, []any, error) {
	return psql.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"id": ref.ID, "kind": string(ref.Kind)}).
		ToSql()
}

func buildListRecordsQuery(kind models.RecordKind) (string, []any, error) {
	return psql.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"kind": string(kind), "deleted": false}).
		OrderBy("updated_at DESC", "id ASC").
		ToSql()
}
