package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

var errDiskFull = errors.New("database or disk is full")

// ── Storage faults propagate ─────────────────────────────────────────────────

func TestMutationQueue_Enqueue_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueRemote, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mutations")).WillReturnError(errDiskFull)

	_, err := q.Enqueue(testContext(), taskUpdate, record("a"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, errDiskFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationQueue_List_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueRemote, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, queue, type, payload, timestamp, retries FROM mutations WHERE queue = ? ORDER BY timestamp ASC, id ASC")).
		WithArgs(models.QueueRemote).
		WillReturnError(errDiskFull)

	_, err := q.List(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationQueue_List_CorruptPayload(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueRemote, logger.Nop())

	rows := sqlmock.NewRows(mutationColumns).AddRow(int64(1), models.QueueRemote, string(taskUpdate), "{not json", int64(1), 0)
	mock.ExpectQuery(regexp.QuoteMeta("FROM mutations")).WillReturnRows(rows)

	_, err := q.List(testContext())
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, ErrDecodingPayload)
}

func TestMutationQueue_Count_Error(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueVault, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM mutations WHERE queue = ?")).
		WithArgs(models.QueueVault).
		WillReturnError(errDiskFull)

	_, err := q.Count(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── Transactions ─────────────────────────────────────────────────────────────

func TestMutationQueue_MoveToDeadLetter_InsertFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueRemote, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mutations WHERE id = ? AND queue = ?")).
		WithArgs(int64(7), models.QueueRemote).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dead_mutations")).WillReturnError(errDiskFull)
	mock.ExpectRollback()

	err := q.MoveToDeadLetter(testContext(), models.Mutation{ID: 7, Type: taskUpdate, Payload: record("a")}, "boom")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationQueue_MoveToDeadLetter_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueRemote, logger.Nop())

	mock.ExpectBegin().WillReturnError(errDiskFull)

	err := q.MoveToDeadLetter(testContext(), models.Mutation{ID: 7, Type: taskUpdate, Payload: record("a")}, "boom")
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestMutationQueue_MoveToDeadLetter_CommitError(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueRemote, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mutations")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dead_mutations")).WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit().WillReturnError(errDiskFull)

	err := q.MoveToDeadLetter(testContext(), models.Mutation{ID: 7, Type: taskUpdate, Payload: record("a")}, "boom")
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestMutationQueue_Revive_InsertFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueRemote, logger.Nop())

	payload, err := encodePayload(record("a"))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM dead_mutations WHERE id = ? AND queue = ?")).
		WithArgs(int64(3), models.QueueRemote).
		WillReturnRows(sqlmock.NewRows(deadColumns).
			AddRow(int64(3), models.QueueRemote, string(taskUpdate), payload, int64(10), 5, int64(20), "boom"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM dead_mutations")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mutations")).WillReturnError(errDiskFull)
	mock.ExpectRollback()

	_, err = q.ReviveDeadLetter(testContext(), 3)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationQueue_Revive_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	q := NewMutationQueue(db, models.QueueRemote, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM dead_mutations")).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := q.ReviveDeadLetter(testContext(), 3)
	assert.ErrorIs(t, err, ErrDeadMutationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_SaveRecord_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).WillReturnError(errDiskFull)

	err := repo.SaveRecord(testContext(), record("a"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Query builders ───────────────────────────────────────────────────────────

func TestBuildUpsertRecordQuery(t *testing.T) {
	query, args, err := buildUpsertRecordQuery(record("a"))
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO records (id,kind,sealed,created_at,updated_at,deleted) VALUES (?,?,?,?,?,?)")
	assert.Contains(t, query, "ON CONFLICT(id) DO UPDATE")
	require.Len(t, args, 6)
	assert.Equal(t, "a", args[0])
	assert.Equal(t, "task", args[1])
}

func TestBuildListRecordsQuery(t *testing.T) {
	query, args, err := buildListRecordsQuery(models.KindJournal)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, kind, sealed, created_at, updated_at, deleted FROM records WHERE deleted = ? AND kind = ? ORDER BY updated_at DESC, id ASC",
		query)
	assert.Equal(t, []any{false, "journal"}, args)
}
