package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/config"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newSQLiteStorages opens a migrated database in a temp dir.
func newSQLiteStorages(t *testing.T) *ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "local.db")}}

	s, err := NewClientStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// fakeClock hands out strictly increasing timestamps.
type fakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Millisecond)
	return c.cur
}

func withClock(q MutationQueue, c *fakeClock) MutationQueue {
	mq := q.(*mutationQueue)
	mq.now = c.now
	return mq
}

func record(id string) models.Record {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	return models.Record{ID: id, Kind: models.KindTask, Sealed: "sealed-" + id, CreatedAt: ts, UpdatedAt: ts}
}

var taskUpdate = models.NewMutationType(models.KindTask, models.OpUpdate)

// ── Enqueue / List ───────────────────────────────────────────────────────────

func TestMutationQueue_EnqueueAndListFIFO(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	q := withClock(s.Queue(models.QueueRemote), &fakeClock{cur: time.Unix(1000, 0)})

	var ids []int64
	for _, id := range []string{"a", "b", "c"} {
		m, err := q.Enqueue(ctx, taskUpdate, record(id))
		require.NoError(t, err)
		assert.Zero(t, m.Retries)
		assert.Equal(t, models.QueueRemote, m.Queue)
		ids = append(ids, m.ID)
	}
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])

	list, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, id, list[i].Payload.ID)
		assert.Equal(t, taskUpdate, list[i].Type)
		assert.True(t, record(id).Same(list[i].Payload))
	}
	assert.True(t, list[0].Timestamp.Before(list[1].Timestamp))

	n, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMutationQueue_SameTimestampOrderedByID(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	q := s.Queue(models.QueueRemote).(*mutationQueue)
	fixed := time.Unix(2000, 0)
	q.now = func() time.Time { return fixed }

	for _, id := range []string{"x", "y", "z"} {
		_, err := q.Enqueue(ctx, taskUpdate, record(id))
		require.NoError(t, err)
	}

	list, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"x", "y", "z"}, []string{list[0].Payload.ID, list[1].Payload.ID, list[2].Payload.ID})
}

func TestMutationQueue_QueuesAreIsolated(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	_, err := s.Queue(models.QueueRemote).Enqueue(ctx, taskUpdate, record("r"))
	require.NoError(t, err)

	vault, err := s.Queue(models.QueueVault).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, vault)

	n, err := s.Queue(models.QueueVault).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Nil(t, s.Queue("unknown"))
}

// ── Delete / UpdateRetries ───────────────────────────────────────────────────

func TestMutationQueue_DeleteAndUpdateRetries(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	q := s.Queue(models.QueueRemote)

	m, err := q.Enqueue(ctx, taskUpdate, record("a"))
	require.NoError(t, err)

	require.NoError(t, q.UpdateRetries(ctx, m.ID, 3))
	list, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Retries)

	require.NoError(t, q.Delete(ctx, m.ID))
	assert.ErrorIs(t, q.Delete(ctx, m.ID), ErrMutationNotFound)
	assert.ErrorIs(t, q.UpdateRetries(ctx, m.ID, 1), ErrMutationNotFound)

	// the vault queue cannot touch a remote mutation
	m2, err := q.Enqueue(ctx, taskUpdate, record("b"))
	require.NoError(t, err)
	assert.ErrorIs(t, s.Queue(models.QueueVault).Delete(ctx, m2.ID), ErrMutationNotFound)
}

// ── Dead letter ──────────────────────────────────────────────────────────────

func TestMutationQueue_MoveToDeadLetter_Exclusive(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	q := s.Queue(models.QueueRemote)

	m, err := q.Enqueue(ctx, taskUpdate, record("a"))
	require.NoError(t, err)
	m.Retries = 5

	require.NoError(t, q.MoveToDeadLetter(ctx, m, "backend unavailable"))

	pending, err := q.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	dead, err := q.ListDeadLetter(ctx)
	require.NoError(t, err)
	require.Len(t, dead, 1)
	assert.Equal(t, m.ID, dead[0].ID)
	assert.Equal(t, 5, dead[0].Retries)
	assert.Equal(t, "backend unavailable", dead[0].LastError)
	assert.Equal(t, "a", dead[0].Payload.ID)
	assert.False(t, dead[0].FailedAt.IsZero())
}

func TestMutationQueue_MoveToDeadLetter_MissingRollsBack(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	q := s.Queue(models.QueueRemote)

	err := q.MoveToDeadLetter(ctx, models.Mutation{ID: 404, Type: taskUpdate, Payload: record("ghost")}, "x")
	assert.ErrorIs(t, err, ErrMutationNotFound)

	dead, err := q.ListDeadLetter(ctx)
	require.NoError(t, err)
	assert.Empty(t, dead)
}

func TestMutationQueue_ReviveDeadLetter(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	clock := &fakeClock{cur: time.Unix(3000, 0)}
	q := withClock(s.Queue(models.QueueRemote), clock)

	m, err := q.Enqueue(ctx, taskUpdate, record("a"))
	require.NoError(t, err)
	m.Retries = 5
	require.NoError(t, q.MoveToDeadLetter(ctx, m, "boom"))

	revived, err := q.ReviveDeadLetter(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, revived.ID)
	assert.Zero(t, revived.Retries)
	assert.True(t, revived.Timestamp.After(m.Timestamp))

	pending, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, m.ID, pending[0].ID)
	assert.Zero(t, pending[0].Retries)

	dead, err := q.ListDeadLetter(ctx)
	require.NoError(t, err)
	assert.Empty(t, dead)

	_, err = q.ReviveDeadLetter(ctx, m.ID)
	assert.ErrorIs(t, err, ErrDeadMutationNotFound)
}

func TestMutationQueue_DeleteDeadLetter(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	q := s.Queue(models.QueueVault)

	m, err := q.Enqueue(ctx, taskUpdate, record("a"))
	require.NoError(t, err)
	require.NoError(t, q.MoveToDeadLetter(ctx, m, "disk full"))

	require.NoError(t, q.DeleteDeadLetter(ctx, m.ID))
	assert.ErrorIs(t, q.DeleteDeadLetter(ctx, m.ID), ErrDeadMutationNotFound)

	dead, err := q.ListDeadLetter(ctx)
	require.NoError(t, err)
	assert.Empty(t, dead)
}
