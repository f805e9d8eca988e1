package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/models"
)

type mutationQueue struct {
	*DB
	queue  string
	now    func() time.Time
	logger *logger.Logger
}

// NewMutationQueue returns the pending queue and dead-letter store named
// queue (e.g. [models.QueueRemote]).
func NewMutationQueue(db *DB, queue string, logger *logger.Logger) MutationQueue {
	return &mutationQueue{
		DB:     db,
		queue:  queue,
		now:    time.Now,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMutation(row rowScanner) (models.Mutation, error) {
	var (
		m       models.Mutation
		mType   string
		payload string
		ts      int64
	)
	if err := row.Scan(&m.ID, &m.Queue, &mType, &payload, &ts, &m.Retries); err != nil {
		return models.Mutation{}, err
	}
	record, err := decodePayload(payload)
	if err != nil {
		return models.Mutation{}, err
	}
	m.Type = models.MutationType(mType)
	m.Payload = record
	m.Timestamp = fromUnixNano(ts)
	return m, nil
}

func scanDeadMutation(row rowScanner) (models.DeadMutation, error) {
	var (
		d        models.DeadMutation
		mType    string
		payload  string
		ts       int64
		failedAt int64
	)
	if err := row.Scan(&d.ID, &d.Queue, &mType, &payload, &ts, &d.Retries, &failedAt, &d.LastError); err != nil {
		return models.DeadMutation{}, err
	}
	record, err := decodePayload(payload)
	if err != nil {
		return models.DeadMutation{}, err
	}
	d.Type = models.MutationType(mType)
	d.Payload = record
	d.Timestamp = fromUnixNano(ts)
	d.FailedAt = fromUnixNano(failedAt)
	return d, nil
}

func (q *mutationQueue) Enqueue(ctx context.Context, mutationType models.MutationType, payload models.Record) (models.Mutation, error) {
	log := logger.FromContext(ctx)

	encoded, err := encodePayload(payload)
	if err != nil {
		return models.Mutation{}, err
	}

	ts := q.now().UTC()
	query, args, err := buildInsertMutationQuery(q.queue, mutationType, encoded, ts)
	if err != nil {
		return models.Mutation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueue.Enqueue").
			Str("queue", q.queue).
			Str("type", string(mutationType)).
			Msg("failed to insert mutation")
		return models.Mutation{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Mutation{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.Mutation{
		ID:        id,
		Queue:     q.queue,
		Type:      mutationType,
		Payload:   payload,
		Timestamp: fromUnixNano(toUnixNano(ts)),
	}, nil
}

func (q *mutationQueue) List(ctx context.Context) ([]models.Mutation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMutationsQuery(q.queue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "mutationQueue.List").Str("queue", q.queue).Msg("failed to query mutations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var mutations []models.Mutation
	for rows.Next() {
		m, scanErr := scanMutation(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "mutationQueue.List").Str("queue", q.queue).Msg("failed to scan mutation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		mutations = append(mutations, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return mutations, nil
}

func (q *mutationQueue) Count(ctx context.Context) (int, error) {
	query, args, err := buildCountMutationsQuery(q.queue)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = q.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mutationQueue.Count").Str("queue", q.queue).Msg("failed to count mutations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func (q *mutationQueue) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteMutationQuery(q.queue, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q.execAffectingOne(ctx, "mutationQueue.Delete", id, ErrMutationNotFound, query, args)
}

func (q *mutationQueue) UpdateRetries(ctx context.Context, id int64, retries int) error {
	query, args, err := buildUpdateRetriesQuery(q.queue, id, retries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q.execAffectingOne(ctx, "mutationQueue.UpdateRetries", id, ErrMutationNotFound, query, args)
}

func (q *mutationQueue) execAffectingOne(ctx context.Context, fn string, id int64, notFound error, query string, args []any) error {
	res, err := q.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("queue", q.queue).Int64("id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func (q *mutationQueue) MoveToDeadLetter(ctx context.Context, m models.Mutation, lastErr string) error {
	log := logger.FromContext(ctx)

	m.Queue = q.queue
	encoded, err := encodePayload(m.Payload)
	if err != nil {
		return err
	}

	insertQuery, insertArgs, err := buildInsertDeadQuery(m, encoded, q.now(), lastErr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := buildDeleteMutationQuery(q.queue, m.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return q.inTx(ctx, "mutationQueue.MoveToDeadLetter", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrMutationNotFound
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "mutationQueue.MoveToDeadLetter").
				Str("queue", q.queue).
				Int64("id", m.ID).
				Msg("failed to insert dead mutation")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (q *mutationQueue) ListDeadLetter(ctx context.Context) ([]models.DeadMutation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDeadQuery(q.queue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "mutationQueue.ListDeadLetter").Str("queue", q.queue).Msg("failed to query dead mutations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var dead []models.DeadMutation
	for rows.Next() {
		d, scanErr := scanDeadMutation(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		dead = append(dead, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return dead, nil
}

func (q *mutationQueue) DeleteDeadLetter(ctx context.Context, id int64) error {
	query, args, err := buildDeleteDeadQuery(q.queue, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q.execAffectingOne(ctx, "mutationQueue.DeleteDeadLetter", id, ErrDeadMutationNotFound, query, args)
}

func (q *mutationQueue) ReviveDeadLetter(ctx context.Context, id int64) (models.Mutation, error) {
	getQuery, getArgs, err := buildGetDeadQuery(q.queue, id)
	if err != nil {
		return models.Mutation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := buildDeleteDeadQuery(q.queue, id)
	if err != nil {
		return models.Mutation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var revived models.Mutation
	err = q.inTx(ctx, "mutationQueue.ReviveDeadLetter", func(tx *sql.Tx) error {
		dead, err := scanDeadMutation(tx.QueryRowContext(ctx, getQuery, getArgs...))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDeadMutationNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		revived = dead.Mutation
		revived.Retries = 0
		revived.Timestamp = fromUnixNano(toUnixNano(q.now()))

		encoded, err := encodePayload(revived.Payload)
		if err != nil {
			return err
		}
		insertQuery, insertArgs, err := buildReinsertMutationQuery(revived, encoded)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		return models.Mutation{}, err
	}
	return revived, nil
}

// inTx runs fn in a transaction and rolls back on any error.
func (q *mutationQueue) inTx(ctx context.Context, fn string, body func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = body(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", fn).Msg("failed to rollback transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
