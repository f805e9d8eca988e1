package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/crypto"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/store"
	"github.com/MKhiriev/go-life-keeper/internal/utils"
	"github.com/MKhiriev/go-life-keeper/internal/validators"
	"github.com/MKhiriev/go-life-keeper/models"
)

type recordService struct {
	records   store.RecordRepository
	crypto    crypto.Service
	engines   []SyncEngine
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

// NewRecordService returns the write path for domain records. Every write is
// sealed, saved locally and enqueued into each of engines, which are then
// asked to drain eagerly.
func NewRecordService(records store.RecordRepository, cryptoService crypto.Service, validator validators.Validator, log *logger.Logger, engines ...SyncEngine) RecordService {
	return &recordService{
		records:   records,
		crypto:    cryptoService,
		engines:   engines,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    log.WithComponent("records"),
	}
}

func (s *recordService) Create(ctx context.Context, body models.RecordBody) (models.RecordView, error) {
	if err := s.validate(ctx, body); err != nil {
		return models.RecordView{}, err
	}

	sealed, err := s.seal(ctx, body)
	if err != nil {
		return models.RecordView{}, err
	}

	now := s.now()
	record := models.Record{
		ID:        s.ids.Generate(),
		Kind:      body.Kind(),
		Sealed:    sealed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.write(ctx, models.OpCreate, record, time.Time{}); err != nil {
		return models.RecordView{}, err
	}

	return models.RecordView{Record: record, Body: body}, nil
}

func (s *recordService) Update(ctx context.Context, ref models.RecordRef, body models.RecordBody) (models.RecordView, error) {
	if body != nil && body.Kind() != ref.Kind {
		return models.RecordView{}, ErrKindMismatch
	}
	if err := s.validate(ctx, body); err != nil {
		return models.RecordView{}, err
	}

	record, err := s.load(ctx, ref)
	if err != nil {
		return models.RecordView{}, err
	}

	sealed, err := s.seal(ctx, body)
	if err != nil {
		return models.RecordView{}, err
	}

	base := record.UpdatedAt
	record.Sealed = sealed
	record.UpdatedAt = s.touch(base)

	if err = s.write(ctx, models.OpUpdate, record, base); err != nil {
		return models.RecordView{}, err
	}

	return models.RecordView{Record: record, Body: body}, nil
}

func (s *recordService) Delete(ctx context.Context, ref models.RecordRef) error {
	record, err := s.load(ctx, ref)
	if err != nil {
		return err
	}

	base := record.UpdatedAt
	record.Deleted = true
	record.UpdatedAt = s.touch(base)

	return s.write(ctx, models.OpDelete, record, base)
}

func (s *recordService) Get(ctx context.Context, ref models.RecordRef) (models.RecordView, error) {
	record, err := s.load(ctx, ref)
	if err != nil {
		return models.RecordView{}, err
	}

	return s.open(ctx, record)
}

func (s *recordService) List(ctx context.Context, kind models.RecordKind) ([]models.RecordView, error) {
	if !kind.Valid() {
		return nil, models.ErrUnknownRecordKind
	}

	records, err := s.records.ListRecords(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", kind, err)
	}

	views := make([]models.RecordView, 0, len(records))
	for _, record := range records {
		view, err := s.open(ctx, record)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *recordService) Unlock(ctx context.Context, password string, salt []byte) error {
	if len(salt) == 0 {
		return ErrInvalidSalt
	}

	key := s.crypto.DeriveKey(password, salt)
	if err := s.crypto.SetSessionKey(ctx, key); err != nil {
		return fmt.Errorf("install session key: %w", err)
	}
	clear(key)

	// Engines whose apply needs the key (the vault) can make progress now.
	for _, e := range s.engines {
		e.TriggerDrain()
	}

	return nil
}

func (s *recordService) Lock(ctx context.Context) error {
	if err := s.crypto.SetSessionKey(ctx, nil); err != nil {
		return fmt.Errorf("clear session key: %w", err)
	}
	return nil
}

func (s *recordService) Unlocked() bool {
	return s.crypto.Unlocked()
}

func (s *recordService) validate(ctx context.Context, body models.RecordBody) error {
	if body == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidRecordBody)
	}
	if err := s.validator.Validate(ctx, body); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecordBody, err)
	}
	return nil
}

func (s *recordService) seal(ctx context.Context, body models.RecordBody) (string, error) {
	sealed, err := s.crypto.EncryptJSON(ctx, body)
	if errors.Is(err, crypto.ErrNoSessionKey) {
		return "", ErrSessionLocked
	}
	if err != nil {
		return "", fmt.Errorf("seal %s body: %w", body.Kind(), err)
	}
	return sealed, nil
}

func (s *recordService) load(ctx context.Context, ref models.RecordRef) (models.Record, error) {
	if !ref.Kind.Valid() {
		return models.Record{}, models.ErrUnknownRecordKind
	}

	record, err := s.records.GetRecord(ctx, ref)
	if err != nil {
		return models.Record{}, fmt.Errorf("load record %s: %w", ref, err)
	}
	if record.Deleted {
		return models.Record{}, fmt.Errorf("load record %s: %w", ref, store.ErrRecordNotFound)
	}

	return record, nil
}

// touch returns a last-write timestamp strictly after prev.
func (s *recordService) touch(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

// write saves record locally and enqueues it with base, the UpdatedAt the
// edit was made on top of.
func (s *recordService) write(ctx context.Context, op models.Op, record models.Record, base time.Time) error {
	if err := s.records.SaveRecord(ctx, record); err != nil {
		return fmt.Errorf("save record %s: %w", record.Ref(), err)
	}

	payload := record
	payload.BaseUpdatedAt = base

	mutationType := models.NewMutationType(record.Kind, op)
	for _, e := range s.engines {
		if _, err := e.Enqueue(ctx, mutationType, payload); err != nil {
			return fmt.Errorf("enqueue into %s: %w", e.Name(), err)
		}
	}

	for _, e := range s.engines {
		e.TriggerDrain()
	}

	s.logger.Debug().
		Str("func", "recordService.write").
		Str("type", string(mutationType)).
		Str("record", record.Ref().String()).
		Msg("record written")

	return nil
}

// open decrypts the body of record. A record that cannot be opened is
// returned without a body; only a broken crypto channel is an error.
func (s *recordService) open(ctx context.Context, record models.Record) (models.RecordView, error) {
	view := models.RecordView{Record: record}

	plaintext, ok, err := s.crypto.Decrypt(ctx, record.Sealed)
	if err != nil {
		return models.RecordView{}, fmt.Errorf("decrypt record %s: %w", record.Ref(), err)
	}
	if !ok {
		return view, nil
	}

	body, err := models.DecodeBody(record.Kind, plaintext)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "recordService.open").Str("record", record.Ref().String()).Msg("undecodable record body")
		return view, nil
	}
	view.Body = body

	return view, nil
}
