// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VacTuzX-dot/xfrontend/internal/adapter"
	"github.com/VacTuzX-dot/xfrontend/internal/crypto"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/store"
	"github.com/VacTuzX-dot/xfrontend/models"
)

// DefaultBatchSize is the number of requests in flight per batch.
const DefaultBatchSize = 10

type mutationDispatcher struct {
	adapter   adapter.RegistryAdapter
	store     store.SnapshotStore
	fetcher   RegistryFetcher
	hasher    crypto.PasswordHasher
	batchSize int
	logger    *logger.Logger
}

// NewMutationDispatcher returns a [MutationDispatcher]. A batchSize below one
// means DefaultBatchSize.
func NewMutationDispatcher(
	a adapter.RegistryAdapter,
	s store.SnapshotStore,
	f RegistryFetcher,
	h crypto.PasswordHasher,
	batchSize int,
	log *logger.Logger,
) MutationDispatcher {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &mutationDispatcher{
		adapter:   a,
		store:     s,
		fetcher:   f,
		hasher:    h,
		batchSize: batchSize,
		logger:    log.Component("mutationDispatcher"),
	}
}

func (d *mutationDispatcher) DeleteOne(ctx context.Context, id models.RecordID) error {
	if id == "" {
		return ErrEmptyRecordID
	}

	d.store.MarkState(models.SyncPending, id)
	err := d.deleteRecord(ctx, id)
	d.refresh(ctx)

	return err
}

func (d *mutationDispatcher) DeleteMany(ctx context.Context, ids []models.RecordID, progress ProgressFunc) models.BatchResult {
	unique := uniqueIDs(ids)
	result := models.BatchResult{
		Requested: len(ids),
		Skipped:   len(ids) - len(unique),
	}
	if len(unique) == 0 {
		return result
	}

	d.store.MarkState(models.SyncPending, unique...)

	tally := runBatches(ctx, unique, d.batchSize,
		func(id models.RecordID) models.RecordID { return id },
		d.deleteRecord,
		progress,
	)
	tally.fill(&result)

	d.logger.Info().
		Int("requested", result.Requested).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Str("outcome", result.Outcome().String()).
		Msg("bulk delete finished")

	d.refresh(ctx)
	return result
}

func (d *mutationDispatcher) RehashOne(ctx context.Context, record models.UserRecord) error {
	if record.ID == "" {
		return ErrEmptyRecordID
	}
	if record.IsHashed() {
		return nil
	}

	err := d.rehashRecord(ctx, record)
	d.refresh(ctx)

	return err
}

func (d *mutationDispatcher) RehashAll(ctx context.Context, records []models.UserRecord, progress ProgressFunc) models.BatchResult {
	plain := make([]models.UserRecord, 0, len(records))
	for _, r := range records {
		if !r.IsHashed() {
			plain = append(plain, r)
		}
	}

	result := models.BatchResult{
		Requested: len(records),
		Skipped:   len(records) - len(plain),
	}
	if len(plain) == 0 {
		return result
	}

	tally := runBatches(ctx, plain, d.batchSize,
		func(r models.UserRecord) models.RecordID { return r.ID },
		d.rehashRecord,
		progress,
	)
	tally.fill(&result)

	d.logger.Info().
		Int("plaintext", len(plain)).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Int("cost", d.hasher.Cost()).
		Msg("rehash finished")

	d.refresh(ctx)
	return result
}

func (d *mutationDispatcher) Update(ctx context.Context, record models.UserRecord) error {
	if record.ID == "" {
		return ErrEmptyRecordID
	}
	if !record.IsHashed() {
		hashed, err := d.storedHashed(ctx, record.ID)
		if err != nil {
			return err
		}
		if hashed {
			return ErrPasswordDowngrade
		}
	}

	err := d.updateRecord(ctx, record)
	d.refresh(ctx)

	return err
}

func (d *mutationDispatcher) Edit(ctx context.Context, id models.RecordID, req models.EditRequest) (models.UserRecord, error) {
	if id == "" {
		return models.UserRecord{}, ErrEmptyRecordID
	}

	original, err := d.adapter.GetUser(ctx, id)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrRecordNotFound) {
			d.refresh(ctx)
		}
		return models.UserRecord{}, err
	}

	edited, err := d.applyEdit(original, req)
	if err != nil {
		return models.UserRecord{}, err
	}
	if original.IsHashed() && !edited.IsHashed() {
		return models.UserRecord{}, ErrPasswordDowngrade
	}

	err = d.updateRecord(ctx, edited)
	d.refresh(ctx)
	if err != nil {
		return models.UserRecord{}, err
	}

	return edited, nil
}

func (d *mutationDispatcher) Create(ctx context.Context, req models.SignUpRequest) (models.UserRecord, error) {
	record := req.UserRecord
	record.ID = ""

	password, err := crypto.HashIfPlain(d.hasher, record.Password)
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("error hashing password: %w", err)
	}
	record.Password = password

	created, err := d.adapter.CreateUser(ctx, record)
	d.store.Invalidate()
	if err != nil {
		d.logger.Err(err).Str("username", record.Username).Msg("create failed")
		return models.UserRecord{}, mapAdapterError(err)
	}

	d.logger.Info().Str("id", created.ID.String()).Str("username", created.Username).Msg("user created")
	d.refresh(ctx)

	return created, nil
}

// storedHashed reports whether the current password of id is hashed. Records
// missing from the snapshot are read from the registry.
func (d *mutationDispatcher) storedHashed(ctx context.Context, id models.RecordID) (bool, error) {
	if current, ok := d.store.Get(id); ok {
		return current.IsHashed(), nil
	}

	current, err := d.adapter.GetUser(ctx, id)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrRecordNotFound) {
			d.refresh(ctx)
		}
		return false, err
	}

	return current.IsHashed(), nil
}

// applyEdit merges the form into a full copy of original.
func (d *mutationDispatcher) applyEdit(original models.UserRecord, req models.EditRequest) (models.UserRecord, error) {
	edited := original
	edited.TitlePrefix = req.TitlePrefix
	edited.FirstName = req.FirstName
	edited.LastName = req.LastName
	edited.Username = req.Username
	edited.Address = req.Address
	edited.Sex = req.Sex
	edited.Birthday = req.Birthday

	if req.NewPassword == "" {
		return edited, nil
	}

	password, err := crypto.HashIfPlain(d.hasher, req.NewPassword)
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("error hashing password: %w", err)
	}
	edited.Password = password

	return edited, nil
}

func (d *mutationDispatcher) deleteRecord(ctx context.Context, id models.RecordID) error {
	err := d.adapter.DeleteUser(ctx, id)
	d.store.Invalidate()
	if err != nil {
		d.store.MarkState(models.SyncFailed, id)
		d.logger.Err(err).Str("id", id.String()).Msg("delete failed")
		return mapAdapterError(err)
	}

	d.store.Remove(id)
	return nil
}

func (d *mutationDispatcher) rehashRecord(ctx context.Context, record models.UserRecord) error {
	hashed, err := d.hasher.Hash(record.Password)
	if err != nil {
		d.store.MarkState(models.SyncFailed, record.ID)
		return fmt.Errorf("error hashing password of %s: %w", record.ID, err)
	}

	return d.updateRecord(ctx, record.WithPassword(hashed))
}

func (d *mutationDispatcher) updateRecord(ctx context.Context, record models.UserRecord) error {
	d.store.MarkState(models.SyncPending, record.ID)

	err := d.adapter.UpdateUser(ctx, record)
	d.store.Invalidate()
	if err != nil {
		d.store.MarkState(models.SyncFailed, record.ID)
		d.logger.Err(err).Str("id", record.ID.String()).Msg("update failed")
		return mapAdapterError(err)
	}

	d.store.Replace(record)
	d.store.MarkState(models.SyncSynced, record.ID)
	return nil
}

// refresh brings the snapshot back in line with the backend after a mutation.
func (d *mutationDispatcher) refresh(ctx context.Context) {
	if d.fetcher == nil || ctx.Err() != nil {
		return
	}
	_, _ = d.fetcher.FetchAll(ctx, models.FetchBackground)
}

func uniqueIDs(ids []models.RecordID) []models.RecordID {
	seen := models.NewIDSet()
	out := make([]models.RecordID, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen.Has(id) {
			continue
		}
		seen.Add(id)
		out = append(out, id)
	}
	return out
}
