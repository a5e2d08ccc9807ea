// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the client's state: the in-memory registry snapshot
// and the SQLite-backed session of a remembered sign-in.
package store

import (
	"context"
	"time"

	"github.com/VacTuzX-dot/xfrontend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotStore owns the single in-process copy of the registry.
//
// Every fetch is tagged with a sequence number when it is dispatched. A
// response is applied only if its sequence is newer than both the last
// applied one and the staleness floor raised by Invalidate, so a slow poll
// can never overwrite a newer fetch or the effect of a completed mutation.
type SnapshotStore interface {
	// BeginFetch returns the sequence number of a fetch about to be sent.
	BeginFetch() uint64

	// ApplyFetch replaces the snapshot with records if seq is still current.
	// It returns the records it replaced and whether it applied.
	ApplyFetch(seq uint64, records []models.UserRecord, at time.Time) (previous []models.UserRecord, applied bool)

	// Invalidate marks every fetch dispatched so far as stale. Mutations call
	// it once they complete.
	Invalidate()

	// Snapshot returns a copy of the current state.
	Snapshot() models.Snapshot

	// Get returns one record of the snapshot.
	Get(id models.RecordID) (models.RecordView, bool)

	// MarkState sets the mutation state of the given ids. Unknown ids are
	// ignored.
	MarkState(state models.SyncState, ids ...models.RecordID)

	// Remove drops ids from the snapshot.
	Remove(ids ...models.RecordID)

	// Replace overwrites the record with the same id, if present.
	Replace(record models.UserRecord) bool
}

// SessionRepository persists the session of a user who asked to be
// remembered.
type SessionRepository interface {
	// Save stores s, replacing any previous session.
	Save(ctx context.Context, s models.Session) error

	// Load returns the stored session or ErrSessionNotFound.
	Load(ctx context.Context) (models.Session, error)

	// Delete removes the stored session. Deleting nothing is not an error.
	Delete(ctx context.Context) error
}
