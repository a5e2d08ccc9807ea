// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/VacTuzX-dot/xfrontend/models"
)

// RegistryFetcher reads the whole registry into the snapshot store.
type RegistryFetcher interface {
	// FetchAll issues GET /api/users under the request timeout and applies
	// the response unless a newer fetch or a completed mutation superseded
	// it. In FetchManual mode every failure is returned. In FetchBackground
	// mode failures are logged and FetchAll returns a zero result and nil.
	FetchAll(ctx context.Context, mode models.FetchMode) (models.FetchResult, error)
}

// ProgressFunc receives cumulative progress after every batch.
type ProgressFunc func(models.BatchProgress)

// MutationDispatcher issues every write against the registry.
//
// Single-record operations return their error. Batch operations attempt
// every target exactly once and report failures only through the
// [models.BatchResult].
type MutationDispatcher interface {
	// DeleteOne deletes one record. On success the record leaves the
	// snapshot and a background refresh follows; on failure the record is
	// marked failed, the snapshot is refetched and the error returned.
	DeleteOne(ctx context.Context, id models.RecordID) error

	// DeleteMany deletes ids in batches, concurrently within a batch and
	// sequentially across batches. Duplicate ids are attempted once and
	// counted as skipped.
	DeleteMany(ctx context.Context, ids []models.RecordID, progress ProgressFunc) models.BatchResult

	// RehashOne replaces a plaintext password with its bcrypt hash through a
	// full-record update. Records that are already hashed are left alone.
	RehashOne(ctx context.Context, record models.UserRecord) error

	// RehashAll rehashes every plaintext record of records in batches.
	// Hashed records are skipped without a request; progress counts only
	// the plaintext ones.
	RehashAll(ctx context.Context, records []models.UserRecord, progress ProgressFunc) models.BatchResult

	// Update replaces the whole record. It refuses to turn a hashed password
	// back into plaintext.
	Update(ctx context.Context, record models.UserRecord) error

	// Edit loads the record, merges req into a full copy and updates it.
	Edit(ctx context.Context, id models.RecordID, req models.EditRequest) (models.UserRecord, error)

	// Create registers a new record with a hashed password.
	Create(ctx context.Context, req models.SignUpRequest) (models.UserRecord, error)
}

// DispatcherWrapper decorates a MutationDispatcher.
type DispatcherWrapper interface {
	Wrap(MutationDispatcher) MutationDispatcher
}

// SessionService owns the sign-in state of the client.
type SessionService interface {
	// SignIn logs in through the proxy and opens a session. A remembered
	// session is persisted and survives a restart.
	SignIn(ctx context.Context, username, password string, remember bool) (models.Session, error)

	// Restore reopens a persisted session. Expired sessions are cleared and
	// reported as ErrSessionExpired.
	Restore(ctx context.Context) (models.Session, error)

	// Current returns the open session, if any.
	Current() (models.Session, bool)

	// SignOut forgets the session everywhere.
	SignOut(ctx context.Context) error
}
