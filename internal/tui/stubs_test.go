// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/VacTuzX-dot/xfrontend/internal/service"
	"github.com/VacTuzX-dot/xfrontend/models"
)

type stubFetcher struct {
	result models.FetchResult
	err    error
	calls  int
}

func (s *stubFetcher) FetchAll(context.Context, models.FetchMode) (models.FetchResult, error) {
	s.calls++
	return s.result, s.err
}

type stubDispatcher struct {
	mu sync.Mutex

	deleted   []models.RecordID
	deleteErr error

	many     []models.RecordID
	rehashed []models.UserRecord
	batch    models.BatchResult

	created   []models.SignUpRequest
	createErr error
	edited    []models.EditRequest
}

var _ service.MutationDispatcher = (*stubDispatcher)(nil)

func (s *stubDispatcher) DeleteOne(_ context.Context, id models.RecordID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

func (s *stubDispatcher) DeleteMany(_ context.Context, ids []models.RecordID, progress service.ProgressFunc) models.BatchResult {
	s.mu.Lock()
	s.many = append(s.many, ids...)
	s.mu.Unlock()
	if progress != nil {
		progress(models.BatchProgress{Done: len(ids), Total: len(ids), Succeeded: len(ids)})
	}
	return s.batch
}

func (s *stubDispatcher) RehashOne(_ context.Context, rec models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rehashed = append(s.rehashed, rec)
	return nil
}

func (s *stubDispatcher) RehashAll(_ context.Context, records []models.UserRecord, progress service.ProgressFunc) models.BatchResult {
	s.mu.Lock()
	s.rehashed = append(s.rehashed, records...)
	s.mu.Unlock()
	if progress != nil {
		progress(models.BatchProgress{Done: 1, Total: 1, Succeeded: 1})
	}
	return s.batch
}

func (s *stubDispatcher) Update(context.Context, models.UserRecord) error {
	return nil
}

func (s *stubDispatcher) Edit(_ context.Context, id models.RecordID, req models.EditRequest) (models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edited = append(s.edited, req)
	return models.UserRecord{ID: id}, nil
}

func (s *stubDispatcher) Create(_ context.Context, req models.SignUpRequest) (models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, req)
	return req.UserRecord, s.createErr
}

type stubSessions struct {
	session   models.Session
	signInErr error

	signedIn   []string
	remembered []bool
	signOuts   int
}

var _ service.SessionService = (*stubSessions)(nil)

func (s *stubSessions) SignIn(_ context.Context, username, _ string, remember bool) (models.Session, error) {
	s.signedIn = append(s.signedIn, username)
	s.remembered = append(s.remembered, remember)
	if s.signInErr != nil {
		return models.Session{}, s.signInErr
	}
	return s.session, nil
}

func (s *stubSessions) Restore(context.Context) (models.Session, error) {
	return s.session, nil
}

func (s *stubSessions) Current() (models.Session, bool) {
	return s.session, s.session.Valid()
}

func (s *stubSessions) SignOut(context.Context) error {
	s.signOuts++
	return nil
}
