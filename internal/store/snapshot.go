// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"
	"time"

	"github.com/VacTuzX-dot/xfrontend/models"
)

type memorySnapshotStore struct {
	mu sync.RWMutex

	dispatched uint64
	applied    uint64
	floor      uint64

	records   []models.UserRecord
	index     map[models.RecordID]int
	states    map[models.RecordID]models.SyncState
	updatedAt time.Time
}

// NewSnapshotStore returns an empty [SnapshotStore].
func NewSnapshotStore() SnapshotStore {
	return &memorySnapshotStore{
		index:  make(map[models.RecordID]int),
		states: make(map[models.RecordID]models.SyncState),
	}
}

func (s *memorySnapshotStore) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatched++
	return s.dispatched
}

func (s *memorySnapshotStore) ApplyFetch(seq uint64, records []models.UserRecord, at time.Time) ([]models.UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied || seq <= s.floor {
		return nil, false
	}

	previous := s.records
	s.records = slices.Clone(records)
	s.reindex()

	// pending mutations are still in flight; everything else is resolved
	states := make(map[models.RecordID]models.SyncState, len(s.records))
	for id := range s.index {
		if s.states[id] == models.SyncPending {
			states[id] = models.SyncPending
		}
	}
	s.states = states

	s.applied = seq
	s.updatedAt = at

	return previous, true
}

func (s *memorySnapshotStore) Invalidate() {
	s.mu.Lock()
	s.floor = s.dispatched
	s.mu.Unlock()
}

func (s *memorySnapshotStore) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]models.RecordView, len(s.records))
	for i, r := range s.records {
		views[i] = models.RecordView{UserRecord: r, State: s.states[r.ID]}
	}

	return models.Snapshot{
		Records:   views,
		Sequence:  s.applied,
		UpdatedAt: s.updatedAt,
	}
}

func (s *memorySnapshotStore) Get(id models.RecordID) (models.RecordView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.RecordView{}, false
	}
	return models.RecordView{UserRecord: s.records[i], State: s.states[id]}, true
}

func (s *memorySnapshotStore) MarkState(state models.SyncState, ids ...models.RecordID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.index[id]; !ok {
			continue
		}
		if state == models.SyncSynced {
			delete(s.states, id)
			continue
		}
		s.states[id] = state
	}
}

func (s *memorySnapshotStore) Remove(ids ...models.RecordID) {
	if len(ids) == 0 {
		return
	}

	drop := models.NewIDSet(ids...)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = slices.DeleteFunc(slices.Clone(s.records), func(r models.UserRecord) bool {
		return drop.Has(r.ID)
	})
	for id := range drop {
		delete(s.states, id)
	}
	s.reindex()
}

func (s *memorySnapshotStore) Replace(record models.UserRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[record.ID]
	if !ok {
		return false
	}

	records := slices.Clone(s.records)
	records[i] = record
	s.records = records
	return true
}

// reindex must be called with mu held.
func (s *memorySnapshotStore) reindex() {
	index := make(map[models.RecordID]int, len(s.records))
	for i, r := range s.records {
		index[r.ID] = i
	}
	s.index = index
}
