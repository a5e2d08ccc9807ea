// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the per-record mutation state kept alongside the snapshot.
// An applied fetch resets every entry to SyncSynced except the pending ones,
// whose mutation has not completed yet.
type SyncState int

const (
	// SyncSynced means the entry mirrors the last applied fetch.
	SyncSynced SyncState = iota

	// SyncPending means a mutation for the entry is in flight.
	SyncPending

	// SyncFailed means the last mutation for the entry was rejected.
	SyncFailed
)

// String implements [fmt.Stringer].
func (s SyncState) String() string {
	switch s {
	case SyncPending:
		return "pending"
	case SyncFailed:
		return "failed"
	default:
		return "synced"
	}
}

// RecordView is a snapshot entry together with its mutation state.
type RecordView struct {
	UserRecord
	State SyncState
}

// Snapshot is an immutable copy of the registry as last applied.
type Snapshot struct {
	// Records keeps backend order.
	Records []RecordView

	// Sequence is the dispatch sequence of the fetch that produced it.
	Sequence uint64

	// UpdatedAt is when the snapshot was applied. Zero before the first fetch.
	UpdatedAt time.Time
}

// Users returns the plain records of the snapshot.
func (s Snapshot) Users() []UserRecord {
	out := make([]UserRecord, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.UserRecord
	}
	return out
}

// IDSet is an unordered set of record identifiers.
type IDSet map[RecordID]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...RecordID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id RecordID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s IDSet) Add(id RecordID) {
	s[id] = struct{}{}
}

// Remove deletes id.
func (s IDSet) Remove(id RecordID) {
	delete(s, id)
}
