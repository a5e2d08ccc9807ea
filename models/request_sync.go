// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FetchMode selects how a registry fetch reports failures.
type FetchMode int

const (
	// FetchManual surfaces every failure to the caller.
	FetchManual FetchMode = iota

	// FetchBackground logs failures and leaves the snapshot untouched.
	FetchBackground
)

// String implements [fmt.Stringer].
func (m FetchMode) String() string {
	if m == FetchBackground {
		return "background"
	}
	return "manual"
}

// FetchResult is what a single FetchAll call produced.
type FetchResult struct {
	// Records is the list returned by the backend, in backend order.
	Records []UserRecord

	// Sequence is the number the fetch was tagged with at dispatch.
	Sequence uint64

	// Applied is false when a newer fetch or a mutation superseded this one
	// and the response was discarded.
	Applied bool

	// NewlyHashed holds the ids whose password went from plaintext to hashed
	// between the previous snapshot and this one. Empty unless Applied.
	NewlyHashed IDSet
}
