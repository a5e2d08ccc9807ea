// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BatchOutcome names the end state of a bulk mutation.
type BatchOutcome int

const (
	// BatchEmpty means nothing needed to be done.
	BatchEmpty BatchOutcome = iota

	// BatchSucceeded means every attempted item succeeded.
	BatchSucceeded

	// BatchPartial means some items succeeded and some failed.
	BatchPartial

	// BatchFailed means every attempted item failed.
	BatchFailed
)

// String implements [fmt.Stringer].
func (o BatchOutcome) String() string {
	switch o {
	case BatchSucceeded:
		return "succeeded"
	case BatchPartial:
		return "partial"
	case BatchFailed:
		return "failed"
	default:
		return "empty"
	}
}

// BatchResult is the aggregate result of DeleteMany and RehashAll.
//
// Individual failures are counted, never returned as errors. Requested is the
// number of items handed to the operation, Skipped the ones that needed no
// request (already hashed records in a rehash). Succeeded+Failed+Skipped
// always equals Requested.
type BatchResult struct {
	Requested int `json:"requested"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`

	// FailedIDs lists the identifiers whose request failed.
	FailedIDs []RecordID `json:"failed_ids,omitempty"`
}

// Attempted is the number of requests actually issued.
func (r BatchResult) Attempted() int {
	return r.Succeeded + r.Failed
}

// Outcome classifies the result.
func (r BatchResult) Outcome() BatchOutcome {
	switch {
	case r.Attempted() == 0:
		return BatchEmpty
	case r.Failed == 0:
		return BatchSucceeded
	case r.Succeeded == 0:
		return BatchFailed
	default:
		return BatchPartial
	}
}

// BatchProgress is reported after every completed batch.
type BatchProgress struct {
	// Done is the number of items attempted so far.
	Done int

	// Total is the number of items that will be attempted.
	Total int

	Succeeded int
	Failed    int
}

// Percent returns Done/Total as 0..100. An empty run is complete.
func (p BatchProgress) Percent() int {
	if p.Total <= 0 {
		return 100
	}
	return p.Done * 100 / p.Total
}

// Ratio returns Done/Total as 0..1 for progress bars.
func (p BatchProgress) Ratio() float64 {
	if p.Total <= 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}
