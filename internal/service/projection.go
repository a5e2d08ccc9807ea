// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"sync"
	"time"

	"github.com/VacTuzX-dot/xfrontend/models"
)

// Searchable is anything Filter can match against.
type Searchable interface {
	SearchText() string
}

// Filter returns the records matching every whitespace-separated term of
// query, case-insensitively. An empty query matches everything. Order is
// preserved.
func Filter[T Searchable](records []T, query string) []T {
	terms := strings.Fields(strings.ToLower(query))

	out := make([]T, 0, len(records))
	for _, r := range records {
		if matchesAll(strings.ToLower(r.SearchText()), terms) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll(text string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

// Selection holds checked ids independently of any filter.
type Selection struct {
	ids models.IDSet
}

func NewSelection() *Selection {
	return &Selection{ids: models.NewIDSet()}
}

func (s *Selection) Toggle(id models.RecordID) {
	if s.ids.Has(id) {
		s.ids.Remove(id)
		return
	}
	s.ids.Add(id)
}

func (s *Selection) Has(id models.RecordID) bool {
	return s.ids.Has(id)
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) Clear() {
	s.ids = models.NewIDSet()
}

// AllSelected reports whether visible is non-empty and fully selected.
func (s *Selection) AllSelected(visible []models.RecordID) bool {
	if len(visible) == 0 {
		return false
	}
	for _, id := range visible {
		if !s.ids.Has(id) {
			return false
		}
	}
	return true
}

// ToggleAllVisible selects every visible id, or clears exactly those when
// they are all selected already. Ids outside visible are never touched.
func (s *Selection) ToggleAllVisible(visible []models.RecordID) {
	if s.AllSelected(visible) {
		for _, id := range visible {
			s.ids.Remove(id)
		}
		return
	}
	for _, id := range visible {
		s.ids.Add(id)
	}
}

// Retain drops selected ids that no longer exist.
func (s *Selection) Retain(existing []models.RecordID) {
	keep := models.NewIDSet(existing...)
	for id := range s.ids {
		if !keep.Has(id) {
			s.ids.Remove(id)
		}
	}
}

// Ordered returns the selected ids in the order they appear in records.
func (s *Selection) Ordered(records []models.RecordID) []models.RecordID {
	out := make([]models.RecordID, 0, len(s.ids))
	for _, id := range records {
		if s.ids.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Highlights keeps ids flagged for a short while, e.g. rows whose password
// was just hashed.
type Highlights struct {
	mu    sync.Mutex
	ttl   time.Duration
	until map[models.RecordID]time.Time
}

func NewHighlights(ttl time.Duration) *Highlights {
	return &Highlights{ttl: ttl, until: make(map[models.RecordID]time.Time)}
}

// Add flags ids until now+ttl. Re-adding an id extends it.
func (h *Highlights) Add(ids models.IDSet, now time.Time) {
	if len(ids) == 0 || h.ttl <= 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id := range ids {
		h.until[id] = now.Add(h.ttl)
	}
}

func (h *Highlights) Active(id models.RecordID, now time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.until[id]
	return ok && now.Before(t)
}

// Expire drops flags that ran out and reports whether any did.
func (h *Highlights) Expire(now time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	changed := false
	for id, t := range h.until {
		if !now.Before(t) {
			delete(h.until, id)
			changed = true
		}
	}
	return changed
}

func (h *Highlights) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.until)
}
