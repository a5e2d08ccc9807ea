// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/adapter"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/store"
	"github.com/VacTuzX-dot/xfrontend/models"
)

type registryFetcher struct {
	adapter adapter.RegistryAdapter
	store   store.SnapshotStore
	timeout time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

// NewRegistryFetcher returns a [RegistryFetcher] bounded by timeout per request.
func NewRegistryFetcher(a adapter.RegistryAdapter, s store.SnapshotStore, timeout time.Duration, log *logger.Logger) RegistryFetcher {
	return &registryFetcher{
		adapter: a,
		store:   s,
		timeout: timeout,
		now:     time.Now,
		logger:  log.Component("registryFetcher"),
	}
}

func (f *registryFetcher) FetchAll(ctx context.Context, mode models.FetchMode) (models.FetchResult, error) {
	seq := f.store.BeginFetch()

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	records, err := f.adapter.ListUsers(ctx)
	if err != nil {
		if mode == models.FetchBackground {
			f.logger.Warn().Err(err).Uint64("seq", seq).Msg("background fetch failed")
			return models.FetchResult{Sequence: seq}, nil
		}
		f.logger.Err(err).Uint64("seq", seq).Msg("fetch failed")
		return models.FetchResult{Sequence: seq}, err
	}

	result := models.FetchResult{Records: records, Sequence: seq, NewlyHashed: models.NewIDSet()}

	previous, applied := f.store.ApplyFetch(seq, records, f.now())
	if !applied {
		f.logger.Debug().Uint64("seq", seq).Str("mode", mode.String()).Msg("stale fetch discarded")
		return result, nil
	}

	result.Applied = true
	result.NewlyHashed = DetectNewlyHashed(previous, records)

	f.logger.Debug().
		Uint64("seq", seq).
		Str("mode", mode.String()).
		Int("records", len(records)).
		Int("newly_hashed", len(result.NewlyHashed)).
		Msg("snapshot applied")

	return result, nil
}
