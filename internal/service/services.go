// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/VacTuzX-dot/xfrontend/internal/adapter"
	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/crypto"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/store"
)

type ClientServices struct {
	Fetcher    RegistryFetcher
	Dispatcher MutationDispatcher
	Sessions   SessionService
	Snapshot   store.SnapshotStore
}

func NewClientServices(a adapter.RegistryAdapter, storages *store.ClientStorages, cfg *config.ClientConfig, log *logger.Logger) (*ClientServices, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App.HashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	fetcher := NewRegistryFetcher(a, storages.Snapshot, cfg.Adapter.RequestTimeout, log)
	dispatcher := NewMutationDispatcher(a, storages.Snapshot, fetcher, hasher, cfg.Workers.BatchSize, log)

	return &ClientServices{
		Fetcher:    fetcher,
		Dispatcher: NewDispatcherValidationService().Wrap(dispatcher),
		Sessions:   NewSessionService(a, storages.Sessions, log),
		Snapshot:   storages.Snapshot,
	}, nil
}
