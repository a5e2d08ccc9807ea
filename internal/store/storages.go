// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
)

// ClientStorages groups the stores of the terminal client.
type ClientStorages struct {
	Snapshot SnapshotStore
	Sessions SessionRepository

	db *DB
}

// NewClientStorages opens and migrates the session database and creates an
// empty snapshot.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewClientStorages").Msg("error migrating session database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating session database: %w", err)
	}

	return &ClientStorages{
		Snapshot: NewSnapshotStore(),
		Sessions: NewSessionRepository(db, log),
		db:       db,
	}, nil
}

// Close releases the session database.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
