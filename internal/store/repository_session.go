// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/utils"
	"github.com/VacTuzX-dot/xfrontend/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository returns a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, log *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: log.Component("sessionRepository")}
}

func (r *sessionRepository) Save(ctx context.Context, s models.Session) error {
	query, args, err := buildSaveSessionQuery(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.logger.Debug().Str("username", s.Username).Msg("session remembered")
	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.Username, &s.Token, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Load").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// a token that no longer parses is kept; the session service decides
	if claims, err := utils.ParseUnverifiedClaims(s.Token); err == nil {
		s.Claims = claims
	}
	s.Remember = true

	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
