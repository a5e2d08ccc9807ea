// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/adapter"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/store"
	"github.com/VacTuzX-dot/xfrontend/internal/utils"
	"github.com/VacTuzX-dot/xfrontend/internal/validators"
	"github.com/VacTuzX-dot/xfrontend/models"
)

type sessionService struct {
	adapter   adapter.RegistryAdapter
	repo      store.SessionRepository
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger

	mu      sync.RWMutex
	current *models.Session
}

// NewSessionService returns a [SessionService]. Remembered sessions go to
// repo; the others live only in memory.
func NewSessionService(a adapter.RegistryAdapter, repo store.SessionRepository, log *logger.Logger) SessionService {
	return &sessionService{
		adapter:   a,
		repo:      repo,
		validator: validators.NewUserRecordValidator(),
		now:       time.Now,
		logger:    log.Component("sessionService"),
	}
}

func (s *sessionService) SignIn(ctx context.Context, username, password string, remember bool) (models.Session, error) {
	req := models.LoginRequest{Username: username, Password: password}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidLoginData, err)
	}

	token, err := s.adapter.Login(ctx, req)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}
		return models.Session{}, err
	}

	session := models.Session{
		Username:  username,
		Token:     token,
		Remember:  remember,
		CreatedAt: s.now(),
	}
	if claims, err := utils.ParseUnverifiedClaims(token); err == nil {
		session.Claims = claims
	} else {
		s.logger.Debug().Err(err).Msg("token is not a JWT, keeping it opaque")
	}

	if remember {
		if err = s.repo.Save(ctx, session); err != nil {
			s.adapter.SetToken("")
			return models.Session{}, fmt.Errorf("error remembering session: %w", err)
		}
	} else if err = s.repo.Delete(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("error clearing remembered session")
	}

	s.set(&session)
	s.logger.Info().Str("username", username).Bool("remember", remember).Msg("signed in")

	return session, nil
}

func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.repo.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error restoring session: %w", err)
	}

	if !session.Valid() || session.Expired(s.now()) {
		if err = s.repo.Delete(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("error clearing expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	s.adapter.SetToken(session.Token)
	s.set(&session)
	s.logger.Info().Str("username", session.Username).Msg("session restored")

	return session, nil
}

func (s *sessionService) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

func (s *sessionService) SignOut(ctx context.Context) error {
	s.set(nil)
	s.adapter.SetToken("")

	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("error forgetting session: %w", err)
	}

	s.logger.Info().Msg("signed out")
	return nil
}

func (s *sessionService) set(session *models.Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
}
