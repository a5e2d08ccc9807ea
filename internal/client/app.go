// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/service"
	"github.com/VacTuzX-dot/xfrontend/internal/tui"
	"github.com/VacTuzX-dot/xfrontend/internal/workers"
	"github.com/VacTuzX-dot/xfrontend/models"
)

// sessionCheckInterval is how often the session watcher looks at the token
// expiry.
const sessionCheckInterval = 30 * time.Second

const expiredNotice = "Your session has expired. Please sign in again."

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and ui")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  cfg,
		logger:   logger.Component("app"),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	session, notice := a.restore(ctx)

	for {
		if !session.Valid() {
			var err error
			session, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
			a.logger.Info().Str("username", session.Username).Bool("remember", session.Remember).Msg("signed in")
		}

		logout, n, err := a.runSession(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("username", session.Username).Msg("signed out")
		session = models.Session{}
		notice = n
	}
}

// restore reopens a remembered session. A missing one is not an error; an
// expired one produces a notice for the sign-in screen.
func (a *App) restore(ctx context.Context) (models.Session, string) {
	session, err := a.services.Sessions.Restore(ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("username", session.Username).Msg("session restored")
		return session, ""
	case errors.Is(err, service.ErrNoSession):
		return models.Session{}, ""
	case errors.Is(err, service.ErrSessionExpired):
		return models.Session{}, expiredNotice
	default:
		a.logger.Warn().Err(err).Msg("error restoring session")
		return models.Session{}, ""
	}
}

// runSession keeps the poller and the session watcher running for as long as
// the admin screen is open.
func (a *App) runSession(ctx context.Context, session models.Session) (bool, string, error) {
	jobs := workers.NewWorkers(
		workers.NewRegistryPoller(a.services.Fetcher, a.workers.PollInterval, a.ui.NotifyFetch, a.logger),
		workers.NewSessionWatcher(a.services.Sessions, sessionCheckInterval, a.ui.NotifySessionExpired, a.logger),
	)
	jobs.Start(ctx)
	defer jobs.Stop()

	return a.ui.MainLoop(ctx, session)
}
