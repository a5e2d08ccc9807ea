// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/service"
	"github.com/VacTuzX-dot/xfrontend/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by LoginFlow when the user leaves the sign-in
// screen without signing in.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	highlight time.Duration
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, highlight time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		highlight: highlight,
		logger:    logger.Component("tui"),
	}
}

// LoginFlow shows the sign-in screen until a session is opened. notice, when
// set, is shown above the form.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.Session, error) {
	final, err := t.run(ctx, newLoginModel(ctx, t.services.Sessions, notice))
	if err != nil {
		return models.Session{}, err
	}

	result, ok := final.(loginModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.session.Valid() {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the admin screen. logout is true when the user signed out or
// the session expired; notice then explains why.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, notice string, err error) {
	model := newAdminModel(ctx, t.services, session.Username, t.highlight, t.buildInfo, t.send)

	final, err := t.run(ctx, model)
	if err != nil {
		return false, "", err
	}

	result, ok := final.(adminModel)
	if !ok {
		return false, "", tea.ErrProgramKilled
	}
	return result.logout, result.notice, nil
}

// NotifyFetch hands an applied background fetch to the running screen.
func (t *TUI) NotifyFetch(result models.FetchResult) {
	t.send(pollAppliedMsg{result: result})
}

// NotifySessionExpired signs the running screen out.
func (t *TUI) NotifySessionExpired() {
	t.send(sessionExpiredMsg{})
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	final, err := p.Run()
	if err != nil {
		t.logger.Error().Err(err).Msg("program stopped with error")
	}
	return final, err
}

// send delivers msg to the running program. Without one it is dropped.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}
