// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers served by the proxy.
package handler

import (
	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/handler/http"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(cfg config.ProxyConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if cfg.BackendURL == "" {
		return nil, errNoUpstream
	}

	return &Handlers{
		HTTP: http.NewHandler(http.NewUpstream(cfg), logger),
	}, nil
}
