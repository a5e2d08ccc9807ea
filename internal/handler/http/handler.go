// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/utils"
)

type Handler struct {
	upstream Upstream
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(upstream Upstream, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		upstream: upstream,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
