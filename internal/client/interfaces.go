// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/VacTuzX-dot/xfrontend/models"
)

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the part of the terminal UI the app drives.
type UI interface {
	LoginFlow(ctx context.Context, notice string) (models.Session, error)
	MainLoop(ctx context.Context, session models.Session) (logout bool, notice string, err error)
	NotifyFetch(result models.FetchResult)
	NotifySessionExpired()
}
