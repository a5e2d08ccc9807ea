// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/service"
)

// NewSessionWatcher returns a Worker that checks the open session every
// interval and calls onExpired once when its token runs out.
func NewSessionWatcher(sessions service.SessionService, interval time.Duration, onExpired func(), log *logger.Logger) Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &tickerJob{
		interval: interval,
		tick:     watchSession(sessions, time.Now, onExpired, log.Component("sessionWatcher")),
	}
}

func watchSession(sessions service.SessionService, now func() time.Time, onExpired func(), l *logger.Logger) func(context.Context) {
	var once sync.Once
	return func(context.Context) {
		s, ok := sessions.Current()
		if !ok || !s.Expired(now()) {
			return
		}
		once.Do(func() {
			l.Info().Str("username", s.Username).Msg("session expired")
			if onExpired != nil {
				onExpired()
			}
		})
	}
}
