// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/service"
	"github.com/VacTuzX-dot/xfrontend/models"
)

// NewRegistryPoller returns a Worker that refreshes the snapshot every
// interval in background mode and hands applied results to notify.
// The interval is clamped to the allowed poll range.
func NewRegistryPoller(fetcher service.RegistryFetcher, interval time.Duration, notify func(models.FetchResult), log *logger.Logger) Worker {
	return &tickerJob{
		interval: clampPollInterval(interval),
		tick:     pollOnce(fetcher, notify, log.Component("registryPoller")),
	}
}

func pollOnce(fetcher service.RegistryFetcher, notify func(models.FetchResult), l *logger.Logger) func(context.Context) {
	return func(ctx context.Context) {
		res, _ := fetcher.FetchAll(ctx, models.FetchBackground)
		if !res.Applied {
			return
		}
		l.Debug().Uint64("seq", res.Sequence).Int("records", len(res.Records)).Msg("poll applied")
		if notify != nil {
			notify(res)
		}
	}
}

func clampPollInterval(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return config.DefaultPollInterval
	case d < config.MinPollInterval:
		return config.MinPollInterval
	case d > config.MaxPollInterval:
		return config.MaxPollInterval
	}
	return d
}
