// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// bcrypt accepts costs in this range.
const (
	minHashCost = 4
	maxHashCost = 31
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval < MinPollInterval || cfg.Workers.PollInterval > MaxPollInterval {
		return fmt.Errorf("%w: poll interval %s outside %s..%s",
			ErrInvalidWorkerConfigs, cfg.Workers.PollInterval, MinPollInterval, MaxPollInterval)
	}

	if cfg.Workers.BatchSize < 1 || cfg.Workers.HighlightDuration < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashCost < minHashCost || cfg.App.HashCost > maxHashCost {
		return fmt.Errorf("%w: hash cost %d", ErrInvalidAppConfigs, cfg.App.HashCost)
	}

	return nil
}

func (cfg *ProxyConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidProxyConfigs
	}

	u, err := url.Parse(cfg.BackendURL)
	if cfg.BackendURL == "" || err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: backend url %q", ErrInvalidProxyConfigs, cfg.BackendURL)
	}

	return nil
}
