// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied when no source sets a value.
const (
	DefaultAddress           = "localhost:3000"
	DefaultRequestTimeout    = 10 * time.Second
	DefaultPollInterval      = 5 * time.Second
	DefaultBatchSize         = 10
	DefaultHighlightDuration = 2 * time.Second
	DefaultHashCost          = 10
	DefaultSessionDSN        = "file:xfrontend_session.db?_foreign_keys=on"

	MinPollInterval = 5 * time.Second
	MaxPollInterval = 15 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogLevel is applied after the logger is created.
	LogLevel string
	// LogFile is where the client writes its log.
	LogFile string
	// HashCost is the bcrypt cost used by rehash, edit and sign-up.
	HashCost int
}

// ClientAdapter holds settings of the client transport.
type ClientAdapter struct {
	// HTTPAddress is the proxy address.
	HTTPAddress string
	// RequestTimeout bounds every registry request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string of the session store.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// PollInterval is the background refresh period, 5s..15s.
	PollInterval time.Duration
	// BatchSize is the number of concurrent requests per bulk batch.
	BatchSize int
	// HighlightDuration is how long newly hashed rows stay highlighted.
	HighlightDuration time.Duration
}

// ClientConfig is the configuration view of the terminal client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration, keeps the fields the
// client needs, fills defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	c := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
			HashCost: cfg.App.HashCost,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			PollInterval:      cfg.Workers.PollInterval,
			BatchSize:         cfg.Workers.BatchSize,
			HighlightDuration: cfg.Workers.HighlightDuration,
		},
	}

	if c.App.HashCost == 0 {
		c.App.HashCost = DefaultHashCost
	}
	if c.Adapter.HTTPAddress == "" {
		c.Adapter.HTTPAddress = DefaultAddress
	}
	if c.Adapter.RequestTimeout == 0 {
		c.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = DefaultSessionDSN
	}
	if c.Workers.PollInterval == 0 {
		c.Workers.PollInterval = DefaultPollInterval
	}
	if c.Workers.BatchSize == 0 {
		c.Workers.BatchSize = DefaultBatchSize
	}
	if c.Workers.HighlightDuration == 0 {
		c.Workers.HighlightDuration = DefaultHighlightDuration
	}

	return c
}
