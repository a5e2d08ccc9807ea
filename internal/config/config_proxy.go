// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DefaultShutdownTimeout bounds graceful shutdown of the proxy.
const DefaultShutdownTimeout = 5 * time.Second

// ProxyConfig is the configuration view of the local pass-through proxy.
type ProxyConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// BackendURL is the upstream registry base URL.
	BackendURL string
	// RequestTimeout bounds every forwarded request.
	RequestTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
	// LogLevel is applied after the logger is created.
	LogLevel string
}

// GetProxyConfig loads the merged configuration and returns the validated
// proxy view.
func GetProxyConfig() (*ProxyConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	proxyCfg := newProxyConfig(cfg)
	return proxyCfg, proxyCfg.validate()
}

func newProxyConfig(cfg *StructuredConfig) *ProxyConfig {
	p := &ProxyConfig{
		HTTPAddress:     cfg.Server.HTTPAddress,
		BackendURL:      cfg.BackendURL,
		RequestTimeout:  cfg.Server.RequestTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		LogLevel:        cfg.App.LogLevel,
	}

	if p.HTTPAddress == "" {
		p.HTTPAddress = DefaultAddress
	}
	if p.RequestTimeout == 0 {
		p.RequestTimeout = DefaultRequestTimeout
	}
	if p.ShutdownTimeout == 0 {
		p.ShutdownTimeout = DefaultShutdownTimeout
	}

	return p
}
