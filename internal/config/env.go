// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the proxy and client settings from the process environment.
// Nested sections use their envPrefix (APP_, SERVER_, ADAPTER_, WORKERS_,
// STORAGE_DB_); unset variables leave zero values for mergo to fill.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
