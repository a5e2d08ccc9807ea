// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration view is incomplete.
var (
	// ErrInvalidAdapterConfigs indicates a missing proxy address or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory session DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a bcrypt cost outside the accepted range.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a poll interval outside 5s..15s,
	// a non-positive batch size or a negative highlight duration.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidProxyConfigs indicates a missing listen address or an
	// unusable backend URL.
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
)
