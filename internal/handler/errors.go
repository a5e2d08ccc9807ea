// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no listen
	// address is configured.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoUpstream is returned by NewHandlers when the backend URL is empty.
	errNoUpstream = errors.New("no upstream backend url is configured")
)
