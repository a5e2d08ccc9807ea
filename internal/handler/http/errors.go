// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

// Errors answered by the proxy itself. Anything the backend returns,
// including its own error statuses, is passed through untouched.
var (
	// ErrUpstreamTimeout is returned when the backend did not answer within
	// the configured request timeout.
	ErrUpstreamTimeout = errors.New("upstream request timed out")

	// ErrUpstreamUnavailable is returned when the backend could not be
	// reached or the connection broke before a response arrived.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrReadingBody is returned when the incoming request body cannot be
	// read or exceeds the size limit.
	ErrReadingBody = errors.New("invalid request body")
)

var errorStatuses = []struct {
	target error
	status int
}{
	{ErrUpstreamTimeout, http.StatusGatewayTimeout},
	{ErrUpstreamUnavailable, http.StatusBadGateway},
	{ErrReadingBody, http.StatusBadRequest},
}

// statusFromError returns the status and the public message for err.
// Unknown errors are reported as 502 because the only fallible step left is
// talking to the backend.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.target.Error()
		}
	}
	return http.StatusBadGateway, ErrUpstreamUnavailable.Error()
}
