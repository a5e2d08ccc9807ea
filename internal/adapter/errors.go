// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTimeout marks a request that did not complete within its deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrNetwork marks a request that failed before any response arrived.
	ErrNetwork = errors.New("network failure")
	// ErrBackend marks any non-2xx response.
	ErrBackend = errors.New("backend error")
	// ErrDecode marks a 2xx response whose body could not be understood.
	ErrDecode = errors.New("unexpected response body")
	// ErrEmptyToken marks a successful login response without a token.
	ErrEmptyToken = errors.New("login response carries no token")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrGatewayTimeout      = errors.New("gateway timeout")
	ErrInternalServerError = errors.New("internal server error")
)

// BackendError is a non-2xx response. Message is the human-readable reason
// extracted from the body when one could be found.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: http %d", e.Status)
	}
	return fmt.Sprintf("backend error: http %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is match both ErrBackend and the status sentinel.
func (e *BackendError) Unwrap() []error {
	if s := statusSentinel(e.Status); s != nil {
		return []error{ErrBackend, s}
	}
	return []error{ErrBackend}
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusGatewayTimeout:
		return ErrGatewayTimeout
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}
