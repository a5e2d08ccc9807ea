// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VacTuzX-dot/xfrontend/internal/adapter"
	"github.com/VacTuzX-dot/xfrontend/internal/crypto"
)

// mapAdapterError translates the adapter's error into a service error while
// keeping the original in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}

	return err
}

// UserMessage renders err for the blocking error overlay.
func UserMessage(err error) string {
	var backendErr *adapter.BackendError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "The operation was cancelled."
	case errors.Is(err, adapter.ErrTimeout), errors.Is(err, adapter.ErrGatewayTimeout):
		return "The server did not answer in time. Please try again."
	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, adapter.ErrBadGateway):
		return "Could not reach the server. Check the connection and try again."
	case errors.Is(err, ErrPasswordDowngrade):
		return "A hashed password cannot be replaced with plaintext."
	case errors.Is(err, ErrRecordNotFound):
		return "The user no longer exists. The list has been refreshed."
	case errors.Is(err, ErrWrongCredentials):
		return "Wrong username or password."
	case errors.Is(err, ErrSessionExpired), errors.Is(err, adapter.ErrUnauthorized):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, ErrNoSession):
		return "Please sign in."
	case errors.Is(err, ErrEmptyRecordID):
		return "No user was selected."
	case errors.Is(err, ErrInvalidSignUpData), errors.Is(err, ErrInvalidEditData),
		errors.Is(err, ErrInvalidRecordData), errors.Is(err, ErrInvalidLoginData):
		return capitalize(rootCause(err).Error()) + "."
	case errors.Is(err, crypto.ErrPasswordTooLong):
		return "The password is too long to be hashed (72 bytes at most)."
	case errors.As(err, &backendErr):
		return fmt.Sprintf("The server rejected the request (%d): %s", backendErr.Status, backendErr.Message)
	case errors.Is(err, adapter.ErrDecode):
		return "The server sent a response that could not be read."
	}

	return "Unexpected error: " + err.Error()
}

// rootCause follows wrapping down to the innermost error. For errors joined
// with several %w verbs the last one is followed.
func rootCause(err error) error {
	for {
		switch e := err.(type) {
		case interface{ Unwrap() []error }:
			errs := e.Unwrap()
			if len(errs) == 0 {
				return err
			}
			err = errs[len(errs)-1]
		case interface{ Unwrap() error }:
			next := e.Unwrap()
			if next == nil {
				return err
			}
			err = next
		default:
			return err
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
