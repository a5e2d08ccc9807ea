// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the user registry through the local proxy.
//
// [RegistryAdapter] hides the REST details from the service layer. Every
// failure is classified once, here: a request that exceeded its deadline
// wraps [ErrTimeout], a request that never produced a response wraps
// [ErrNetwork], and a non-2xx response is a [*BackendError] that matches
// [ErrBackend] plus the sentinel of its status ([ErrNotFound] for 404 and
// so on) under [errors.Is].
package adapter

import (
	"context"

	"github.com/VacTuzX-dot/xfrontend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_adapter_mock.go -package=mock

// RegistryAdapter is the client side of the /api/users resource.
type RegistryAdapter interface {
	// SetToken stores the bearer token attached to every later request.
	// An empty token removes the Authorization header.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Login posts credentials to /api/auth/login, stores the returned
	// token via SetToken and returns it.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// ListUsers fetches the whole registry with GET /api/users.
	ListUsers(ctx context.Context) ([]models.UserRecord, error)

	// GetUser fetches one record with GET /api/users/{id}. The backend may
	// answer with an object or a one-element array; an empty array is
	// reported as [ErrNotFound].
	GetUser(ctx context.Context, id models.RecordID) (models.UserRecord, error)

	// CreateUser posts a new record to /api/users and returns it with the
	// id the backend assigned, when the backend reports one.
	CreateUser(ctx context.Context, user models.UserRecord) (models.UserRecord, error)

	// UpdateUser replaces the whole record with PUT /api/users.
	// The body always carries every field; there is no partial update.
	UpdateUser(ctx context.Context, user models.UserRecord) error

	// DeleteUser removes one record with DELETE /api/users/{id}.
	DeleteUser(ctx context.Context, id models.RecordID) error
}
