// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body the backend answers a successful login with.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON error body written by the local proxy.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EditRequest carries the fields of the edit form.
//
// NewPassword follows the edit rules: empty keeps the stored password,
// a value that already looks hashed is sent as is, anything else is hashed.
type EditRequest struct {
	TitlePrefix string
	FirstName   string
	LastName    string
	Username    string
	Address     string
	Sex         string
	Birthday    string
	NewPassword string
}

// SignUpRequest carries the fields of the registration form.
type SignUpRequest struct {
	UserRecord
	ConfirmPassword string
	AcceptedTerms   bool
}
