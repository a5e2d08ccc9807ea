// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrPasswordDowngrade = errors.New("refusing to replace a hashed password with plaintext")
	ErrRecordNotFound    = errors.New("record not found")
	ErrEmptyRecordID     = errors.New("record id is required")

	ErrNoSession         = errors.New("no session")
	ErrSessionExpired    = errors.New("session is expired")
	ErrWrongCredentials  = errors.New("wrong username or password")
	ErrInvalidSignUpData = errors.New("invalid sign-up data")
	ErrInvalidEditData   = errors.New("invalid edit data")
	ErrInvalidRecordData = errors.New("invalid record data")
	ErrInvalidLoginData  = errors.New("invalid login data")
)
