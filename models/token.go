// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated context of the running client.
//
// It is created on sign-in, optionally persisted when the user asked to be
// remembered, and cleared on sign-out.
type Session struct {
	// Username is the login the session was opened with.
	Username string

	// Token is the compact bearer token returned by the backend.
	Token string

	// Claims are read from the token without verifying its signature;
	// verification belongs to the backend.
	Claims jwt.RegisteredClaims

	// Remember marks sessions that survive a restart.
	Remember bool

	// CreatedAt is when the session was opened.
	CreatedAt time.Time
}

// ExpiresAt returns the token expiry, if the token carries one.
func (s Session) ExpiresAt() (time.Time, bool) {
	if s.Claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return s.Claims.ExpiresAt.Time, true
}

// Expired reports whether the token expiry lies before now.
// Tokens without an expiry never expire on the client side.
func (s Session) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && !now.Before(exp)
}

// Valid reports whether the session holds a token.
func (s Session) Valid() bool {
	return s.Token != ""
}
