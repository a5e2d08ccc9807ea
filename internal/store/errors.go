// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrSessionNotFound is returned by [SessionRepository.Load] when no session
// was remembered.
var ErrSessionNotFound = errors.New("no session was found")

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	ErrCreatingDBFile     = errors.New("error creating database file")
	ErrOpeningConnection  = errors.New("error opening connection to DB")
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan session row")
)
