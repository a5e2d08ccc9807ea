// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/VacTuzX-dot/xfrontend/models"
)

type loginResultMsg struct {
	session models.Session
	err     error
}

type fetchDoneMsg struct {
	result models.FetchResult
	err    error
}

// pollAppliedMsg is sent by the background poller after it applied a fetch.
type pollAppliedMsg struct {
	result models.FetchResult
}

type mutationDoneMsg struct {
	op  string
	err error
}

type batchProgressMsg struct {
	op       string
	progress models.BatchProgress
}

type batchDoneMsg struct {
	op     string
	result models.BatchResult
}

type copiedMsg struct {
	username string
	err      error
}

type highlightTickMsg time.Time

type sessionExpiredMsg struct{}

type signOutDoneMsg struct {
	err error
}
