// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal screens of the registry client: the
// sign-in form and the admin users screen.
//
// Screens are Bubble Tea models. Long-running work (fetches, mutations,
// batches, sign-out) runs inside tea.Cmd functions and reports back through
// the message types in messages.go. Background workers reach a running
// program through [TUI.NotifyFetch] and [TUI.NotifySessionExpired].
package tui
