// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the registry client's process lifecycle.
//
// It restores or opens a session, starts the background poller and the
// session watcher for the lifetime of that session, runs the admin screen
// and returns to the sign-in screen after a sign-out.
package client
