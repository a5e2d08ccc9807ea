// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the registry client: the
// recurring registry poll and the session expiry watch.
package workers

import "context"

// Worker is a background job.
//
// Start must not block; implementations spawn their own goroutine and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is safe to call on a stopped worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
