// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/VacTuzX-dot/xfrontend/models"
)

type batchTally struct {
	succeeded int
	failed    int
	failedIDs []models.RecordID
}

func (t batchTally) fill(r *models.BatchResult) {
	r.Succeeded = t.succeeded
	r.Failed = t.failed
	r.FailedIDs = t.failedIDs
}

// runBatches calls op once per item, size items at a time. A batch is
// awaited as a whole before the next one starts and progress is reported
// after each. Errors are counted, never returned, and never stop the run.
func runBatches[T any](
	ctx context.Context,
	items []T,
	size int,
	key func(T) models.RecordID,
	op func(context.Context, T) error,
	progress ProgressFunc,
) batchTally {
	var tally batchTally
	total := len(items)

	for start := 0; start < total; start += size {
		batch := items[start:min(start+size, total)]
		errs := make([]error, len(batch))

		var g errgroup.Group
		for i, item := range batch {
			i, item := i, item
			g.Go(func() error {
				errs[i] = op(ctx, item)
				return nil
			})
		}
		_ = g.Wait()

		for i, err := range errs {
			if err != nil {
				tally.failed++
				tally.failedIDs = append(tally.failedIDs, key(batch[i]))
				continue
			}
			tally.succeeded++
		}

		if progress != nil {
			progress(models.BatchProgress{
				Done:      start + len(batch),
				Total:     total,
				Succeeded: tally.succeeded,
				Failed:    tally.failed,
			})
		}
	}

	return tally
}
