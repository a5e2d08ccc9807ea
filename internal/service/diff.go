// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/VacTuzX-dot/xfrontend/models"

// DetectNewlyHashed returns the ids present in both lists whose password was
// plaintext in previous and is hashed in current. Records that only appear
// in one of the lists are ignored.
func DetectNewlyHashed(previous, current []models.UserRecord) models.IDSet {
	wasPlain := make(map[models.RecordID]bool, len(previous))
	for _, r := range previous {
		wasPlain[r.ID] = !r.IsHashed()
	}

	out := models.NewIDSet()
	for _, r := range current {
		if plain, seen := wasPlain[r.ID]; seen && plain && r.IsHashed() {
			out.Add(r.ID)
		}
	}
	return out
}
