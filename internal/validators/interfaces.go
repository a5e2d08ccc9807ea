// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the forms of the registry client before anything
// is sent to the backend.
//
// [UserRecordValidator] covers sign-up, the edit form, full-record updates
// and the login form. Callers may pass field names to Validate to check only
// part of a value; with no names every field of that form is checked in
// order and the first failure is returned.
package validators

import "context"

// Validator validates a form value, optionally limited to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
