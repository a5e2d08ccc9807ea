// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID              = errors.New("record id is required")
	ErrEmptyUsername        = errors.New("username is required")
	ErrShortPassword        = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmptyTitle           = errors.New("title is required")
	ErrEmptyFirstName       = errors.New("first name is required")
	ErrEmptyLastName        = errors.New("last name is required")
	ErrEmptyAddress         = errors.New("address is required")
	ErrEmptySex             = errors.New("sex is required")
	ErrInvalidBirthday      = errors.New("birthday must be a date (YYYY-MM-DD)")
	ErrTermsNotAccepted     = errors.New("terms and conditions must be accepted")
	ErrEmptyLoginCredential = errors.New("username and password are required")
)
