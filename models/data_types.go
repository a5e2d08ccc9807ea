// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordState tells whether a stored password is still plaintext.
// The only legal transition is PasswordPlaintext -> PasswordHashed.
type PasswordState int

const (
	// PasswordPlaintext marks a legacy row awaiting rehash.
	PasswordPlaintext PasswordState = iota

	// PasswordHashed marks a row whose password starts with [HashPrefix].
	PasswordHashed
)

// String implements [fmt.Stringer].
func (s PasswordState) String() string {
	if s == PasswordHashed {
		return "hashed"
	}
	return "plaintext"
}

// SexCategory is the normalised bucket of [UserRecord.Sex], used for badges.
type SexCategory int

const (
	SexOther SexCategory = iota
	SexMale
	SexFemale
)

// String implements [fmt.Stringer].
func (c SexCategory) String() string {
	switch c {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return "other"
	}
}
