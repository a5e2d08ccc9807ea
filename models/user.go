// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// HashPrefix is the prefix shared by every bcrypt-family hash ($2a$, $2b$, $2y$).
// A password beginning with it is treated as already hashed.
const HashPrefix = "$2"

// RecordID is the backend-assigned identifier of a user record.
//
// The backend may encode it either as a JSON number or as a JSON string.
// RecordID accepts both and re-encodes purely numeric identifiers as numbers,
// so a record read from the backend is written back in the same shape.
type RecordID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode record id: %w", err)
		}
		*id = RecordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode record id: %w", err)
	}
	*id = RecordID(n.String())
	return nil
}

// MarshalJSON writes purely numeric identifiers as JSON numbers and everything
// else as JSON strings.
func (id RecordID) MarshalJSON() ([]byte, error) {
	if id.isNumeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String implements [fmt.Stringer].
func (id RecordID) String() string {
	return string(id)
}

func (id RecordID) isNumeric() bool {
	s := string(id)
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UserRecord is one row of the remote user registry.
//
// JSON keys follow the backend's column names, which do not match their
// meaning: "firstname" holds the title prefix and "fullname" holds the
// given name.
type UserRecord struct {
	// ID is assigned by the backend and never changes.
	ID RecordID `json:"id,omitempty"`

	// TitlePrefix is a free-text honorific such as "Mr." or "นาย".
	TitlePrefix string `json:"firstname"`

	// FirstName is the given name.
	FirstName string `json:"fullname"`

	// LastName is the family name.
	LastName string `json:"lastname"`

	// Username is unique by convention only; the backend does not enforce it.
	Username string `json:"username"`

	// Password is either plaintext (legacy rows) or a bcrypt hash.
	Password string `json:"password"`

	// Address may span several lines.
	Address string `json:"address"`

	// Sex is an open set of labels; see [UserRecord.SexCategory].
	Sex string `json:"sex"`

	// Birthday is a calendar date, usually "2006-01-02".
	Birthday string `json:"birthday"`
}

// IsHashedPassword reports whether p already carries a bcrypt hash.
func IsHashedPassword(p string) bool {
	return strings.HasPrefix(p, HashPrefix)
}

// IsHashed reports whether the record's password is a bcrypt hash.
func (u UserRecord) IsHashed() bool {
	return IsHashedPassword(u.Password)
}

// PasswordState classifies the stored password.
func (u UserRecord) PasswordState() PasswordState {
	if u.IsHashed() {
		return PasswordHashed
	}
	return PasswordPlaintext
}

// FullDisplayName joins title, first and last name with single spaces,
// skipping empty parts.
func (u UserRecord) FullDisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.TitlePrefix, u.FirstName, u.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// SearchText is the text a filter query is matched against.
func (u UserRecord) SearchText() string {
	return strings.Join([]string{u.FirstName, u.TitlePrefix, u.LastName, u.Username, u.Address, u.Sex}, " ")
}

// WithPassword returns a copy of u with only the password replaced.
func (u UserRecord) WithPassword(password string) UserRecord {
	u.Password = password
	return u
}

var birthdayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// BirthDate parses Birthday using the layouts the backend is known to emit.
func (u UserRecord) BirthDate() (time.Time, bool) {
	s := strings.TrimSpace(u.Birthday)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age returns the number of full years between the birthday and now.
// ok is false when the birthday is missing or unparseable.
func (u UserRecord) Age(now time.Time) (age int, ok bool) {
	birth, ok := u.BirthDate()
	if !ok {
		return 0, false
	}

	age = now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}

// SexCategory folds the free-form sex label into one of three buckets.
func (u UserRecord) SexCategory() SexCategory {
	switch strings.ToLower(strings.TrimSpace(u.Sex)) {
	case "male", "m", "ชาย":
		return SexMale
	case "female", "f", "หญิง":
		return SexFemale
	default:
		return SexOther
	}
}

// DisplayOr returns s, or fallback when s is blank.
func DisplayOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
