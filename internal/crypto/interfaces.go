// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into bcrypt hashes.
//
// It knows nothing about records, the network or sessions. Callers decide
// whether a value needs hashing via [IsHashed]; Hash itself always hashes.
type PasswordHasher interface {
	// Hash returns the bcrypt hash of plaintext at the configured cost.
	Hash(plaintext string) (string, error)

	// Compare reports whether plaintext matches hash.
	Compare(hash, plaintext string) bool

	// Cost is the bcrypt cost new hashes are produced with.
	Cost() int
}
