// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"github.com/VacTuzX-dot/xfrontend/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used for every rehash.
const DefaultCost = 10

// ErrInvalidCost is returned by NewPasswordHasher for a cost bcrypt rejects.
var ErrInvalidCost = errors.New("invalid bcrypt cost")

// ErrPasswordTooLong is returned when the plaintext exceeds bcrypt's
// 72-byte input limit.
var ErrPasswordTooLong = errors.New("password longer than 72 bytes")

type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt [PasswordHasher]. A zero cost selects
// DefaultCost.
func NewPasswordHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (h *bcryptHasher) Cost() int {
	return h.cost
}

// IsHashed reports whether p already carries a bcrypt hash.
func IsHashed(p string) bool {
	return models.IsHashedPassword(p)
}

// HashIfPlain hashes p unless it already looks hashed.
func HashIfPlain(h PasswordHasher, p string) (string, error) {
	if IsHashed(p) {
		return p, nil
	}
	return h.Hash(p)
}
