// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// MaxStrength is the highest score PasswordStrength returns.
const MaxStrength = 5

var strengthLabels = [MaxStrength + 1]string{"very weak", "weak", "fair", "good", "strong", "very strong"}

// PasswordStrength scores p from 0 to 5, one point each for: at least eight
// characters, an upper-case ASCII letter, a lower-case ASCII letter, a digit,
// and any other character.
func PasswordStrength(p string) int {
	var upper, lower, digit, other bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	score := 0
	if len([]rune(p)) >= 8 {
		score++
	}
	for _, ok := range []bool{upper, lower, digit, other} {
		if ok {
			score++
		}
	}
	return score
}

// StrengthLabel names a PasswordStrength score.
func StrengthLabel(score int) string {
	if score < 0 {
		score = 0
	}
	if score > MaxStrength {
		score = MaxStrength
	}
	return strengthLabels[score]
}
