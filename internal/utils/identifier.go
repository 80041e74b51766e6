package utils

import (
	"crypto/rand"
	"fmt"
)

// AccountNumber generates a candidate account identifier: the given prefix
// followed by exactly `digits` random decimal digits from crypto/rand.
// Uniqueness is not guaranteed here; callers detect collisions against the
// store and retry.
func AccountNumber(prefix string, digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("digits must be positive")
	}
	b := make([]byte, digits)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = '0' + b[i]%10
	}
	return prefix + string(b), nil
}
