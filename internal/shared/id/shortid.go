package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// ListURLLength is the length of a pool list URL token.
	ListURLLength = 12
)

// Generate creates a cryptographically random, URL-safe Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = ListURLLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewListURL generates the opaque token that identifies a pool in manage links.
func NewListURL() (string, error) {
	return Generate(ListURLLength)
}

// IsValidListURL reports whether s has the shape of a list URL token.
func IsValidListURL(s string) bool {
	if len(s) != ListURLLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
