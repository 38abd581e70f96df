package vault

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{};:,.<>/?"
)

// GeneratePassword returns a random password of the given length drawn
// uniformly from the enabled character classes. At least one class must be
// enabled and length must be positive.
func GeneratePassword(length int, upper, lower, digits, symbols bool) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	var charset string
	if upper {
		charset += upperChars
	}
	if lower {
		charset += lowerChars
	}
	if digits {
		charset += digitChars
	}
	if symbols {
		charset += symbolChars
	}
	if charset == "" {
		return "", ErrNoCharClasses
	}

	n := big.NewInt(int64(len(charset)))
	password := make([]byte, length)
	for i := range password {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("random source: %w", err)
		}
		password[i] = charset[idx.Int64()]
	}
	return string(password), nil
}
