package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// newToken returns a 64-character hex token from 32 cryptographically random
// bytes. Uniqueness beyond that entropy is left to database constraints; a
// collision fails the single write rather than being retried.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
