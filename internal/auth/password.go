package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 64
	iterations = 10000
)

// HashPassword derives a key from the password with a fresh random salt.
// Hash and salt are stored as separate columns on the user record.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	hash = pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)
	return hash, salt, nil
}

// VerifyPassword re-derives the key and compares in constant time. The full
// derived key must match; a password that is a prefix of the real one never
// verifies.
func VerifyPassword(password string, hash, salt []byte) bool {
	candidate := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
