// Package cryptox implements the credential store: salted, adaptive one-way
// password hashing on top of bcrypt. The salt is generated per call and
// embedded in the hash, so verification needs only the password and the
// stored hash.
package cryptox

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the plaintext password with a fresh random salt.
// The returned string contains the bcrypt version, cost, salt and digest.
func HashPassword(password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword recomputes the hash using the salt embedded in hash and
// compares in constant time. A mismatch, like a malformed hash, yields
// false; it never returns an error. Callers that need to distinguish a
// malformed stored hash from a wrong password can check IsHashed first.
func VerifyPassword(password []byte, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}

// IsHashed reports whether s looks like a bcrypt hash produced by
// HashPassword. It validates the cost encoding, not the digest itself.
func IsHashed(s string) bool {
	if !strings.HasPrefix(s, "$2a$") && !strings.HasPrefix(s, "$2b$") && !strings.HasPrefix(s, "$2y$") {
		return false
	}
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
