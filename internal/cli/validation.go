package cli

import (
	"errors"
	"regexp"
)

var usernameRe = regexp.MustCompile(`^\w{3,16}$`)

var (
	errBadUsername = errors.New("username must be 3-16 letters, digits or underscores")
	errBadPassword = errors.New("password must be 8-32 characters long")
)

// ValidateUsername checks the username shape before it reaches the store.
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return errBadUsername
	}
	return nil
}

// ValidatePassword checks the password length bounds.
func ValidatePassword(password []byte) error {
	if len(password) < 8 || len(password) > 32 {
		return errBadPassword
	}
	return nil
}
