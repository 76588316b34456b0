package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password, validates them locally and
// creates the account. On success the user is logged in right away.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if err := ValidateUsername(username); err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := ValidatePassword(password); err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.users.Register(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			printlnFn("This username is already taken")
		} else {
			printlnFn("Registration failed, please try again later")
		}
		return err
	}

	a.current = user
	a.saveSession(ctx)
	printlnFn("Success!")
	return nil
}

// Login prompts for credentials and authenticates against the store.
//
// Unknown usernames and wrong passwords produce the same message, so the
// prompt cannot be used to probe which accounts exist. The password is
// securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Invalid username or password")
		} else {
			printlnFn("Login failed, please try again later")
		}
		return err
	}

	a.current = user
	a.saveSession(ctx)
	printlnFn("Welcome, " + user.Username + "!")
	return nil
}

// Logout drops the in-memory user and the saved session token.
func (a *App) Logout(ctx context.Context) error {
	a.current = nil
	a.clearSession()
	printlnFn("Logged out")
	return nil
}
