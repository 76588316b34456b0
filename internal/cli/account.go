package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
)

// Account manages the current user's own account: renaming it, changing
// the password, or deleting it entirely. Recipes owned by a deleted
// account stay in the book and are listed with an unknown owner.
func (a *App) Account(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	action, err := getSimpleText(a.reader, "What would you like to do? (username/password/delete)", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "username":
		return a.changeUsername(ctx)
	case "password":
		return a.changePassword(ctx)
	case "delete":
		return a.deleteAccount(ctx)
	default:
		printlnFn("Unknown action:", action)
		return nil
	}
}

func (a *App) changeUsername(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter new username", os.Stdout)
	if err != nil {
		return err
	}
	if err := ValidateUsername(username); err != nil {
		printlnFn(err.Error())
		return err
	}

	if _, err := a.users.ChangeUsername(ctx, a.current.ID, username); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			printlnFn("This username is already taken")
		} else {
			printlnFn("Could not change username, please try again later")
		}
		return err
	}

	a.current.Username = username
	printlnFn("Username changed")
	return nil
}

func (a *App) changePassword(ctx context.Context) error {
	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := ValidatePassword(password); err != nil {
		printlnFn(err.Error())
		return err
	}

	if _, err := a.users.ChangePassword(ctx, a.current.ID, password); err != nil {
		printlnFn("Could not change password, please try again later")
		return err
	}

	printlnFn("Password changed")
	return nil
}

func (a *App) deleteAccount(ctx context.Context) error {
	confirm, err := getSimpleText(a.reader, "Type 'yes' to delete your account. Your recipes will stay in the book.", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if _, err := a.users.Delete(ctx, a.current.ID); err != nil {
		printlnFn("Could not delete account, please try again later")
		return err
	}

	a.current = nil
	a.clearSession()
	printlnFn("Account deleted")
	return nil
}
