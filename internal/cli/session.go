package cli

import (
	"context"
	"os"
	"strings"

	"github.com/dmitrijs2005/recipekeeper/internal/auth"
)

// saveSession persists a signed stay-signed-in token for the current user.
// It is a no-op when no session secret is configured or nobody is logged in.
func (a *App) saveSession(ctx context.Context) {
	if a.config.SessionSecret == "" || a.current == nil {
		return
	}

	token, err := auth.GenerateToken(a.current.ID, []byte(a.config.SessionSecret), a.config.SessionTokenValidity)
	if err != nil {
		a.logger.Warn(ctx, "could not create session token", "error", err.Error())
		return
	}

	if err := os.WriteFile(a.config.SessionFile, []byte(token), 0o600); err != nil {
		a.logger.Warn(ctx, "could not save session token", "error", err.Error())
	}
}

// restoreSession logs the user back in from a previously saved token. Any
// failure (missing file, expired or tampered token, deleted user) silently
// leaves the app logged out.
func (a *App) restoreSession(ctx context.Context) {
	if a.config.SessionSecret == "" {
		return
	}

	data, err := os.ReadFile(a.config.SessionFile)
	if err != nil {
		return
	}

	userID, err := auth.GetUserIDFromToken(strings.TrimSpace(string(data)), []byte(a.config.SessionSecret))
	if err != nil {
		a.clearSession()
		return
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		a.clearSession()
		return
	}

	a.current = user
	printlnFn("Welcome back, " + user.Username + "!")
}

func (a *App) clearSession() {
	if a.config.SessionFile == "" {
		return
	}
	_ = os.Remove(a.config.SessionFile)
}
