// Package cli implements the interactive recipe keeper shell: a prompt
// driven loop over the user, recipe and image services.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/recipekeeper/internal/config"
	"github.com/dmitrijs2005/recipekeeper/internal/images"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/models"
	"github.com/dmitrijs2005/recipekeeper/internal/services"
	"github.com/dmitrijs2005/recipekeeper/internal/store"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   *store.Store
	users   *services.UserService
	recipes *services.RecipeService
	images  *images.S3Store
	current *models.User
	reader  *bufio.Reader
}

// NewApp opens the store, runs migrations and wires the services. The
// admin account is created when a password for it is configured.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	st, err := store.Open(ctx, c.DatabaseDSN, logger)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	if err := st.EnsureAdmin(ctx, []byte(c.AdminPassword)); err != nil {
		st.Close()
		return nil, err
	}

	return &App{
		config:  c,
		logger:  logger,
		store:   st,
		users:   services.NewUserService(st.Users, logger),
		recipes: services.NewRecipeService(st.Recipes, st.Users, logger),
		images:  images.NewS3Store(c),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a saved session if possible and enters the command loop.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	a.restoreSession(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}
