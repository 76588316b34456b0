package users

import (
	"context"

	"github.com/dmitrijs2005/recipekeeper/internal/models"
)

// Repository describes CRUD and query operations for user records and the
// liked-recipes relation. Implementations are backed by SQLite or Postgres.
//
// Every method issues exactly one statement. Loaded users are returned
// without the liked-recipe set; callers compose Get* with LikedRecipeIDs
// when they need it. Lookups that match no row return common.ErrorNotFound,
// never a nil user with a nil error.
type Repository interface {
	// Create inserts a new user and returns it with the assigned id.
	// A duplicate username yields common.ErrorConflict.
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)

	// GetByUsername returns the user with the given username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the user with the given id.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// UpdateUsername renames the user and returns the affected row count.
	// A collision with another user's name yields common.ErrorConflict.
	UpdateUsername(ctx context.Context, id int64, username string) (int64, error)

	// UpdatePassword replaces the stored hash and returns the affected
	// row count. The value must already be hashed by the caller.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error)

	// Delete removes the user row and returns the affected row count.
	// Recipes owned by the user are not touched.
	Delete(ctx context.Context, id int64) (int64, error)

	// UsernameExists reports whether a user with the given name exists.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// LikedRecipeIDs returns the set of recipe ids the user has liked.
	LikedRecipeIDs(ctx context.Context, userID int64) (map[int64]struct{}, error)

	// Like records that the user likes the recipe. Liking an already
	// liked recipe is a no-op.
	Like(ctx context.Context, userID, recipeID int64) error

	// Unlike removes the pair and returns the affected row count
	// (0 when the pair did not exist).
	Unlike(ctx context.Context, userID, recipeID int64) (int64, error)
}
