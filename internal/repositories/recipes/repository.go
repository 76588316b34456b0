package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipekeeper/internal/models"
)

// Repository describes CRUD and query operations for Recipe objects.
//
// Every method issues exactly one statement. Result ordering is
// unspecified; callers must treat returned slices as sets. Owner
// resolution is a service concern, not a repository one.
type Repository interface {
	// Create inserts the recipe and returns it with the assigned id.
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)

	// GetByID returns the recipe with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)

	// Update overwrites title, content, image and owner by id and returns
	// the affected row count. 0 means no recipe matched the id; that is
	// not an error.
	Update(ctx context.Context, recipe *models.Recipe) (int64, error)

	// Delete removes the recipe row and returns the affected row count.
	Delete(ctx context.Context, id int64) (int64, error)

	// SearchByTitle returns recipes whose title contains pattern,
	// case-insensitively. No match yields an empty result, not an error.
	SearchByTitle(ctx context.Context, pattern string) ([]models.Recipe, error)

	// GetAll returns every stored recipe.
	GetAll(ctx context.Context) ([]models.Recipe, error)
}
