package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/models"
	"github.com/dmitrijs2005/recipekeeper/internal/repositories/recipes"
	"github.com/dmitrijs2005/recipekeeper/internal/repositories/users"
)

// UnknownOwnerName is displayed for recipes whose owner no longer resolves.
const UnknownOwnerName = "<unknown>"

// ListEntry is a recipe together with its resolved owner name, as shown in
// the recipe list.
type ListEntry struct {
	models.Recipe
	OwnerName string
}

// RecipeService provides recipe CRUD, title search and listing with owner
// resolution.
type RecipeService struct {
	repo   recipes.Repository
	users  users.Repository
	logger logging.Logger
}

// NewRecipeService constructs a RecipeService over the given repositories.
func NewRecipeService(repo recipes.Repository, users users.Repository, logger logging.Logger) *RecipeService {
	return &RecipeService{repo: repo, users: users, logger: logger}
}

func (s *RecipeService) storeErr(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "store failure", "op", op, "error", err.Error())
	return common.ErrorStoreUnavailable
}

// Create persists the recipe with owner as its owning user and returns it
// with the assigned id. Title and content emptiness is the caller's concern.
func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe, owner *models.User) (*models.Recipe, error) {
	recipe.OwnerID = owner.ID

	created, err := s.repo.Create(ctx, recipe)
	if err != nil {
		return nil, s.storeErr(ctx, "create recipe", err)
	}
	return created, nil
}

// Get returns the recipe with the given id, or common.ErrorNotFound.
func (s *RecipeService) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, s.storeErr(ctx, "get recipe", err)
	}
	return rec, nil
}

// Update overwrites the stored recipe by id and returns the affected row
// count. 0 means the recipe no longer exists; that is reported, not raised.
func (s *RecipeService) Update(ctx context.Context, recipe *models.Recipe) (int64, error) {
	n, err := s.repo.Update(ctx, recipe)
	if err != nil {
		return 0, s.storeErr(ctx, "update recipe", err)
	}
	return n, nil
}

// Delete removes the recipe and returns the affected row count. The
// authorization decision (CanDelete) belongs to the caller.
func (s *RecipeService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, s.storeErr(ctx, "delete recipe", err)
	}
	return n, nil
}

// Search returns recipes whose title contains pattern, case-insensitively.
// No match yields an empty result.
func (s *RecipeService) Search(ctx context.Context, pattern string) ([]models.Recipe, error) {
	found, err := s.repo.SearchByTitle(ctx, pattern)
	if err != nil {
		return nil, s.storeErr(ctx, "search recipes", err)
	}
	return found, nil
}

// ListAll returns every recipe with its owner name resolved. When the owner
// lookup fails the recipe is reported with the unknown-owner sentinel
// instead of propagating the failure; the listing never breaks because a
// user was deleted.
func (s *RecipeService) ListAll(ctx context.Context) ([]ListEntry, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.storeErr(ctx, "list recipes", err)
	}

	entries := make([]ListEntry, 0, len(all))
	for _, rec := range all {
		entry := ListEntry{Recipe: rec, OwnerName: UnknownOwnerName}

		owner, err := s.users.GetByID(ctx, rec.OwnerID)
		if err != nil {
			entry.OwnerID = models.UnknownOwnerID
		} else {
			entry.OwnerName = owner.Username
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
