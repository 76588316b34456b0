// Package services contains the application's business logic on top of the
// repositories: registration and authentication, recipe management with
// owner resolution, and the authorization rule for destructive operations.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/cryptox"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/models"
	"github.com/dmitrijs2005/recipekeeper/internal/repositories/users"
)

// UserService provides account-related operations: registration, login,
// profile updates and the liked-recipes relation.
type UserService struct {
	repo   users.Repository
	logger logging.Logger
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(repo users.Repository, logger logging.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// storeErr logs a low-level store failure and maps it to the domain error
// surfaced to callers. Raw driver errors never leave the service layer.
func (s *UserService) storeErr(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "store failure", "op", op, "error", err.Error())
	return common.ErrorStoreUnavailable
}

// Register creates a new account. The password is hashed before it is
// persisted; a taken username yields common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, username string, password []byte) (*models.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := s.repo.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, s.storeErr(ctx, "create user", err)
	}

	u.LikedRecipes = make(map[int64]struct{})
	return u, nil
}

// Authenticate verifies the credentials and returns the account with its
// liked-recipe set loaded.
//
// An unknown username and a wrong password both yield common.ErrorNotFound.
// This is deliberate: distinct errors would let a caller probe which
// usernames exist.
func (s *UserService) Authenticate(ctx context.Context, username string, password []byte) (*models.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, s.storeErr(ctx, "get user", err)
	}

	if !cryptox.VerifyPassword(password, u.PasswordHash) {
		return nil, common.ErrorNotFound
	}

	return s.withLikes(ctx, u)
}

// GetByUsername returns the user with the given name, likes included.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, s.storeErr(ctx, "get user", err)
	}
	return s.withLikes(ctx, u)
}

// GetByID returns the user with the given id, likes included.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, s.storeErr(ctx, "get user", err)
	}
	return s.withLikes(ctx, u)
}

func (s *UserService) withLikes(ctx context.Context, u *models.User) (*models.User, error) {
	liked, err := s.repo.LikedRecipeIDs(ctx, u.ID)
	if err != nil {
		return nil, s.storeErr(ctx, "load likes", err)
	}
	u.LikedRecipes = liked
	return u, nil
}

// ChangeUsername renames the account and returns the affected row count.
// A collision with another account yields common.ErrorConflict.
func (s *UserService) ChangeUsername(ctx context.Context, id int64, username string) (int64, error) {
	n, err := s.repo.UpdateUsername(ctx, id, username)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return 0, common.ErrorConflict
		}
		return 0, s.storeErr(ctx, "update username", err)
	}
	return n, nil
}

// ChangePassword re-hashes and stores the new password.
func (s *UserService) ChangePassword(ctx context.Context, id int64, password []byte) (int64, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	n, err := s.repo.UpdatePassword(ctx, id, hash)
	if err != nil {
		return 0, s.storeErr(ctx, "update password", err)
	}
	return n, nil
}

// Delete removes the account. Recipes the user owns are kept and will show
// up with the unknown-owner sentinel from then on.
func (s *UserService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, s.storeErr(ctx, "delete user", err)
	}
	return n, nil
}

// UsernameExists reports whether the name is taken.
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return false, s.storeErr(ctx, "username exists", err)
	}
	return exists, nil
}

// Like marks the recipe as liked by the user; liking twice is a no-op.
func (s *UserService) Like(ctx context.Context, userID, recipeID int64) error {
	if err := s.repo.Like(ctx, userID, recipeID); err != nil {
		return s.storeErr(ctx, "like", err)
	}
	return nil
}

// Unlike removes the like and returns the affected row count.
func (s *UserService) Unlike(ctx context.Context, userID, recipeID int64) (int64, error) {
	n, err := s.repo.Unlike(ctx, userID, recipeID)
	if err != nil {
		return 0, s.storeErr(ctx, "unlike", err)
	}
	return n, nil
}

// LikedRecipeIDs returns the set of recipe ids the user has liked.
func (s *UserService) LikedRecipeIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	liked, err := s.repo.LikedRecipeIDs(ctx, userID)
	if err != nil {
		return nil, s.storeErr(ctx, "load likes", err)
	}
	return liked, nil
}
