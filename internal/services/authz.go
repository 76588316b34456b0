package services

import "github.com/dmitrijs2005/recipekeeper/internal/models"

// CanDelete reports whether user may destroy or rewrite recipe: the owner
// may, and the admin account may regardless of ownership. The repositories
// do not re-check this; callers consult it before destructive operations.
func CanDelete(user *models.User, recipe *models.Recipe) bool {
	if user == nil || recipe == nil {
		return false
	}
	return recipe.OwnerID == user.ID || user.Username == models.AdminUsername
}
