// Package models defines the persistent domain objects shared by
// repositories, services and the CLI.
package models

// AdminUsername is the reserved name of the privileged account. It is only
// created when an admin password is explicitly configured at bootstrap.
const AdminUsername = "admin"

// User is a registered account. PasswordHash holds the salted bcrypt hash;
// the plaintext password is never persisted. LikedRecipes is the set of
// recipe ids the user has liked (no ordering).
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	LikedRecipes map[int64]struct{}
}

// Likes reports whether the user has liked the given recipe.
func (u *User) Likes(recipeID int64) bool {
	_, ok := u.LikedRecipes[recipeID]
	return ok
}
