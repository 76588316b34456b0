package models

// UnknownOwnerID is the sentinel reported when a recipe's owner no longer
// resolves to an existing user (the store does not cascade deletes).
const UnknownOwnerID int64 = 0

// Recipe is a stored recipe. ImageURI is optional; the empty string means no
// image is attached. OwnerID references the creating user and may dangle
// after that user is deleted.
type Recipe struct {
	ID       int64
	Title    string
	Content  string
	ImageURI string
	OwnerID  int64
}
