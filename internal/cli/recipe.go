package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/models"
	"github.com/dmitrijs2005/recipekeeper/internal/services"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return errNotLoggedIn
	}
	return nil
}

// promptRecipeID asks for a recipe id and parses it.
func (a *App) promptRecipeID(prompt string) (int64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		printlnFn("Recipe id must be a number")
		return 0, err
	}
	return id, nil
}

func (a *App) likeMarker(recipeID int64) string {
	if a.current != nil && a.current.Likes(recipeID) {
		return " [liked]"
	}
	return ""
}

// List prints every recipe with its id, title and owner name.
func (a *App) List(ctx context.Context) error {
	entries, err := a.recipes.ListAll(ctx)
	if err != nil {
		printlnFn("Could not load recipes, please try again later")
		return err
	}

	if len(entries) == 0 {
		printlnFn("No recipes yet")
		return nil
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%d: %s (by %s)%s", e.ID, e.Title, e.OwnerName, a.likeMarker(e.ID)))
	}
	return nil
}

// Search prompts for a pattern and lists matching recipes by title.
func (a *App) Search(ctx context.Context) error {
	pattern, err := getSimpleText(a.reader, "Enter search text", os.Stdout)
	if err != nil {
		return err
	}

	found, err := a.recipes.Search(ctx, pattern)
	if err != nil {
		printlnFn("Could not search recipes, please try again later")
		return err
	}

	if len(found) == 0 {
		printlnFn("Nothing found")
		return nil
	}
	for _, r := range found {
		printlnFn(fmt.Sprintf("%d: %s%s", r.ID, r.Title, a.likeMarker(r.ID)))
	}
	return nil
}

// Show prints a single recipe. When image storage is configured and the
// recipe has an image, a time-limited download link is printed too.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptRecipeID("Enter recipe id to show")
	if err != nil {
		return err
	}

	recipe, err := a.recipes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No such recipe")
		} else {
			printlnFn("Could not load recipe, please try again later")
		}
		return err
	}

	printlnFn(recipe.Title)
	printlnFn(recipe.Content)

	if recipe.ImageURI != "" && a.images.Enabled() {
		url, err := a.images.ShareURL(ctx, recipe.ImageURI)
		if err != nil {
			a.logger.Warn(ctx, "could not presign image link", "error", err.Error())
		} else {
			printlnFn("Image: " + url)
		}
	}
	return nil
}

// Add collects a new recipe from the user and persists it. An image file
// path may be given when image storage is configured.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Title is required")
		return errors.New("title is required")
	}

	content, err := GetMultiline(a.reader, "Enter recipe text (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	recipe := &models.Recipe{Title: title, Content: content}

	if a.images.Enabled() {
		path, err := getSimpleText(a.reader, "Enter image file path (empty to skip)", os.Stdout)
		if err != nil {
			return err
		}
		if path != "" {
			key, err := a.images.Upload(ctx, path)
			if err != nil {
				printlnFn("Could not upload image: " + err.Error())
				return err
			}
			recipe.ImageURI = key
		}
	}

	created, err := a.recipes.Create(ctx, recipe, a.current)
	if err != nil {
		printlnFn("Could not save recipe, please try again later")
		return err
	}

	printlnFn(fmt.Sprintf("Saved as recipe %d", created.ID))
	return nil
}

// Edit overwrites the title and content of an existing recipe. Only the
// owner and the admin may edit; empty input keeps the previous value.
func (a *App) Edit(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.promptRecipeID("Enter recipe id to edit")
	if err != nil {
		return err
	}

	recipe, err := a.recipes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No such recipe")
		} else {
			printlnFn("Could not load recipe, please try again later")
		}
		return err
	}

	if !services.CanDelete(a.current, recipe) {
		printlnFn("You can only edit your own recipes")
		return common.ErrorUnauthorized
	}

	title, err := getSimpleText(a.reader, "Enter new title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		recipe.Title = title
	}

	content, err := GetMultiline(a.reader, "Enter new recipe text (double Enter to keep):", os.Stdout)
	if err != nil {
		return err
	}
	if content != "" {
		recipe.Content = content
	}

	n, err := a.recipes.Update(ctx, recipe)
	if err != nil {
		printlnFn("Could not save recipe, please try again later")
		return err
	}
	if n == 0 {
		printlnFn("The recipe no longer exists")
		return common.ErrorNotFound
	}

	printlnFn("Saved")
	return nil
}

// Delete removes a recipe after an ownership check.
func (a *App) Delete(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.promptRecipeID("Enter recipe id to delete")
	if err != nil {
		return err
	}

	recipe, err := a.recipes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No such recipe")
		} else {
			printlnFn("Could not load recipe, please try again later")
		}
		return err
	}

	if !services.CanDelete(a.current, recipe) {
		printlnFn("You can only delete your own recipes")
		return common.ErrorUnauthorized
	}

	if _, err := a.recipes.Delete(ctx, id); err != nil {
		printlnFn("Could not delete recipe, please try again later")
		return err
	}

	printlnFn("Deleted")
	return nil
}
