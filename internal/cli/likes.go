package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
)

// Like marks a recipe as liked by the current user. Liking a recipe twice
// is a no-op.
func (a *App) Like(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.promptRecipeID("Enter recipe id to like")
	if err != nil {
		return err
	}

	if _, err := a.recipes.Get(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No such recipe")
		} else {
			printlnFn("Could not load recipe, please try again later")
		}
		return err
	}

	if err := a.users.Like(ctx, a.current.ID, id); err != nil {
		printlnFn("Could not save like, please try again later")
		return err
	}

	a.current.LikedRecipes[id] = struct{}{}
	printlnFn("Liked")
	return nil
}

// Unlike removes a like. Unliking a recipe that was not liked is a no-op.
func (a *App) Unlike(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.promptRecipeID("Enter recipe id to unlike")
	if err != nil {
		return err
	}

	if _, err := a.users.Unlike(ctx, a.current.ID, id); err != nil {
		printlnFn("Could not remove like, please try again later")
		return err
	}

	delete(a.current.LikedRecipes, id)
	printlnFn("Done")
	return nil
}

// Liked lists the recipes the current user has liked.
func (a *App) Liked(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	liked, err := a.users.LikedRecipeIDs(ctx, a.current.ID)
	if err != nil {
		printlnFn("Could not load likes, please try again later")
		return err
	}
	a.current.LikedRecipes = liked

	if len(liked) == 0 {
		printlnFn("You have not liked any recipes yet")
		return nil
	}

	entries, err := a.recipes.ListAll(ctx)
	if err != nil {
		printlnFn("Could not load recipes, please try again later")
		return err
	}

	for _, e := range entries {
		if _, ok := liked[e.ID]; ok {
			printlnFn(fmt.Sprintf("%d: %s (by %s)", e.ID, e.Title, e.OwnerName))
		}
	}
	return nil
}
