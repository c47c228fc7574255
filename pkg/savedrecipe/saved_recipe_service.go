package savedrecipe

import (
	"context"
	"sync"

	"cooktok/entities"
	"cooktok/pkg/watch"
)

type (
	// SavedRecipeService keeps the live saved-recipes join result for the
	// user whose list was last loaded. Mutations return errors untouched;
	// there is no duplicate-save guard at this layer.
	SavedRecipeService interface {
		SavedRecipes() []entities.Recipe
		LoadSavedRecipes(ctx context.Context, userID uint) error
		SavedRecipesFor(ctx context.Context, userID uint) ([]entities.Recipe, error)
		Watch() *watch.Subscription
		SaveRecipe(ctx context.Context, userID, recipeID uint) error
		UnsaveRecipe(ctx context.Context, userID, recipeID uint) error
	}

	savedRecipeService struct {
		savedRecipeRepository SavedRecipeRepository
		notifier              watch.Notifier

		mu           sync.RWMutex
		savedRecipes []entities.Recipe
	}
)

func NewSavedRecipeService(savedRecipeRepository SavedRecipeRepository, notifier watch.Notifier) SavedRecipeService {
	return &savedRecipeService{savedRecipeRepository: savedRecipeRepository, notifier: notifier}
}

func (s *savedRecipeService) SavedRecipes() []entities.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Recipe, len(s.savedRecipes))
	copy(out, s.savedRecipes)
	return out
}

func (s *savedRecipeService) LoadSavedRecipes(ctx context.Context, userID uint) error {
	recipes, err := s.savedRecipeRepository.GetSavedRecipes(ctx, userID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.savedRecipes = recipes
	s.mu.Unlock()
	return nil
}

// SavedRecipesFor reads one user's saved list straight from the store,
// bypassing the shared snapshot. Concurrent callers for different users
// never see each other's list; the snapshot serves the single-user watch
// flow only.
func (s *savedRecipeService) SavedRecipesFor(ctx context.Context, userID uint) ([]entities.Recipe, error) {
	return s.savedRecipeRepository.GetSavedRecipes(ctx, userID)
}

// Watch covers both tables the join reads from, so the saved list also
// re-emits when a saved recipe itself is edited or deleted.
func (s *savedRecipeService) Watch() *watch.Subscription {
	return s.notifier.Subscribe(table, recipesTable)
}

func (s *savedRecipeService) SaveRecipe(ctx context.Context, userID, recipeID uint) error {
	return s.savedRecipeRepository.SaveRecipe(ctx, userID, recipeID)
}

func (s *savedRecipeService) UnsaveRecipe(ctx context.Context, userID, recipeID uint) error {
	return s.savedRecipeRepository.DeleteSavedRecipe(ctx, userID, recipeID)
}
