package recipe

import (
	"context"
	"sync"

	"cooktok/entities"
	"cooktok/pkg/watch"
)

type (
	// RecipeState is the recipe screens' observable state. AddRecipeSuccess
	// stays true until ResetAddRecipeState so the confirmation fires
	// exactly once per successful add.
	RecipeState struct {
		IsLoading        bool
		AddRecipeSuccess bool
		ErrorMessage     string
	}

	RecipeService interface {
		Recipes() []entities.Recipe
		LoadRecipes(ctx context.Context) error
		Watch() *watch.Subscription
		AddRecipe(ctx context.Context, recipe entities.Recipe) (uint, error)
		UpdateRecipe(ctx context.Context, recipe entities.Recipe) error
		DeleteRecipe(ctx context.Context, recipe entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uint) ([]entities.Recipe, error)
		GetRecipesByCuisine(ctx context.Context, cuisineID uint) ([]entities.Recipe, error)
		ResetAddRecipeState()
		ClearError()
		State() RecipeState
	}

	recipeService struct {
		recipeRepository RecipeRepository
		notifier         watch.Notifier

		mu      sync.RWMutex
		recipes []entities.Recipe
		state   RecipeState
	}
)

func NewRecipeService(recipeRepository RecipeRepository, notifier watch.Notifier) RecipeService {
	return &recipeService{recipeRepository: recipeRepository, notifier: notifier}
}

func (s *recipeService) Recipes() []entities.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

func (s *recipeService) LoadRecipes(ctx context.Context) error {
	recipes, err := s.recipeRepository.GetAllRecipes(ctx)
	if err != nil {
		s.setError(err.Error())
		return err
	}
	s.mu.Lock()
	s.recipes = recipes
	s.mu.Unlock()
	return nil
}

// Watch returns a live-query handle on the recipes table. The caller
// re-reads via LoadRecipes/Recipes on each signal and closes the handle
// when its screen goes away.
func (s *recipeService) Watch() *watch.Subscription {
	return s.notifier.Subscribe(table)
}

func (s *recipeService) AddRecipe(ctx context.Context, recipe entities.Recipe) (uint, error) {
	s.beginLoading()
	defer s.endLoading()

	id, err := s.recipeRepository.InsertRecipe(ctx, &recipe)
	if err != nil {
		s.mu.Lock()
		s.state.ErrorMessage = err.Error()
		s.state.AddRecipeSuccess = false
		s.mu.Unlock()
		return 0, err
	}

	s.mu.Lock()
	s.state.AddRecipeSuccess = true
	s.mu.Unlock()
	_ = s.LoadRecipes(ctx)
	return id, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipe entities.Recipe) error {
	s.beginLoading()
	defer s.endLoading()

	if err := s.recipeRepository.UpdateRecipe(ctx, &recipe); err != nil {
		s.setError(err.Error())
		return err
	}
	_ = s.LoadRecipes(ctx)
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipe entities.Recipe) error {
	s.beginLoading()
	defer s.endLoading()

	if err := s.recipeRepository.DeleteRecipe(ctx, &recipe); err != nil {
		s.setError(err.Error())
		return err
	}
	_ = s.LoadRecipes(ctx)
	return nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	return s.recipeRepository.GetRecipeByID(ctx, id)
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, userID uint) ([]entities.Recipe, error) {
	return s.recipeRepository.GetRecipesByUser(ctx, userID)
}

func (s *recipeService) GetRecipesByCuisine(ctx context.Context, cuisineID uint) ([]entities.Recipe, error) {
	return s.recipeRepository.GetRecipesByCuisine(ctx, cuisineID)
}

func (s *recipeService) ResetAddRecipeState() {
	s.mu.Lock()
	s.state.AddRecipeSuccess = false
	s.mu.Unlock()
}

func (s *recipeService) ClearError() {
	s.mu.Lock()
	s.state.ErrorMessage = ""
	s.mu.Unlock()
}

func (s *recipeService) setError(msg string) {
	s.mu.Lock()
	s.state.ErrorMessage = msg
	s.mu.Unlock()
}

func (s *recipeService) State() RecipeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *recipeService) beginLoading() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.ErrorMessage = ""
	s.mu.Unlock()
}

func (s *recipeService) endLoading() {
	s.mu.Lock()
	s.state.IsLoading = false
	s.mu.Unlock()
}
