package recipe

import (
	"context"
	"errors"

	"cooktok/entities"
	"cooktok/pkg/watch"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		InsertRecipe(ctx context.Context, recipe *entities.Recipe) (uint, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetAllRecipes(ctx context.Context) ([]entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uint) ([]entities.Recipe, error)
		GetRecipesByCuisine(ctx context.Context, cuisineID uint) ([]entities.Recipe, error)
	}

	recipeRepository struct {
		db       *gorm.DB
		notifier watch.Notifier
	}
)

const table = "recipes"

func NewRecipeRepository(db *gorm.DB, notifier watch.Notifier) RecipeRepository {
	return &recipeRepository{db: db, notifier: notifier}
}

// InsertRecipe returns the generated id. A conflicting primary key is
// replaced in full, last writer wins.
func (r *recipeRepository) InsertRecipe(ctx context.Context, recipe *entities.Recipe) (uint, error) {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(recipe).Error; err != nil {
		return 0, err
	}
	r.notifier.Publish(table)
	return recipe.ID, nil
}

// UpdateRecipe matches by primary key and affects no rows, without error,
// when the key is absent.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]interface{}{
			"user_id":      recipe.UserID,
			"image_uri":    recipe.ImageURI,
			"title":        recipe.Title,
			"description":  recipe.Description,
			"cooking_time": recipe.CookingTime,
			"difficulty":   recipe.Difficulty,
			"cuisine_id":   recipe.CuisineID,
			"ingredients":  recipe.Ingredients,
			"steps":        recipe.Steps,
			"tags":         recipe.Tags,
		}).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", recipe.ID).
		Delete(&entities.Recipe{}).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}

func (r *recipeRepository) GetAllRecipes(ctx context.Context) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uint) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByCuisine(ctx context.Context, cuisineID uint) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).Where("cuisine_id = ?", cuisineID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
