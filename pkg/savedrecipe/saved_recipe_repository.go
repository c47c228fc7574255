package savedrecipe

import (
	"context"
	"errors"

	"cooktok/entities"
	"cooktok/pkg/watch"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	SavedRecipeRepository interface {
		SaveRecipe(ctx context.Context, userID, recipeID uint) error
		DeleteSavedRecipe(ctx context.Context, userID, recipeID uint) error
		GetSavedRecipes(ctx context.Context, userID uint) ([]entities.Recipe, error)
	}

	savedRecipeRepository struct {
		db       *gorm.DB
		notifier watch.Notifier
	}
)

const (
	table        = "saved_recipes"
	recipesTable = "recipes"
)

func NewSavedRecipeRepository(db *gorm.DB, notifier watch.Notifier) SavedRecipeRepository {
	return &savedRecipeRepository{db: db, notifier: notifier}
}

// SaveRecipe inserts a fresh join row. (userID, recipeID) is not unique,
// so repeated saves stack duplicate rows; callers that want idempotence
// check before calling.
func (r *savedRecipeRepository) SaveRecipe(ctx context.Context, userID, recipeID uint) error {
	saved := entities.SavedRecipe{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&saved).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}

// DeleteSavedRecipe removes at most one row matching the pair. With
// duplicate saves present, one call removes one of them.
func (r *savedRecipeRepository) DeleteSavedRecipe(ctx context.Context, userID, recipeID uint) error {
	var saved entities.SavedRecipe
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("id = ?", saved.ID).
		Delete(&entities.SavedRecipe{}).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}

func (r *savedRecipeRepository) GetSavedRecipes(ctx context.Context, userID uint) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("INNER JOIN saved_recipes s ON recipes.id = s.recipe_id").
		Where("s.user_id = ?", userID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
