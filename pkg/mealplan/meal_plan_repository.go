package mealplan

import (
	"context"

	"cooktok/entities"
	"cooktok/pkg/watch"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MealPlanRepository interface {
		InsertMealPlan(ctx context.Context, mealPlan *entities.MealPlan) (uint, error)
		UpdateMealPlan(ctx context.Context, mealPlan *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, mealPlan *entities.MealPlan) error
		GetMealPlansForDate(ctx context.Context, date string, userID uint) ([]entities.MealPlan, error)
		GetAllMealPlans(ctx context.Context, userID uint) ([]entities.MealPlan, error)
	}

	mealPlanRepository struct {
		db       *gorm.DB
		notifier watch.Notifier
	}
)

const table = "meal_plans"

func NewMealPlanRepository(db *gorm.DB, notifier watch.Notifier) MealPlanRepository {
	return &mealPlanRepository{db: db, notifier: notifier}
}

// InsertMealPlan assigns a fresh id when the record carries the zero
// sentinel, and replaces in full on a conflicting explicit id. No
// uniqueness applies to (userId, date, mealType): a slot can stack rows.
func (r *mealPlanRepository) InsertMealPlan(ctx context.Context, mealPlan *entities.MealPlan) (uint, error) {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(mealPlan).Error; err != nil {
		return 0, err
	}
	r.notifier.Publish(table)
	return mealPlan.ID, nil
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, mealPlan *entities.MealPlan) error {
	if err := r.db.WithContext(ctx).
		Model(&entities.MealPlan{}).
		Where("id = ?", mealPlan.ID).
		Updates(map[string]interface{}{
			"user_id":   mealPlan.UserID,
			"date":      mealPlan.Date,
			"meal_type": mealPlan.MealType,
			"recipe_id": mealPlan.RecipeID,
		}).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, mealPlan *entities.MealPlan) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", mealPlan.ID).
		Delete(&entities.MealPlan{}).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}

func (r *mealPlanRepository) GetMealPlansForDate(ctx context.Context, date string, userID uint) ([]entities.MealPlan, error) {
	var mealPlans []entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("date = ? AND user_id = ?", date, userID).
		Find(&mealPlans).Error; err != nil {
		return nil, err
	}
	return mealPlans, nil
}

func (r *mealPlanRepository) GetAllMealPlans(ctx context.Context, userID uint) ([]entities.MealPlan, error) {
	var mealPlans []entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&mealPlans).Error; err != nil {
		return nil, err
	}
	return mealPlans, nil
}
