package cuisine

import (
	"context"

	"cooktok/entities"
	"cooktok/pkg/watch"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CuisineRepository interface {
		GetAllCuisines(ctx context.Context) ([]entities.Cuisine, error)
		InsertCuisine(ctx context.Context, cuisine *entities.Cuisine) error
		UpdateCuisine(ctx context.Context, cuisine *entities.Cuisine) error
		DeleteCuisine(ctx context.Context, cuisine *entities.Cuisine) error
	}

	cuisineRepository struct {
		db       *gorm.DB
		notifier watch.Notifier
	}
)

const table = "cuisines"

func NewCuisineRepository(db *gorm.DB, notifier watch.Notifier) CuisineRepository {
	return &cuisineRepository{db: db, notifier: notifier}
}

func (r *cuisineRepository) GetAllCuisines(ctx context.Context) ([]entities.Cuisine, error) {
	var cuisines []entities.Cuisine
	if err := r.db.WithContext(ctx).Find(&cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (r *cuisineRepository) InsertCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(cuisine).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}

// UpdateCuisine matches by primary key. An absent key affects no rows and
// signals no error.
func (r *cuisineRepository) UpdateCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	if err := r.db.WithContext(ctx).
		Model(&entities.Cuisine{}).
		Where("id = ?", cuisine.ID).
		Updates(map[string]interface{}{"name": cuisine.Name}).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}

func (r *cuisineRepository) DeleteCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", cuisine.ID).
		Delete(&entities.Cuisine{}).Error; err != nil {
		return err
	}
	r.notifier.Publish(table)
	return nil
}
