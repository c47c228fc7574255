package user

import (
	"context"
	"errors"

	"cooktok/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UserRepository interface {
		Signup(ctx context.Context, user *entities.User) (uint, error)
		Login(ctx context.Context, email, password string) (*entities.User, error)
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Signup inserts the user and returns the generated id. A conflicting
// primary key is resolved by full replacement, not rejection.
func (r *userRepository) Signup(ctx context.Context, user *entities.User) (uint, error) {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login is a direct equality match against the stored email and password
// columns. Any mismatch yields an absent result, never an error.
func (r *userRepository) Login(ctx context.Context, email, password string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND password = ?", email, password).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
