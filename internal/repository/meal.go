package repository

import (
	"context"
	"errors"
	"time"

	"fitflow/internal/models"

	"gorm.io/gorm"
)

// MealRepository defines persistence operations for meals, scoped to the
// owning user.
type MealRepository interface {
	Create(ctx context.Context, meal *models.Meal) error
	GetByID(ctx context.Context, userID, id uint) (*models.Meal, error)
	ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Meal, error)
	Update(ctx context.Context, meal *models.Meal) error
	Delete(ctx context.Context, userID, id uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository returns a new MealRepository implementation.
func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *models.Meal) error {
	if err := r.db.WithContext(ctx).Create(meal).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *mealRepository) GetByID(ctx context.Context, userID, id uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Meal", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &meal, nil
}

// ListByUser returns the user's meals newest first. A nil since returns
// the full history.
func (r *mealRepository) ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if since != nil {
		q = q.Where("date >= ?", *since)
	}
	if err := q.Order("date desc, time desc").Find(&meals).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return meals, nil
}

func (r *mealRepository) Update(ctx context.Context, meal *models.Meal) error {
	if err := r.db.WithContext(ctx).Save(meal).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *mealRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Meal{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Meal", id)
	}
	return nil
}

func (r *mealRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
