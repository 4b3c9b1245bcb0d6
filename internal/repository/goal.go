package repository

import (
	"context"
	"errors"
	"time"

	"fitflow/internal/models"

	"gorm.io/gorm"
)

// GoalRepository defines persistence operations for goals, scoped to the
// owning user.
type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	GetByID(ctx context.Context, userID, id uint) (*models.Goal, error)
	ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	Delete(ctx context.Context, userID, id uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository returns a new GoalRepository implementation.
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *goalRepository) GetByID(ctx context.Context, userID, id uint) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&goal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Goal", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &goal, nil
}

// ListByUser returns the user's goals newest first. A nil since returns
// the full set; otherwise only goals created on or after since.
func (r *goalRepository) ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Goal, error) {
	var goals []models.Goal
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	err := q.Order("created_at desc").Find(&goals).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *models.Goal) error {
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Goal{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Goal", id)
	}
	return nil
}

func (r *goalRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
