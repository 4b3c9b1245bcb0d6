package repository

import (
	"context"

	"fitflow/internal/models"

	"gorm.io/gorm"
)

// CalculatorRepository stores the append-only calculation history.
type CalculatorRepository interface {
	Create(ctx context.Context, result *models.CalculatorResult) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.CalculatorResult, error)
	LatestByUser(ctx context.Context, userID uint) (*models.CalculatorResult, error)
}

type calculatorRepository struct {
	db *gorm.DB
}

// NewCalculatorRepository returns a new CalculatorRepository implementation.
func NewCalculatorRepository(db *gorm.DB) CalculatorRepository {
	return &calculatorRepository{db: db}
}

func (r *calculatorRepository) Create(ctx context.Context, result *models.CalculatorResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByUser returns the most recent calculations, newest first.
func (r *calculatorRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.CalculatorResult, error) {
	if limit <= 0 {
		limit = 10
	}
	var results []models.CalculatorResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return results, nil
}

// LatestByUser returns (nil, nil) when the user has no history yet.
func (r *calculatorRepository) LatestByUser(ctx context.Context, userID uint) (*models.CalculatorResult, error) {
	results, err := r.ListByUser(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
