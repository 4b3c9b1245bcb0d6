package repository

import (
	"context"
	"errors"

	"fitflow/internal/models"

	"gorm.io/gorm"
)

// ProgressRepository defines persistence operations for progress photos
// and their ML analyses, scoped to the owning user.
type ProgressRepository interface {
	Create(ctx context.Context, photo *models.ProgressPhoto) error
	GetByID(ctx context.Context, userID, id uint) (*models.ProgressPhoto, error)
	ListByUser(ctx context.Context, userID uint) ([]models.ProgressPhoto, error)
	Delete(ctx context.Context, userID, id uint) error
	AttachAnalysis(ctx context.Context, analysis *models.BodyAnalysis) error
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository returns a new ProgressRepository implementation.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, photo *models.ProgressPhoto) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *progressRepository) GetByID(ctx context.Context, userID, id uint) (*models.ProgressPhoto, error) {
	var photo models.ProgressPhoto
	err := r.db.WithContext(ctx).
		Preload("Analysis").
		Where("user_id = ?", userID).
		First(&photo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("ProgressPhoto", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &photo, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID uint) ([]models.ProgressPhoto, error) {
	var photos []models.ProgressPhoto
	err := r.db.WithContext(ctx).
		Preload("Analysis").
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}

func (r *progressRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ProgressPhoto{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("ProgressPhoto", id)
	}
	return nil
}

// AttachAnalysis stores the ML result for an already-persisted photo.
func (r *progressRepository) AttachAnalysis(ctx context.Context, analysis *models.BodyAnalysis) error {
	if err := r.db.WithContext(ctx).Create(analysis).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
