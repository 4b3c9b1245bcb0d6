package repository

import (
	"context"
	"errors"
	"time"

	"fitflow/internal/models"
	"fitflow/internal/observability"

	"gorm.io/gorm"
)

// WorkoutRepository defines persistence operations for workouts. Every
// read and write is scoped to the owning user; records belonging to
// other users are indistinguishable from missing ones.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *models.Workout) error
	GetByID(ctx context.Context, userID, id uint) (*models.Workout, error)
	ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Workout, error)
	Update(ctx context.Context, workout *models.Workout) error
	Delete(ctx context.Context, userID, id uint) error
	DatesSince(ctx context.Context, userID uint, since time.Time) ([]time.Time, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository returns a new WorkoutRepository implementation.
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Create", "workouts")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *workoutRepository) GetByID(ctx context.Context, userID, id uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.WithContext(ctx).
		Preload("Exercises").
		Where("user_id = ?", userID).
		First(&workout, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Workout", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &workout, nil
}

// ListByUser returns the user's workouts newest first. A nil since
// returns the full history.
func (r *workoutRepository) ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Workout, error) {
	var workouts []models.Workout
	q := r.db.WithContext(ctx).
		Preload("Exercises").
		Where("user_id = ?", userID)
	if since != nil {
		q = q.Where("date >= ?", *since)
	}
	if err := q.Order("date desc").Find(&workouts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return workouts, nil
}

func (r *workoutRepository) Update(ctx context.Context, workout *models.Workout) error {
	// Replace the exercise list wholesale; partial merges are not worth
	// the bookkeeping for lists this small.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(workout).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Workout{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Workout", id)
	}
	return nil
}

// DatesSince returns the workout dates on or after since, used for
// streak derivation.
func (r *workoutRepository) DatesSince(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&models.Workout{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date desc").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return dates, nil
}

func (r *workoutRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
