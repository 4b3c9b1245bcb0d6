package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWorkout(t *testing.T, repo WorkoutRepository, userID uint, date time.Time) *models.Workout {
	t.Helper()
	w := &models.Workout{
		UserID:         userID,
		Title:          "Push day",
		Duration:       45,
		Difficulty:     models.DifficultyIntermediate,
		CaloriesBurned: 320,
		Date:           date,
		Exercises: []models.Exercise{
			{Name: "Bench press", Sets: 4, Reps: 8, Weight: 60},
			{Name: "Overhead press", Sets: 3, Reps: 10, Weight: 35},
		},
	}
	require.NoError(t, repo.Create(context.Background(), w))
	return w
}

func TestWorkoutRepository_GetByIDScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkoutRepository(db)
	ctx := context.Background()

	w := seedWorkout(t, repo, 1, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	got, err := repo.GetByID(ctx, 1, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push day", got.Title)
	assert.Len(t, got.Exercises, 2)

	// Another user sees not-found, never forbidden.
	_, err = repo.GetByID(ctx, 2, w.ID)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestWorkoutRepository_DeleteScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkoutRepository(db)
	ctx := context.Background()

	w := seedWorkout(t, repo, 1, time.Now().UTC())

	err := repo.Delete(ctx, 2, w.ID)
	require.Error(t, err, "cross-user delete must not succeed")

	require.NoError(t, repo.Delete(ctx, 1, w.ID))

	_, err = repo.GetByID(ctx, 1, w.ID)
	assert.Error(t, err)
}

func TestWorkoutRepository_ListByUserSince(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkoutRepository(db)
	ctx := context.Background()

	old := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC)
	seedWorkout(t, repo, 1, old)
	seedWorkout(t, repo, 1, recent)
	seedWorkout(t, repo, 2, recent)

	all, err := repo.ListByUser(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, recent, all[0].Date.UTC(), "newest first")

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	filtered, err := repo.ListByUser(ctx, 1, &since)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, recent, filtered[0].Date.UTC())
}

func TestWorkoutRepository_UpdateReplacesExercises(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkoutRepository(db)
	ctx := context.Background()

	w := seedWorkout(t, repo, 1, time.Now().UTC())
	w.Title = "Push day (updated)"
	w.Exercises = []models.Exercise{
		{Name: "Incline bench", Sets: 3, Reps: 12, Weight: 50},
	}
	require.NoError(t, repo.Update(ctx, w))

	got, err := repo.GetByID(ctx, 1, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push day (updated)", got.Title)
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, "Incline bench", got.Exercises[0].Name)
}

func TestWorkoutRepository_DatesSinceAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkoutRepository(db)
	ctx := context.Background()

	seedWorkout(t, repo, 1, time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC))
	seedWorkout(t, repo, 1, time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC))
	seedWorkout(t, repo, 2, time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC))

	dates, err := repo.DatesSince(ctx, 1, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, dates, 1)

	count, err := repo.CountByUser(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
