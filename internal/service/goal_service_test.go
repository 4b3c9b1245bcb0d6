package service

import (
	"context"
	"testing"
	"time"

	"fitflow/internal/fitness"
	"fitflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_CreateSnapshotsInitial(t *testing.T) {
	t.Parallel()

	var saved *models.Goal
	repo := noopGoalRepo()
	repo.createFn = func(_ context.Context, g *models.Goal) error {
		saved = g
		return nil
	}
	svc := NewGoalService(repo)

	got, err := svc.Create(context.Background(), GoalInput{
		UserID: 1, Title: "Cut to 80kg", Current: 90, Target: 80, Unit: "kg",
		Category: models.GoalWeight,
	})
	require.NoError(t, err)

	require.NotNil(t, saved.Initial)
	assert.InDelta(t, 90.0, *saved.Initial, 0.001, "starting value is snapshotted at creation")
	assert.Equal(t, fitness.DirectionDecrease, got.Progress.Direction)
	assert.Equal(t, 0, got.Progress.Percentage, "no movement yet")
}

func TestGoalService_ProgressAnnotation(t *testing.T) {
	t.Parallel()

	initial := 90.0
	repo := noopGoalRepo()
	repo.getByIDFn = func(_ context.Context, _, id uint) (*models.Goal, error) {
		return &models.Goal{
			ID: id, UserID: 1, Title: "Cut to 80kg",
			Initial: &initial, Current: 85, Target: 80, Unit: "kg",
		}, nil
	}
	svc := NewGoalService(repo)

	got, err := svc.Get(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, fitness.DirectionDecrease, got.Progress.Direction)
	assert.Equal(t, 50, got.Progress.Percentage, "halfway from 90 to 80")
}

func TestGoalService_UpdatePartial(t *testing.T) {
	t.Parallel()

	initial := 90.0
	stored := &models.Goal{
		ID: 5, UserID: 1, Title: "Cut to 80kg",
		Initial: &initial, Current: 90, Target: 80, Unit: "kg",
		Category: models.GoalWeight,
	}
	repo := noopGoalRepo()
	repo.getByIDFn = func(_ context.Context, _, _ uint) (*models.Goal, error) { return stored, nil }
	var saved *models.Goal
	repo.updateFn = func(_ context.Context, g *models.Goal) error {
		saved = g
		return nil
	}
	svc := NewGoalService(repo)

	current := 85.0
	got, err := svc.Update(context.Background(), 5, UpdateGoalInput{UserID: 1, Current: &current})
	require.NoError(t, err)

	assert.InDelta(t, 85.0, saved.Current, 0.001)
	assert.Equal(t, "Cut to 80kg", saved.Title, "untouched fields survive")
	require.NotNil(t, saved.Initial)
	assert.InDelta(t, 90.0, *saved.Initial, 0.001, "initial snapshot never changes")
	assert.Equal(t, 50, got.Progress.Percentage)
}

func TestGoalService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := NewGoalService(noopGoalRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, GoalInput{UserID: 1, Unit: "kg"})
	assertValidationError(t, err)

	_, err = svc.Create(ctx, GoalInput{UserID: 1, Title: "Run 10k"})
	assertValidationError(t, err)

	_, err = svc.Create(ctx, GoalInput{UserID: 1, Title: "Run 10k", Unit: "km", Category: "impossible"})
	assertValidationError(t, err)
}

func TestGoalService_ListPeriodWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	var gotSince *time.Time
	repo := noopGoalRepo()
	repo.listByUserFn = func(_ context.Context, _ uint, since *time.Time) ([]models.Goal, error) {
		gotSince = since
		return []models.Goal{{Title: "Squat 100kg", Current: 80, Target: 100, Unit: "kg"}}, nil
	}
	svc := NewGoalService(repo)
	svc.now = func() time.Time { return now }

	goals, err := svc.List(context.Background(), 1, fitness.PeriodAll)
	require.NoError(t, err)
	assert.Nil(t, gotSince, "all-time period applies no lower bound")
	require.Len(t, goals, 1)
	assert.Equal(t, 80, goals[0].Progress.Percentage)

	_, err = svc.List(context.Background(), 1, fitness.PeriodWeek)
	require.NoError(t, err)
	require.NotNil(t, gotSince)
	assert.Equal(t, fitness.DayStart(now).AddDate(0, 0, -7), gotSince.UTC())
}
