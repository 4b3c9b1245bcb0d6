package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fitflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorRepository_HistoryNewestFirstLimited(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCalculatorRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		r := &models.CalculatorResult{
			UserID:        1,
			Age:           25,
			Weight:        75,
			Height:        175,
			Gender:        models.GenderMale,
			ActivityLevel: models.ActivityModerate,
			Objective:     models.ObjectiveMaintenance,
			BMR:           1724,
			TDEE:          2672,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, r))
	}

	history, err := repo.ListByUser(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, history, 10, "history is capped")
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].CreatedAt.After(history[i-1].CreatedAt),
			fmt.Sprintf("entry %d newer than entry %d", i, i-1))
	}
}

func TestCalculatorRepository_LatestByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCalculatorRepository(db)
	ctx := context.Background()

	latest, err := repo.LatestByUser(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, latest, "no history yet")

	older := &models.CalculatorResult{
		UserID: 3, Age: 30, Weight: 80, Height: 180,
		Gender: models.GenderFemale, ActivityLevel: models.ActivitySedentary,
		BMR: 1558, TDEE: 1870,
		CreatedAt: time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
	}
	newer := &models.CalculatorResult{
		UserID: 3, Age: 30, Weight: 78, Height: 180,
		Gender: models.GenderFemale, ActivityLevel: models.ActivitySedentary,
		BMR: 1540, TDEE: 1848,
		CreatedAt: time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	latest, err = repo.LatestByUser(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.InDelta(t, 78.0, latest.Weight, 0.001)
}
