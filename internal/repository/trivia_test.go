package repository

import (
	"context"
	"testing"
	"time"

	"fitflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQuestions(t *testing.T, repo TriviaRepository, n int) {
	t.Helper()
	questions := make([]models.TriviaQuestion, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, models.TriviaQuestion{
			Question:      "Which nutrient is the body's primary energy source?",
			CorrectAnswer: "Carbohydrates",
			Category:      models.TriviaMacronutrients,
			Difficulty:    models.TriviaEasy,
			Options: []models.TriviaOption{
				{Position: 0, Text: "Carbohydrates"},
				{Position: 1, Text: "Protein"},
				{Position: 2, Text: "Fat"},
				{Position: 3, Text: "Fiber"},
			},
		})
	}
	require.NoError(t, repo.InsertQuestions(context.Background(), questions))
}

func TestTriviaRepository_RandomQuestionOptionsOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTriviaRepository(db)
	ctx := context.Background()

	seedQuestions(t, repo, 3)

	q, err := repo.RandomQuestion(ctx, QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, q.Options, 4)
	for i, opt := range q.Options {
		assert.Equal(t, i, opt.Position, "options must come back in position order")
	}
}

func TestTriviaRepository_RandomQuestionFiltered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTriviaRepository(db)
	ctx := context.Background()

	seedQuestions(t, repo, 2)
	require.NoError(t, repo.InsertQuestions(ctx, []models.TriviaQuestion{{
		Question:      "Roughly what share of an adult body is water?",
		CorrectAnswer: "60%",
		Category:      models.TriviaHydration,
		Difficulty:    models.TriviaHard,
		Options: []models.TriviaOption{
			{Position: 0, Text: "40%"},
			{Position: 1, Text: "60%"},
			{Position: 2, Text: "80%"},
		},
	}}))

	q, err := repo.RandomQuestion(ctx, QuestionFilter{Category: models.TriviaHydration})
	require.NoError(t, err)
	assert.Equal(t, models.TriviaHydration, q.Category)

	q, err = repo.RandomQuestion(ctx, QuestionFilter{Difficulty: models.TriviaHard})
	require.NoError(t, err)
	assert.Equal(t, models.TriviaHard, q.Difficulty)

	// No question matches both axes at once.
	_, err = repo.RandomQuestion(ctx, QuestionFilter{
		Category:   models.TriviaMacronutrients,
		Difficulty: models.TriviaHard,
	})
	assert.Error(t, err)
}

func TestTriviaRepository_RandomQuestionEmptyBank(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTriviaRepository(db)

	_, err := repo.RandomQuestion(context.Background(), QuestionFilter{})
	assert.Error(t, err)
}

func TestTriviaRepository_GetScoreCreatesOnFirstRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTriviaRepository(db)
	ctx := context.Background()

	score, err := repo.GetScore(ctx, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, score.UserID)
	assert.Zero(t, score.TotalScore)
	assert.Zero(t, score.CurrentStreak)
	assert.Nil(t, score.LastPlayedDate)

	// Second read returns the same row, not a new one.
	now := time.Now().UTC()
	score.TotalScore = 10
	score.LastPlayedDate = &now
	require.NoError(t, repo.SaveScore(ctx, score))

	again, err := repo.GetScore(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, score.ID, again.ID)
	assert.Equal(t, 10, again.TotalScore)
}

func TestTriviaRepository_CountQuestions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTriviaRepository(db)
	ctx := context.Background()

	count, err := repo.CountQuestions(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	seedQuestions(t, repo, 5)
	count, err = repo.CountQuestions(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
}
