package server

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"fitflow/internal/models"
	"fitflow/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTriviaQuestions(t *testing.T, s *Server) []models.TriviaQuestion {
	t.Helper()
	questions := []models.TriviaQuestion{
		{
			Question: "Which macronutrient has the most calories per gram?",
			Options: []models.TriviaOption{
				{Position: 1, Text: "Protein"},
				{Position: 2, Text: "Carbohydrates"},
				{Position: 3, Text: "Fat"},
			},
			CorrectAnswer: "Fat",
			Category:      models.TriviaMacronutrients,
			Difficulty:    models.TriviaEasy,
			Explanation:   "Fat provides 9 kcal per gram versus 4 for protein and carbs.",
		},
		{
			Question: "Roughly how much of the human body is water?",
			Options: []models.TriviaOption{
				{Position: 1, Text: "40%"},
				{Position: 2, Text: "60%"},
				{Position: 3, Text: "80%"},
			},
			CorrectAnswer: "60%",
			Category:      models.TriviaHydration,
			Difficulty:    models.TriviaMedium,
		},
	}
	require.NoError(t, s.triviaRepo.InsertQuestions(context.Background(), questions))
	return questions
}

func TestGetTriviaQuestion(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "trivia@example.com")
	seedTriviaQuestions(t, s)

	resp := doJSON(t, app, fiber.MethodGet, "/api/trivia/question", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	// The correct answer must never reach the client.
	assert.NotContains(t, string(raw), "correct_answer")

	var question models.TriviaQuestion
	require.NoError(t, json.Unmarshal(raw, &question))
	assert.NotZero(t, question.ID)
	assert.NotEmpty(t, question.Question)
	assert.NotEmpty(t, question.Options)
	assert.Empty(t, question.CorrectAnswer)
}

func TestGetTriviaQuestionFiltered(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "triviafilter@example.com")
	seedTriviaQuestions(t, s)

	resp := doJSON(t, app, fiber.MethodGet, "/api/trivia/question?category=hydration", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var question models.TriviaQuestion
	decodeBody(t, resp, &question)
	assert.Equal(t, models.TriviaHydration, question.Category)

	// No hard questions seeded.
	resp = doJSON(t, app, fiber.MethodGet, "/api/trivia/question?difficulty=hard", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetTriviaQuestionEmptyBank(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "triviaempty@example.com")

	resp := doJSON(t, app, fiber.MethodGet, "/api/trivia/question", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitTriviaAnswer(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "triviaplay@example.com")
	questions := seedTriviaQuestions(t, s)

	// Correct answer, case-insensitive.
	resp := doJSON(t, app, fiber.MethodPost, "/api/trivia/answer", token, fiber.Map{
		"question_id": questions[0].ID,
		"answer":      strings.ToLower(questions[0].CorrectAnswer),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result service.AnswerResult
	decodeBody(t, resp, &result)
	assert.True(t, result.Correct)
	assert.Equal(t, questions[0].CorrectAnswer, result.CorrectAnswer)
	assert.Equal(t, models.PointsPerCorrectAnswer, result.PointsEarned)
	assert.Equal(t, models.PointsPerCorrectAnswer, result.Score.TotalScore)
	assert.Equal(t, 1, result.Score.TotalAnswered)
	assert.Equal(t, 1, result.Score.CorrectAnswers)
	assert.Equal(t, 1, result.Score.CurrentStreak)

	// Wrong answer earns nothing but still counts as answered.
	resp = doJSON(t, app, fiber.MethodPost, "/api/trivia/answer", token, fiber.Map{
		"question_id": questions[1].ID,
		"answer":      "80%",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &result)
	assert.False(t, result.Correct)
	assert.Equal(t, 0, result.PointsEarned)
	assert.Equal(t, 2, result.Score.TotalAnswered)
	assert.Equal(t, 1, result.Score.CorrectAnswers)
	assert.Equal(t, models.PointsPerCorrectAnswer, result.Score.TotalScore)

	// Unknown question.
	resp = doJSON(t, app, fiber.MethodPost, "/api/trivia/answer", token, fiber.Map{
		"question_id": 9999,
		"answer":      "Fat",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Missing answer.
	resp = doJSON(t, app, fiber.MethodPost, "/api/trivia/answer", token, fiber.Map{
		"question_id": questions[0].ID,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTriviaStats(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "triviastats@example.com")
	questions := seedTriviaQuestions(t, s)

	// First read creates a zeroed score row.
	resp := doJSON(t, app, fiber.MethodGet, "/api/trivia/stats", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats models.TriviaScore
	decodeBody(t, resp, &stats)
	assert.Equal(t, 0, stats.TotalAnswered)
	assert.Nil(t, stats.LastPlayedDate)

	resp = doJSON(t, app, fiber.MethodPost, "/api/trivia/answer", token, fiber.Map{
		"question_id": questions[0].ID,
		"answer":      questions[0].CorrectAnswer,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/trivia/stats", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &stats)
	assert.Equal(t, 1, stats.TotalAnswered)
	assert.Equal(t, models.PointsPerCorrectAnswer, stats.TotalScore)
	assert.NotNil(t, stats.LastPlayedDate)
}
