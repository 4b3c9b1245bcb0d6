package service

import (
	"context"
	"strings"
	"time"

	"fitflow/internal/cache"
	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/repository"
)

// TriviaService runs the nutrition trivia game: random questions,
// answer grading, and per-user score/streak bookkeeping.
type TriviaService struct {
	triviaRepo repository.TriviaRepository
	now        func() time.Time
}

// NewTriviaService returns a new TriviaService.
func NewTriviaService(triviaRepo repository.TriviaRepository) *TriviaService {
	return &TriviaService{triviaRepo: triviaRepo, now: time.Now}
}

// AnswerResult is the outcome of grading one answer.
type AnswerResult struct {
	Correct       bool               `json:"correct"`
	CorrectAnswer string             `json:"correct_answer"`
	Explanation   string             `json:"explanation,omitempty"`
	PointsEarned  int                `json:"points_earned"`
	Score         models.TriviaScore `json:"score"`
}

// RandomQuestion returns a random question with the correct answer
// withheld (the model hides it from JSON). Category and difficulty are
// optional filters; unknown values yield a 404 from the empty pick.
func (s *TriviaService) RandomQuestion(ctx context.Context, category, difficulty string) (*models.TriviaQuestion, error) {
	filter := repository.QuestionFilter{
		Category:   models.TriviaCategory(strings.ToLower(strings.TrimSpace(category))),
		Difficulty: models.TriviaDifficulty(strings.ToLower(strings.TrimSpace(difficulty))),
	}
	return s.triviaRepo.RandomQuestion(ctx, filter)
}

// SubmitAnswer grades the answer against the stored question and
// updates the user's running score. The streak advances only on correct
// answers; the last-played date moves regardless.
func (s *TriviaService) SubmitAnswer(ctx context.Context, userID, questionID uint, answer string) (*AnswerResult, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, models.NewValidationError("Answer is required")
	}

	question, err := s.triviaRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	score, err := s.triviaRepo.GetScore(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	correct := strings.EqualFold(strings.TrimSpace(answer), question.CorrectAnswer)

	score.TotalAnswered++
	points := 0
	if correct {
		points = models.PointsPerCorrectAnswer
		score.TotalScore += points
		score.CorrectAnswers++
		score.CurrentStreak = fitness.NextTriviaStreak(score.LastPlayedDate, now, score.CurrentStreak)
	}
	score.LastPlayedDate = &now

	if err := s.triviaRepo.SaveScore(ctx, score); err != nil {
		return nil, err
	}
	if c := cache.GetClient(); c != nil {
		c.Del(ctx, cache.TriviaStatsKey(userID))
	}

	return &AnswerResult{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
		PointsEarned:  points,
		Score:         *score,
	}, nil
}

// Stats returns the user's running score, creating a zeroed row on
// first read.
func (s *TriviaService) Stats(ctx context.Context, userID uint) (*models.TriviaScore, error) {
	return cacheAsidePtr(ctx, cache.TriviaStatsKey(userID), cache.TriviaStatsTTL, func() (*models.TriviaScore, error) {
		return s.triviaRepo.GetScore(ctx, userID)
	})
}

func cacheAsidePtr[T any](ctx context.Context, key string, ttl time.Duration, load func() (*T, error)) (*T, error) {
	var cached T
	if cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}
	fresh, err := load()
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, key, fresh, ttl)
	return fresh, nil
}
