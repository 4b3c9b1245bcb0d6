package repository

import (
	"context"
	"errors"

	"fitflow/internal/models"

	"gorm.io/gorm"
)

// QuestionFilter narrows the random-question pick. Zero values mean no
// constraint on that axis.
type QuestionFilter struct {
	Category   models.TriviaCategory
	Difficulty models.TriviaDifficulty
}

// TriviaRepository defines persistence for the shared question bank and
// per-user running scores.
type TriviaRepository interface {
	RandomQuestion(ctx context.Context, filter QuestionFilter) (*models.TriviaQuestion, error)
	GetQuestion(ctx context.Context, id uint) (*models.TriviaQuestion, error)
	CountQuestions(ctx context.Context) (int64, error)
	InsertQuestions(ctx context.Context, questions []models.TriviaQuestion) error
	GetScore(ctx context.Context, userID uint) (*models.TriviaScore, error)
	SaveScore(ctx context.Context, score *models.TriviaScore) error
}

type triviaRepository struct {
	db *gorm.DB
}

// NewTriviaRepository returns a new TriviaRepository implementation.
func NewTriviaRepository(db *gorm.DB) TriviaRepository {
	return &triviaRepository{db: db}
}

// RandomQuestion picks a uniformly random question from the bank.
// ORDER BY RANDOM() is fine at question-bank scale.
func (r *triviaRepository) RandomQuestion(ctx context.Context, filter QuestionFilter) (*models.TriviaQuestion, error) {
	query := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	var question models.TriviaQuestion
	err := query.Order("RANDOM()").First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("TriviaQuestion", 0)
		}
		return nil, models.NewInternalError(err)
	}
	return &question, nil
}

func (r *triviaRepository) GetQuestion(ctx context.Context, id uint) (*models.TriviaQuestion, error) {
	var question models.TriviaQuestion
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("TriviaQuestion", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &question, nil
}

func (r *triviaRepository) CountQuestions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TriviaQuestion{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *triviaRepository) InsertQuestions(ctx context.Context, questions []models.TriviaQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&questions).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetScore returns the user's running score row, creating a zeroed one
// on first play.
func (r *triviaRepository) GetScore(ctx context.Context, userID uint) (*models.TriviaScore, error) {
	var score models.TriviaScore
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&score).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		score = models.TriviaScore{UserID: userID}
		if err := r.db.WithContext(ctx).Create(&score).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		return &score, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &score, nil
}

func (r *triviaRepository) SaveScore(ctx context.Context, score *models.TriviaScore) error {
	if err := r.db.WithContext(ctx).Save(score).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
