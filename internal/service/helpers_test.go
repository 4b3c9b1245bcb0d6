package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitflow/internal/models"
	"fitflow/internal/repository"

	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	getByResetTokenFn func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, *models.User) error
	deleteFn          func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByResetToken(ctx context.Context, hash string) (*models.User, error) {
	return s.getByResetTokenFn(ctx, hash)
}
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error { return s.updateFn(ctx, u) }
func (s *userRepoStub) Delete(ctx context.Context, id uint) error        { return s.deleteFn(ctx, id) }

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:         func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:      func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByResetTokenFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:          func(_ context.Context, _ *models.User) error { return nil },
		updateFn:          func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
	}
}

// workoutRepoStub is a stub for repository.WorkoutRepository.
type workoutRepoStub struct {
	createFn      func(context.Context, *models.Workout) error
	getByIDFn     func(context.Context, uint, uint) (*models.Workout, error)
	listByUserFn  func(context.Context, uint, *time.Time) ([]models.Workout, error)
	updateFn      func(context.Context, *models.Workout) error
	deleteFn      func(context.Context, uint, uint) error
	datesSinceFn  func(context.Context, uint, time.Time) ([]time.Time, error)
	countByUserFn func(context.Context, uint) (int64, error)
}

func (s *workoutRepoStub) Create(ctx context.Context, w *models.Workout) error {
	return s.createFn(ctx, w)
}
func (s *workoutRepoStub) GetByID(ctx context.Context, userID, id uint) (*models.Workout, error) {
	return s.getByIDFn(ctx, userID, id)
}
func (s *workoutRepoStub) ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Workout, error) {
	return s.listByUserFn(ctx, userID, since)
}
func (s *workoutRepoStub) Update(ctx context.Context, w *models.Workout) error {
	return s.updateFn(ctx, w)
}
func (s *workoutRepoStub) Delete(ctx context.Context, userID, id uint) error {
	return s.deleteFn(ctx, userID, id)
}
func (s *workoutRepoStub) DatesSince(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
	return s.datesSinceFn(ctx, userID, since)
}
func (s *workoutRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}

func noopWorkoutRepo() *workoutRepoStub {
	return &workoutRepoStub{
		createFn:      func(_ context.Context, _ *models.Workout) error { return nil },
		getByIDFn:     func(_ context.Context, _, id uint) (*models.Workout, error) { return &models.Workout{ID: id}, nil },
		listByUserFn:  func(_ context.Context, _ uint, _ *time.Time) ([]models.Workout, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Workout) error { return nil },
		deleteFn:      func(_ context.Context, _, _ uint) error { return nil },
		datesSinceFn:  func(_ context.Context, _ uint, _ time.Time) ([]time.Time, error) { return nil, nil },
		countByUserFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// mealRepoStub is a stub for repository.MealRepository.
type mealRepoStub struct {
	createFn      func(context.Context, *models.Meal) error
	getByIDFn     func(context.Context, uint, uint) (*models.Meal, error)
	listByUserFn  func(context.Context, uint, *time.Time) ([]models.Meal, error)
	updateFn      func(context.Context, *models.Meal) error
	deleteFn      func(context.Context, uint, uint) error
	countByUserFn func(context.Context, uint) (int64, error)
}

func (s *mealRepoStub) Create(ctx context.Context, m *models.Meal) error { return s.createFn(ctx, m) }
func (s *mealRepoStub) GetByID(ctx context.Context, userID, id uint) (*models.Meal, error) {
	return s.getByIDFn(ctx, userID, id)
}
func (s *mealRepoStub) ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Meal, error) {
	return s.listByUserFn(ctx, userID, since)
}
func (s *mealRepoStub) Update(ctx context.Context, m *models.Meal) error { return s.updateFn(ctx, m) }
func (s *mealRepoStub) Delete(ctx context.Context, userID, id uint) error {
	return s.deleteFn(ctx, userID, id)
}
func (s *mealRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}

func noopMealRepo() *mealRepoStub {
	return &mealRepoStub{
		createFn:      func(_ context.Context, _ *models.Meal) error { return nil },
		getByIDFn:     func(_ context.Context, _, id uint) (*models.Meal, error) { return &models.Meal{ID: id}, nil },
		listByUserFn:  func(_ context.Context, _ uint, _ *time.Time) ([]models.Meal, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Meal) error { return nil },
		deleteFn:      func(_ context.Context, _, _ uint) error { return nil },
		countByUserFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// goalRepoStub is a stub for repository.GoalRepository.
type goalRepoStub struct {
	createFn      func(context.Context, *models.Goal) error
	getByIDFn     func(context.Context, uint, uint) (*models.Goal, error)
	listByUserFn  func(context.Context, uint, *time.Time) ([]models.Goal, error)
	updateFn      func(context.Context, *models.Goal) error
	deleteFn      func(context.Context, uint, uint) error
	countByUserFn func(context.Context, uint) (int64, error)
}

func (s *goalRepoStub) Create(ctx context.Context, g *models.Goal) error { return s.createFn(ctx, g) }
func (s *goalRepoStub) GetByID(ctx context.Context, userID, id uint) (*models.Goal, error) {
	return s.getByIDFn(ctx, userID, id)
}
func (s *goalRepoStub) ListByUser(ctx context.Context, userID uint, since *time.Time) ([]models.Goal, error) {
	return s.listByUserFn(ctx, userID, since)
}
func (s *goalRepoStub) Update(ctx context.Context, g *models.Goal) error { return s.updateFn(ctx, g) }
func (s *goalRepoStub) Delete(ctx context.Context, userID, id uint) error {
	return s.deleteFn(ctx, userID, id)
}
func (s *goalRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}

func noopGoalRepo() *goalRepoStub {
	return &goalRepoStub{
		createFn:      func(_ context.Context, _ *models.Goal) error { return nil },
		getByIDFn:     func(_ context.Context, _, id uint) (*models.Goal, error) { return &models.Goal{ID: id}, nil },
		listByUserFn:  func(_ context.Context, _ uint, _ *time.Time) ([]models.Goal, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Goal) error { return nil },
		deleteFn:      func(_ context.Context, _, _ uint) error { return nil },
		countByUserFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// calcRepoStub is a stub for repository.CalculatorRepository.
type calcRepoStub struct {
	createFn       func(context.Context, *models.CalculatorResult) error
	listByUserFn   func(context.Context, uint, int) ([]models.CalculatorResult, error)
	latestByUserFn func(context.Context, uint) (*models.CalculatorResult, error)
}

func (s *calcRepoStub) Create(ctx context.Context, r *models.CalculatorResult) error {
	return s.createFn(ctx, r)
}
func (s *calcRepoStub) ListByUser(ctx context.Context, userID uint, limit int) ([]models.CalculatorResult, error) {
	return s.listByUserFn(ctx, userID, limit)
}
func (s *calcRepoStub) LatestByUser(ctx context.Context, userID uint) (*models.CalculatorResult, error) {
	return s.latestByUserFn(ctx, userID)
}

func noopCalcRepo() *calcRepoStub {
	return &calcRepoStub{
		createFn:       func(_ context.Context, _ *models.CalculatorResult) error { return nil },
		listByUserFn:   func(_ context.Context, _ uint, _ int) ([]models.CalculatorResult, error) { return nil, nil },
		latestByUserFn: func(_ context.Context, _ uint) (*models.CalculatorResult, error) { return nil, nil },
	}
}

// triviaRepoStub is a stub for repository.TriviaRepository.
type triviaRepoStub struct {
	randomQuestionFn  func(context.Context, repository.QuestionFilter) (*models.TriviaQuestion, error)
	getQuestionFn     func(context.Context, uint) (*models.TriviaQuestion, error)
	countQuestionsFn  func(context.Context) (int64, error)
	insertQuestionsFn func(context.Context, []models.TriviaQuestion) error
	getScoreFn        func(context.Context, uint) (*models.TriviaScore, error)
	saveScoreFn       func(context.Context, *models.TriviaScore) error
}

func (s *triviaRepoStub) RandomQuestion(ctx context.Context, filter repository.QuestionFilter) (*models.TriviaQuestion, error) {
	return s.randomQuestionFn(ctx, filter)
}
func (s *triviaRepoStub) GetQuestion(ctx context.Context, id uint) (*models.TriviaQuestion, error) {
	return s.getQuestionFn(ctx, id)
}
func (s *triviaRepoStub) CountQuestions(ctx context.Context) (int64, error) {
	return s.countQuestionsFn(ctx)
}
func (s *triviaRepoStub) InsertQuestions(ctx context.Context, qs []models.TriviaQuestion) error {
	return s.insertQuestionsFn(ctx, qs)
}
func (s *triviaRepoStub) GetScore(ctx context.Context, userID uint) (*models.TriviaScore, error) {
	return s.getScoreFn(ctx, userID)
}
func (s *triviaRepoStub) SaveScore(ctx context.Context, score *models.TriviaScore) error {
	return s.saveScoreFn(ctx, score)
}

func noopTriviaRepo() *triviaRepoStub {
	return &triviaRepoStub{
		randomQuestionFn: func(_ context.Context, _ repository.QuestionFilter) (*models.TriviaQuestion, error) {
			return &models.TriviaQuestion{ID: 1}, nil
		},
		getQuestionFn:     func(_ context.Context, id uint) (*models.TriviaQuestion, error) { return &models.TriviaQuestion{ID: id}, nil },
		countQuestionsFn:  func(_ context.Context) (int64, error) { return 0, nil },
		insertQuestionsFn: func(_ context.Context, _ []models.TriviaQuestion) error { return nil },
		getScoreFn:        func(_ context.Context, userID uint) (*models.TriviaScore, error) { return &models.TriviaScore{UserID: userID}, nil },
		saveScoreFn:       func(_ context.Context, _ *models.TriviaScore) error { return nil },
	}
}

// progressRepoStub is a stub for repository.ProgressRepository.
type progressRepoStub struct {
	createFn         func(context.Context, *models.ProgressPhoto) error
	getByIDFn        func(context.Context, uint, uint) (*models.ProgressPhoto, error)
	listByUserFn     func(context.Context, uint) ([]models.ProgressPhoto, error)
	deleteFn         func(context.Context, uint, uint) error
	attachAnalysisFn func(context.Context, *models.BodyAnalysis) error
}

func (s *progressRepoStub) Create(ctx context.Context, p *models.ProgressPhoto) error {
	return s.createFn(ctx, p)
}
func (s *progressRepoStub) GetByID(ctx context.Context, userID, id uint) (*models.ProgressPhoto, error) {
	return s.getByIDFn(ctx, userID, id)
}
func (s *progressRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.ProgressPhoto, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *progressRepoStub) Delete(ctx context.Context, userID, id uint) error {
	return s.deleteFn(ctx, userID, id)
}
func (s *progressRepoStub) AttachAnalysis(ctx context.Context, a *models.BodyAnalysis) error {
	return s.attachAnalysisFn(ctx, a)
}

func noopProgressRepo() *progressRepoStub {
	return &progressRepoStub{
		createFn:         func(_ context.Context, p *models.ProgressPhoto) error { p.ID = 1; return nil },
		getByIDFn:        func(_ context.Context, _, id uint) (*models.ProgressPhoto, error) { return &models.ProgressPhoto{ID: id}, nil },
		listByUserFn:     func(_ context.Context, _ uint) ([]models.ProgressPhoto, error) { return nil, nil },
		deleteFn:         func(_ context.Context, _, _ uint) error { return nil },
		attachAnalysisFn: func(_ context.Context, _ *models.BodyAnalysis) error { return nil },
	}
}
