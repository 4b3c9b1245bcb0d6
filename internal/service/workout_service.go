package service

import (
	"context"
	"time"

	"fitflow/internal/cache"
	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/repository"
)

// WorkoutService manages workout logging for a user.
type WorkoutService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService returns a new WorkoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{workoutRepo: workoutRepo, now: time.Now}
}

// ExerciseInput is one exercise entry in a workout payload.
type ExerciseInput struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Duration int     `json:"duration"`
}

// WorkoutInput is the payload for creating or updating a workout.
type WorkoutInput struct {
	UserID         uint
	Title          string
	Duration       int
	Difficulty     models.WorkoutDifficulty
	CaloriesBurned int
	Date           time.Time
	Notes          string
	Exercises      []ExerciseInput
}

func (in *WorkoutInput) validate() error {
	if in.Title == "" {
		return models.NewValidationError("Title is required")
	}
	if in.Duration <= 0 {
		return models.NewValidationError("Duration must be positive")
	}
	if in.Difficulty == "" {
		in.Difficulty = models.DifficultyIntermediate
	}
	if !models.ValidDifficulty(in.Difficulty) {
		return models.NewValidationError("Invalid difficulty")
	}
	if in.CaloriesBurned < 0 {
		return models.NewValidationError("Calories burned cannot be negative")
	}
	for _, ex := range in.Exercises {
		if ex.Name == "" {
			return models.NewValidationError("Exercise name is required")
		}
	}
	return nil
}

func (in *WorkoutInput) toModel() *models.Workout {
	exercises := make([]models.Exercise, 0, len(in.Exercises))
	for _, ex := range in.Exercises {
		exercises = append(exercises, models.Exercise{
			Name:     ex.Name,
			Sets:     ex.Sets,
			Reps:     ex.Reps,
			Weight:   ex.Weight,
			Duration: ex.Duration,
		})
	}
	return &models.Workout{
		UserID:         in.UserID,
		Title:          in.Title,
		Duration:       in.Duration,
		Difficulty:     in.Difficulty,
		CaloriesBurned: in.CaloriesBurned,
		Date:           in.Date,
		Notes:          in.Notes,
		Exercises:      exercises,
	}
}

// Create logs a new workout. A zero date defaults to now.
func (s *WorkoutService) Create(ctx context.Context, in WorkoutInput) (*models.Workout, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	workout := in.toModel()
	if workout.Date.IsZero() {
		workout.Date = s.now().UTC()
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, in.UserID)
	return workout, nil
}

// List returns the user's workouts within the period, newest first.
func (s *WorkoutService) List(ctx context.Context, userID uint, period fitness.Period) ([]models.Workout, error) {
	var since *time.Time
	if start, ok := period.Start(s.now()); ok {
		since = &start
	}
	return s.workoutRepo.ListByUser(ctx, userID, since)
}

// Get returns one workout owned by the user.
func (s *WorkoutService) Get(ctx context.Context, userID, id uint) (*models.Workout, error) {
	return s.workoutRepo.GetByID(ctx, userID, id)
}

// Update replaces a workout's fields and exercise list.
func (s *WorkoutService) Update(ctx context.Context, id uint, in WorkoutInput) (*models.Workout, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.workoutRepo.GetByID(ctx, in.UserID, id)
	if err != nil {
		return nil, err
	}

	updated := in.toModel()
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if updated.Date.IsZero() {
		updated.Date = existing.Date
	}
	for i := range updated.Exercises {
		updated.Exercises[i].WorkoutID = existing.ID
	}
	if err := s.workoutRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, in.UserID)
	return updated, nil
}

// Delete removes a workout owned by the user.
func (s *WorkoutService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.workoutRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}
