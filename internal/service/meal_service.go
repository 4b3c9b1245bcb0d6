package service

import (
	"context"
	"regexp"
	"time"

	"fitflow/internal/cache"
	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/repository"
)

var clockTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// MealService manages meal logging for a user.
type MealService struct {
	mealRepo repository.MealRepository
	now      func() time.Time
}

// NewMealService returns a new MealService.
func NewMealService(mealRepo repository.MealRepository) *MealService {
	return &MealService{mealRepo: mealRepo, now: time.Now}
}

// MealInput is the payload for creating or updating a meal.
type MealInput struct {
	UserID   uint
	Name     string
	MealType models.MealType
	Calories int
	Protein  float64
	Carbs    float64
	Fats     float64
	Time     string // "HH:MM"
	Date     time.Time
}

func (in *MealInput) validate() error {
	if in.Name == "" {
		return models.NewValidationError("Name is required")
	}
	if !models.ValidMealType(in.MealType) {
		return models.NewValidationError("Invalid meal type")
	}
	if in.Calories < 0 {
		return models.NewValidationError("Calories cannot be negative")
	}
	if in.Protein < 0 || in.Carbs < 0 || in.Fats < 0 {
		return models.NewValidationError("Macros cannot be negative")
	}
	if in.Time != "" && !clockTimeRe.MatchString(in.Time) {
		return models.NewValidationError("Time must be in HH:MM format")
	}
	return nil
}

// Create logs a new meal. A zero date defaults to now; an empty time
// defaults to the current clock time.
func (s *MealService) Create(ctx context.Context, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	meal := &models.Meal{
		UserID:   in.UserID,
		Name:     in.Name,
		MealType: in.MealType,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Time:     in.Time,
		Date:     in.Date,
	}
	if meal.Date.IsZero() {
		meal.Date = now
	}
	if meal.Time == "" {
		meal.Time = now.Format("15:04")
	}
	if err := s.mealRepo.Create(ctx, meal); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, in.UserID)
	return meal, nil
}

// List returns the user's meals within the period, newest first.
func (s *MealService) List(ctx context.Context, userID uint, period fitness.Period) ([]models.Meal, error) {
	var since *time.Time
	if start, ok := period.Start(s.now()); ok {
		since = &start
	}
	return s.mealRepo.ListByUser(ctx, userID, since)
}

// Get returns one meal owned by the user.
func (s *MealService) Get(ctx context.Context, userID, id uint) (*models.Meal, error) {
	return s.mealRepo.GetByID(ctx, userID, id)
}

// Update replaces a meal's fields.
func (s *MealService) Update(ctx context.Context, id uint, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	meal, err := s.mealRepo.GetByID(ctx, in.UserID, id)
	if err != nil {
		return nil, err
	}

	meal.Name = in.Name
	meal.MealType = in.MealType
	meal.Calories = in.Calories
	meal.Protein = in.Protein
	meal.Carbs = in.Carbs
	meal.Fats = in.Fats
	if in.Time != "" {
		meal.Time = in.Time
	}
	if !in.Date.IsZero() {
		meal.Date = in.Date
	}
	if err := s.mealRepo.Update(ctx, meal); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, in.UserID)
	return meal, nil
}

// DaySummary is the meal log for one UTC calendar day with its totals.
type DaySummary struct {
	Date    string                   `json:"date"`
	Meals   []models.Meal            `json:"meals"`
	Summary fitness.NutritionSummary `json:"summary"`
}

// Today returns the meal log for the period ending now, defaulting to
// the current UTC day, with aggregate totals attached.
func (s *MealService) Today(ctx context.Context, userID uint, period fitness.Period) (*DaySummary, error) {
	meals, err := s.List(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	return &DaySummary{
		Date:    fitness.DayKey(s.now()),
		Meals:   meals,
		Summary: fitness.AggregateMeals(meals).Summary,
	}, nil
}

// ForDate returns the meal log for one specific UTC calendar day.
func (s *MealService) ForDate(ctx context.Context, userID uint, day time.Time) (*DaySummary, error) {
	start := fitness.DayStart(day)
	end := start.AddDate(0, 0, 1)
	meals, err := s.mealRepo.ListByUser(ctx, userID, &start)
	if err != nil {
		return nil, err
	}
	inDay := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if m.Date.UTC().Before(end) {
			inDay = append(inDay, m)
		}
	}
	return &DaySummary{
		Date:    fitness.DayKey(start),
		Meals:   inDay,
		Summary: fitness.AggregateMeals(inDay).Summary,
	}, nil
}

// Delete removes a meal owned by the user.
func (s *MealService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.mealRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}
