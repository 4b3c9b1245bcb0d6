// Package service contains the application's business logic layer.
package service

import (
	"context"
	"fmt"

	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/repository"
)

// CalculatorService computes calorie needs and keeps an append-only
// history of past calculations.
type CalculatorService struct {
	calcRepo repository.CalculatorRepository
	userRepo repository.UserRepository
}

// CalculateInput is one BMR/TDEE calculation request.
type CalculateInput struct {
	UserID        uint
	Age           int
	Weight        float64 // kg
	Height        float64 // cm
	Gender        string
	ActivityLevel string
	Objective     models.CalorieObjective
}

// CalculateResult is the computed calorie breakdown.
type CalculateResult struct {
	BMR           int                     `json:"bmr"`
	TDEE          int                     `json:"tdee"`
	DailyCalories int                     `json:"daily_calories"`
	Objective     models.CalorieObjective `json:"objective"`
}

// NewCalculatorService returns a new CalculatorService.
func NewCalculatorService(calcRepo repository.CalculatorRepository, userRepo repository.UserRepository) *CalculatorService {
	return &CalculatorService{calcRepo: calcRepo, userRepo: userRepo}
}

// Calculate validates the metrics, computes BMR and TDEE, adjusts for
// the objective and records the calculation.
func (s *CalculatorService) Calculate(ctx context.Context, in CalculateInput) (*CalculateResult, error) {
	if in.Age < fitness.MinAge || in.Age > fitness.MaxAge {
		return nil, models.NewValidationError(fmt.Sprintf("Age must be between %d and %d", fitness.MinAge, fitness.MaxAge))
	}
	if in.Weight < fitness.MinWeight || in.Weight > fitness.MaxWeight {
		return nil, models.NewValidationError(fmt.Sprintf("Weight must be between %g and %g kg", fitness.MinWeight, fitness.MaxWeight))
	}
	if in.Height < fitness.MinHeight || in.Height > fitness.MaxHeight {
		return nil, models.NewValidationError(fmt.Sprintf("Height must be between %g and %g cm", fitness.MinHeight, fitness.MaxHeight))
	}
	if in.Gender != models.GenderMale && in.Gender != models.GenderFemale && in.Gender != models.GenderOther {
		return nil, models.NewValidationError("Invalid gender")
	}
	if !fitness.ValidActivityLevel(in.ActivityLevel) {
		return nil, models.NewValidationError("Invalid activity level")
	}
	if in.Objective == "" {
		in.Objective = models.ObjectiveMaintenance
	}
	if !models.ValidObjective(in.Objective) {
		return nil, models.NewValidationError("Invalid objective")
	}

	bmr := fitness.BMR(in.Weight, in.Height, in.Age, in.Gender)
	tdee := fitness.TDEE(bmr, in.ActivityLevel)
	daily := fitness.AdjustForObjective(tdee, in.Objective)

	record := &models.CalculatorResult{
		UserID:        in.UserID,
		Age:           in.Age,
		Weight:        in.Weight,
		Height:        in.Height,
		Gender:        in.Gender,
		ActivityLevel: in.ActivityLevel,
		Objective:     in.Objective,
		BMR:           bmr,
		TDEE:          daily,
	}
	if err := s.calcRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &CalculateResult{
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: daily,
		Objective:     in.Objective,
	}, nil
}

// calcHistoryLimit caps history responses at the most recent entries.
const calcHistoryLimit = 10

// History returns the user's most recent calculations, newest first,
// capped at calcHistoryLimit.
func (s *CalculatorService) History(ctx context.Context, userID uint) ([]models.CalculatorResult, error) {
	return s.calcRepo.ListByUser(ctx, userID, calcHistoryLimit)
}
