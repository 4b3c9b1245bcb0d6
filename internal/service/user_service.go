package service

import (
	"context"
	"fmt"

	"fitflow/internal/cache"
	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/repository"
	"fitflow/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService manages profiles and credentials.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Profile is the user's account plus derived numbers.
type Profile struct {
	models.User
	BMI             float64 `json:"bmi"`
	ProfileComplete bool    `json:"profile_complete"`
}

// GetProfile returns the profile with BMI derived from stored metrics.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	return cacheAsidePtr(ctx, cache.UserProfileKey(userID), cache.UserProfileTTL, func() (*Profile, error) {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &Profile{
			User:            *user,
			BMI:             fitness.BMI(user.Height, user.CurrentWeight),
			ProfileComplete: user.HasCompleteProfile(),
		}, nil
	})
}

// UpdateProfileInput carries the mutable profile fields. Nil pointers
// leave the stored value untouched.
type UpdateProfileInput struct {
	Name          *string
	CurrentWeight *float64
	TargetWeight  *float64
	Height        *float64
	Age           *int
	Gender        *string
	ActivityLevel *string
	CalorieGoal   *int
}

// UpdateProfile applies partial changes, enforcing the same metric
// bounds as the calorie calculator.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validation.ValidateName(*in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = *in.Name
	}
	if in.CurrentWeight != nil {
		if *in.CurrentWeight < fitness.MinWeight || *in.CurrentWeight > fitness.MaxWeight {
			return nil, models.NewValidationError(fmt.Sprintf("Weight must be between %g and %g kg", fitness.MinWeight, fitness.MaxWeight))
		}
		user.CurrentWeight = *in.CurrentWeight
	}
	if in.TargetWeight != nil {
		if *in.TargetWeight < fitness.MinWeight || *in.TargetWeight > fitness.MaxWeight {
			return nil, models.NewValidationError(fmt.Sprintf("Target weight must be between %g and %g kg", fitness.MinWeight, fitness.MaxWeight))
		}
		user.TargetWeight = *in.TargetWeight
	}
	if in.Height != nil {
		if *in.Height < fitness.MinHeight || *in.Height > fitness.MaxHeight {
			return nil, models.NewValidationError(fmt.Sprintf("Height must be between %g and %g cm", fitness.MinHeight, fitness.MaxHeight))
		}
		user.Height = *in.Height
	}
	if in.Age != nil {
		if *in.Age < fitness.MinAge || *in.Age > fitness.MaxAge {
			return nil, models.NewValidationError(fmt.Sprintf("Age must be between %d and %d", fitness.MinAge, fitness.MaxAge))
		}
		user.Age = *in.Age
	}
	if in.Gender != nil {
		switch *in.Gender {
		case models.GenderMale, models.GenderFemale, models.GenderOther:
			user.Gender = *in.Gender
		default:
			return nil, models.NewValidationError("Invalid gender")
		}
	}
	if in.ActivityLevel != nil {
		if !fitness.ValidActivityLevel(*in.ActivityLevel) {
			return nil, models.NewValidationError("Invalid activity level")
		}
		user.ActivityLevel = *in.ActivityLevel
	}
	if in.CalorieGoal != nil {
		if *in.CalorieGoal < 0 {
			return nil, models.NewValidationError("Calorie goal cannot be negative")
		}
		user.CalorieGoal = *in.CalorieGoal
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &Profile{
		User:            *user,
		BMI:             fitness.BMI(user.Height, user.CurrentWeight),
		ProfileComplete: user.HasCompleteProfile(),
	}, nil
}

// BodyStats summarizes profile-derived numbers for the stats endpoint.
type BodyStats struct {
	BMI             float64 `json:"bmi"`
	BMICategory     string  `json:"bmi_category,omitempty"`
	CurrentWeight   float64 `json:"current_weight"`
	TargetWeight    float64 `json:"target_weight"`
	WeightToTarget  float64 `json:"weight_to_target"`
	CalorieGoal     int     `json:"calorie_goal"`
	ProfileComplete bool    `json:"profile_complete"`
}

// Stats derives BMI and remaining weight change from stored metrics.
func (s *UserService) Stats(ctx context.Context, userID uint) (*BodyStats, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	bmi := fitness.BMI(user.Height, user.CurrentWeight)
	stats := &BodyStats{
		BMI:             bmi,
		BMICategory:     fitness.BMICategory(bmi),
		CurrentWeight:   user.CurrentWeight,
		TargetWeight:    user.TargetWeight,
		CalorieGoal:     user.EffectiveCalorieGoal(),
		ProfileComplete: user.HasCompleteProfile(),
	}
	if user.TargetWeight > 0 && user.CurrentWeight > 0 {
		stats.WeightToTarget = user.CurrentWeight - user.TargetWeight
	}
	return stats, nil
}

// ChangePassword verifies the current password before setting a new one.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return models.NewUnauthorizedError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(next); err != nil {
		return models.NewValidationError(err.Error())
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}
