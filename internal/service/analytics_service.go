package service

import (
	"context"
	"time"

	"fitflow/internal/cache"
	"fitflow/internal/fitness"
	"fitflow/internal/repository"
)

// AnalyticsService derives aggregate views over a user's logged data.
type AnalyticsService struct {
	workoutRepo repository.WorkoutRepository
	mealRepo    repository.MealRepository
	goalRepo    repository.GoalRepository
	calcRepo    repository.CalculatorRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewAnalyticsService returns a new AnalyticsService.
func NewAnalyticsService(
	workoutRepo repository.WorkoutRepository,
	mealRepo repository.MealRepository,
	goalRepo repository.GoalRepository,
	calcRepo repository.CalculatorRepository,
	userRepo repository.UserRepository,
) *AnalyticsService {
	return &AnalyticsService{
		workoutRepo: workoutRepo,
		mealRepo:    mealRepo,
		goalRepo:    goalRepo,
		calcRepo:    calcRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// WorkoutStats aggregates workouts within the period into summary
// totals and a per-day chart series.
func (s *AnalyticsService) WorkoutStats(ctx context.Context, userID uint, period fitness.Period) (fitness.WorkoutStatsResult, error) {
	return cache.CacheAside(ctx, cache.WorkoutStatsKey(userID, string(period)), cache.StatsTTL, func() (fitness.WorkoutStatsResult, error) {
		var since *time.Time
		if start, ok := period.Start(s.now()); ok {
			since = &start
		}
		workouts, err := s.workoutRepo.ListByUser(ctx, userID, since)
		if err != nil {
			return fitness.WorkoutStatsResult{}, err
		}
		reverseInPlace(workouts)
		return fitness.AggregateWorkouts(workouts), nil
	})
}

// NutritionStats aggregates meals within the period into summary totals
// and a per-day chart series.
func (s *AnalyticsService) NutritionStats(ctx context.Context, userID uint, period fitness.Period) (fitness.NutritionStatsResult, error) {
	return cache.CacheAside(ctx, cache.MealStatsKey(userID, string(period)), cache.StatsTTL, func() (fitness.NutritionStatsResult, error) {
		var since *time.Time
		if start, ok := period.Start(s.now()); ok {
			since = &start
		}
		meals, err := s.mealRepo.ListByUser(ctx, userID, since)
		if err != nil {
			return fitness.NutritionStatsResult{}, err
		}
		reverseInPlace(meals)
		return fitness.AggregateMeals(meals), nil
	})
}

// Overview pairs workout and nutrition stats for one period, along
// with a profile snapshot the frontend shows next to them.
type Overview struct {
	Period             fitness.Period               `json:"period"`
	Workouts           fitness.WorkoutStatsResult   `json:"workouts"`
	Nutrition          fitness.NutritionStatsResult `json:"nutrition"`
	BMI                float64                      `json:"bmi"`
	HasCompleteProfile bool                         `json:"has_complete_profile"`
	CalorieGoal        int                          `json:"calorie_goal"`
}

// GetOverview returns both aggregates for the period.
func (s *AnalyticsService) GetOverview(ctx context.Context, userID uint, period fitness.Period) (*Overview, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	workouts, err := s.WorkoutStats(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	nutrition, err := s.NutritionStats(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Period:             period,
		Workouts:           workouts,
		Nutrition:          nutrition,
		BMI:                fitness.BMI(user.Height, user.CurrentWeight),
		HasCompleteProfile: user.HasCompleteProfile(),
		CalorieGoal:        user.EffectiveCalorieGoal(),
	}, nil
}

// DashboardStats is the landing-page summary card.
type DashboardStats struct {
	TotalWorkouts     int     `json:"totalWorkouts"`
	TotalMeals        int     `json:"totalMeals"`
	TotalGoals        int     `json:"totalGoals"`
	WorkoutsThisWeek  int     `json:"workoutsThisWeek"`
	WorkoutsLastWeek  int     `json:"workoutsLastWeek"`
	CaloriesToday     int     `json:"caloriesToday"`
	CaloriesRemaining int     `json:"caloriesRemaining"`
	ActiveStreak      int     `json:"activeStreak"`
	BMI               float64 `json:"bmi"`
	CalorieGoal       int     `json:"calorieGoal"`
	LatestTDEE        int     `json:"latestTdee,omitempty"`
}

// GetDashboardStats collects lifetime counts, the workout streak, and
// profile-derived numbers for the dashboard.
func (s *AnalyticsService) GetDashboardStats(ctx context.Context, userID uint) (*DashboardStats, error) {
	return cacheAsidePtr(ctx, cache.DashboardKey(userID), cache.DashboardTTL, func() (*DashboardStats, error) {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		workoutCount, err := s.workoutRepo.CountByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		mealCount, err := s.mealRepo.CountByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		goalCount, err := s.goalRepo.CountByUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		now := s.now().UTC()
		today := fitness.DayStart(now)
		// One extra day of margin so a streak ending yesterday still counts.
		horizon := today.AddDate(0, 0, -(fitness.ActiveStreakCap + 1))
		dates, err := s.workoutRepo.DatesSince(ctx, userID, horizon)
		if err != nil {
			return nil, err
		}

		weekStart := today.AddDate(0, 0, -7)
		lastWeekStart := today.AddDate(0, 0, -14)
		thisWeek, lastWeek := 0, 0
		for _, d := range dates {
			switch {
			case !d.Before(weekStart):
				thisWeek++
			case !d.Before(lastWeekStart):
				lastWeek++
			}
		}

		todaysMeals, err := s.mealRepo.ListByUser(ctx, userID, &today)
		if err != nil {
			return nil, err
		}
		caloriesToday := 0
		for _, m := range todaysMeals {
			caloriesToday += m.Calories
		}

		goal := user.EffectiveCalorieGoal()
		stats := &DashboardStats{
			TotalWorkouts:     int(workoutCount),
			TotalMeals:        int(mealCount),
			TotalGoals:        int(goalCount),
			WorkoutsThisWeek:  thisWeek,
			WorkoutsLastWeek:  lastWeek,
			CaloriesToday:     caloriesToday,
			CaloriesRemaining: goal - caloriesToday,
			ActiveStreak:      fitness.ActiveStreak(dates, now),
			BMI:               fitness.BMI(user.Height, user.CurrentWeight),
			CalorieGoal:       goal,
		}

		latest, err := s.calcRepo.LatestByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if latest != nil {
			stats.LatestTDEE = latest.TDEE
		}
		return stats, nil
	})
}

func reverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
