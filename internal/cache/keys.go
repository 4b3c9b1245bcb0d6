package cache

import (
	"context"
	"fmt"
	"time"
)

// Key formats. Keep these in one place so invalidation stays honest.
const (
	userProfileKeyFmt  = "user:profile:%d"
	triviaStatsKeyFmt  = "trivia:stats:%d"
	dashboardKeyFmt    = "dashboard:stats:%d"
	workoutStatsKeyFmt = "stats:workouts:%d:%s"
	mealStatsKeyFmt    = "stats:nutrition:%d:%s"
	tokenBlacklistFmt  = "jwt:blacklist:%s"
)

// TTLs per key class.
const (
	UserProfileTTL = 10 * time.Minute
	TriviaStatsTTL = 5 * time.Minute
	DashboardTTL   = 2 * time.Minute
	StatsTTL       = 5 * time.Minute
)

func UserProfileKey(userID uint) string {
	return fmt.Sprintf(userProfileKeyFmt, userID)
}

func TriviaStatsKey(userID uint) string {
	return fmt.Sprintf(triviaStatsKeyFmt, userID)
}

func DashboardKey(userID uint) string {
	return fmt.Sprintf(dashboardKeyFmt, userID)
}

func WorkoutStatsKey(userID uint, period string) string {
	return fmt.Sprintf(workoutStatsKeyFmt, userID, period)
}

func MealStatsKey(userID uint, period string) string {
	return fmt.Sprintf(mealStatsKeyFmt, userID, period)
}

func TokenBlacklistKey(jti string) string {
	return fmt.Sprintf(tokenBlacklistFmt, jti)
}

// InvalidateUser drops every cached view derived from a user's records.
// Called after any write to workouts, meals, goals or the profile.
func InvalidateUser(ctx context.Context, userID uint) {
	c := GetClient()
	if c == nil {
		return
	}
	keys := []string{
		UserProfileKey(userID),
		TriviaStatsKey(userID),
		DashboardKey(userID),
	}
	for _, p := range []string{"today", "week", "month", "year", "all"} {
		keys = append(keys, WorkoutStatsKey(userID, p), MealStatsKey(userID, p))
	}
	c.Del(ctx, keys...)
}
