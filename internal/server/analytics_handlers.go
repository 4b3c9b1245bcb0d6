package server

import (
	"fitflow/internal/fitness"

	"github.com/gofiber/fiber/v2"
)

// GetWorkoutStats handles GET /api/analytics/workouts?period=
func (s *Server) GetWorkoutStats(c *fiber.Ctx) error {
	period := fitness.ParsePeriod(c.Query("period"), fitness.PeriodWeek)
	stats, err := s.analyticsService.WorkoutStats(c.Context(), s.userID(c), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"period":    period,
		"summary":   stats.Summary,
		"chartData": stats.ChartData,
	})
}

// GetNutritionStats handles GET /api/analytics/nutrition?period=
func (s *Server) GetNutritionStats(c *fiber.Ctx) error {
	period := fitness.ParsePeriod(c.Query("period"), fitness.PeriodWeek)
	stats, err := s.analyticsService.NutritionStats(c.Context(), s.userID(c), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"period":    period,
		"summary":   stats.Summary,
		"chartData": stats.ChartData,
	})
}

// GetAnalyticsOverview handles GET /api/analytics/overview?period=
func (s *Server) GetAnalyticsOverview(c *fiber.Ctx) error {
	period := fitness.ParsePeriod(c.Query("period"), fitness.PeriodWeek)
	overview, err := s.analyticsService.GetOverview(c.Context(), s.userID(c), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(overview)
}

// GetDashboardStats handles GET /api/dashboard/stats
func (s *Server) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := s.analyticsService.GetDashboardStats(c.Context(), s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
