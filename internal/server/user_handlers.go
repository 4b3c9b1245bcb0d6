package server

import (
	"fitflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/user/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetProfile(c.Context(), s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /api/user/profile. Absent fields keep their
// stored values.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Name          *string  `json:"name"`
		CurrentWeight *float64 `json:"current_weight"`
		TargetWeight  *float64 `json:"target_weight"`
		Height        *float64 `json:"height"`
		Age           *int     `json:"age"`
		Gender        *string  `json:"gender"`
		ActivityLevel *string  `json:"activity_level"`
		CalorieGoal   *int     `json:"calorie_goal"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	profile, err := s.userService.UpdateProfile(c.Context(), s.userID(c), service.UpdateProfileInput{
		Name:          req.Name,
		CurrentWeight: req.CurrentWeight,
		TargetWeight:  req.TargetWeight,
		Height:        req.Height,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		CalorieGoal:   req.CalorieGoal,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetUserStats handles GET /api/user/stats
func (s *Server) GetUserStats(c *fiber.Ctx) error {
	stats, err := s.userService.Stats(c.Context(), s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// ChangePassword handles PUT /api/user/change-password
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	if err := s.userService.ChangePassword(c.Context(), s.userID(c), req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password changed"})
}
