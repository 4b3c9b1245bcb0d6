package server

import (
	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetGoals handles GET /api/goals?period=. Goals are long-lived, so the
// absent-period default is the full set rather than today's.
func (s *Server) GetGoals(c *fiber.Ctx) error {
	period := fitness.ParsePeriod(c.Query("period"), fitness.PeriodAll)
	goals, err := s.goalService.List(c.Context(), s.userID(c), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"goals": goals})
}

// GetGoal handles GET /api/goals/:id
func (s *Server) GetGoal(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	goal, err := s.goalService.Get(c.Context(), s.userID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(goal)
}

// CreateGoal handles POST /api/goals
func (s *Server) CreateGoal(c *fiber.Ctx) error {
	var req struct {
		Title    string  `json:"title" validate:"required,max=100"`
		Current  float64 `json:"current"`
		Target   float64 `json:"target"`
		Unit     string  `json:"unit" validate:"required,max=20"`
		Category string  `json:"category" validate:"omitempty,max=20"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	goal, err := s.goalService.Create(c.Context(), service.GoalInput{
		UserID:   s.userID(c),
		Title:    req.Title,
		Current:  req.Current,
		Target:   req.Target,
		Unit:     req.Unit,
		Category: models.GoalCategory(req.Category),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

// UpdateGoal handles PUT /api/goals/:id. Absent fields keep their
// stored values; the initial snapshot is never rewritten.
func (s *Server) UpdateGoal(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Title    *string  `json:"title"`
		Current  *float64 `json:"current"`
		Target   *float64 `json:"target"`
		Unit     *string  `json:"unit"`
		Category *string  `json:"category"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	in := service.UpdateGoalInput{
		UserID:  s.userID(c),
		Title:   req.Title,
		Current: req.Current,
		Target:  req.Target,
		Unit:    req.Unit,
	}
	if req.Category != nil {
		category := models.GoalCategory(*req.Category)
		in.Category = &category
	}

	goal, err := s.goalService.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(goal)
}

// DeleteGoal handles DELETE /api/goals/:id
func (s *Server) DeleteGoal(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.goalService.Delete(c.Context(), s.userID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Goal deleted"})
}
